package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Form payloads posted by site visitors and students.

// ContactRequest is deliberately presence-checked only: the contact form is
// free-form and any non-blank value is accepted for each field.
type ContactRequest struct {
	FirstName string `form:"fname"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	Subject   string `form:"subject"`
	Message   string `form:"message"`
}

func (r *ContactRequest) Validate() error {
	if r.FirstName == "" || r.Email == "" || r.Phone == "" || r.Subject == "" || r.Message == "" {
		return errors.New("please fill in all required fields")
	}
	return nil
}

type QuoteRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Phone   string `form:"phone" validate:"required,max=20"`
	Email   string `form:"email" validate:"required,email,max=255"`
	Service string `form:"service" validate:"required,max=100"`
	Message string `form:"message" validate:"required"`
}

func (r *QuoteRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !IsValidServiceChoice(r.Service) {
		return errors.New("please select a valid service")
	}
	return nil
}

type ServiceInquiryRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Phone   string `form:"phone" validate:"required,max=20"`
	Email   string `form:"email" validate:"required,email,max=255"`
	Service string `form:"service" validate:"required,max=100"`
	Message string `form:"message" validate:"required"`
}

func (r *ServiceInquiryRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !IsValidServiceChoice(r.Service) {
		return errors.New("please select a valid service")
	}
	return nil
}

type NewsletterRequest struct {
	Email string `form:"subemail" validate:"required,email,max=255"`
}

func (r *NewsletterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

type RegisterRequest struct {
	FirstName       string `form:"first_name" validate:"required,max=100"`
	LastName        string `form:"last_name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email,max=255"`
	Phone           string `form:"phone" validate:"max=20"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	return nil
}

type ProfileUpdateRequest struct {
	FirstName string `form:"first_name" validate:"required,max=100"`
	LastName  string `form:"last_name" validate:"required,max=100"`
	Email     string `form:"email" validate:"required,email,max=255"`
	Phone     string `form:"phone" validate:"max=20"`
}

func (r *ProfileUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

type LoginRequest struct {
	Email    string `form:"un"`
	Password string `form:"pw"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}
