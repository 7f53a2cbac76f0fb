package models

import (
	"time"
)

type ContactSubmission struct {
	ID          string    `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Subject     string    `json:"subject" db:"subject"`
	Message     string    `json:"message" db:"message"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
	IsRead      bool      `json:"is_read" db:"is_read"`
}

type NewsletterSubscription struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
}

type QuoteSubmission struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	Service     string    `json:"service" db:"service"`
	Message     string    `json:"message" db:"message"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
	IsRead      bool      `json:"is_read" db:"is_read"`
}

type ServiceInquiry struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	Service     string    `json:"service" db:"service"`
	Message     string    `json:"message" db:"message"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
	IsRead      bool      `json:"is_read" db:"is_read"`
}

// ServiceChoices are the offerings a quote request or service inquiry can
// reference; anything else is rejected at validation time.
var ServiceChoices = []string{
	"SOFTWARE DEVELOPMENT SERVICE",
	"PROFESSIONAL COMPUTER AND IT EDUCATION",
	"DIGITAL ADVERTISING AND BUSINESS BRANDING",
	"INTERNATIONAL UNIVERSITY ADMISSION PROCESSING",
	"WEBSITE SEO Optimization",
	"Others",
}

func IsValidServiceChoice(service string) bool {
	for _, c := range ServiceChoices {
		if c == service {
			return true
		}
	}
	return false
}
