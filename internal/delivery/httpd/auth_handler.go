package httpd

import (
	"errors"
	"net/http"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/service"
	"github.com/dictchannels/portal/internal/session"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", "Student Login", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/login", "error", "Could not read the form, please try again")
		return
	}

	req := &models.LoginRequest{
		Email:    r.PostFormValue("un"),
		Password: r.PostFormValue("pw"),
	}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, "/login", "error", err.Error())
		return
	}

	student, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAccountDisabled) {
			h.redirectWithFlash(w, r, "/login", "error", err.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.sessions.Create(r.Context(), w, session.Principal{
		StudentID: student.ID,
		Role:      session.RoleStudent,
	}); err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/portal", http.StatusSeeOther)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register", "Student Registration", nil)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/register", "error", "Could not read the form, please try again")
		return
	}

	req := &models.RegisterRequest{
		FirstName:       r.PostFormValue("first_name"),
		LastName:        r.PostFormValue("last_name"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, "/register", "error", "Please check the form: all fields are required and passwords must match")
		return
	}

	student, err := h.registrationService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			h.redirectWithFlash(w, r, "/register", "error", err.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.sessions.Create(r.Context(), w, session.Principal{
		StudentID: student.ID,
		Role:      session.RoleStudent,
	}); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.redirectWithFlash(w, r, "/portal", "success", "Welcome, "+student.FullName()+"! Your student ID is "+student.StudentID)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		h.logger.Error().Err(err).Msg("failed to destroy session")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
