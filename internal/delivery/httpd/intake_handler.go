package httpd

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dictchannels/portal/internal/models"
)

// Form handlers follow redirect-after-POST on every outcome: a validation
// failure and a success differ only in the queued notice.

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/contact", "error", "Could not read the form, please try again")
		return
	}

	req := &models.ContactRequest{
		FirstName: r.PostFormValue("fname"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Subject:   r.PostFormValue("subject"),
		Message:   r.PostFormValue("message"),
	}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, "/contact", "error", err.Error())
		return
	}

	if err := h.intakeService.SubmitContact(r.Context(), req); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.redirectWithFlash(w, r, "/contact", "success", "Thank you for contacting us, we will get back to you shortly")
}

func (h *Handler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/quote", "error", "Could not read the form, please try again")
		return
	}

	req := &models.QuoteRequest{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Email:   r.PostFormValue("email"),
		Service: r.PostFormValue("service"),
		Message: r.PostFormValue("message"),
	}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, "/quote", "error", "Please fill in all fields and pick a valid service")
		return
	}

	if err := h.intakeService.SubmitQuote(r.Context(), req); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.redirectWithFlash(w, r, "/quote", "success", "Your quote request has been received")
}

func (h *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/services", "error", "Could not read the form, please try again")
		return
	}

	req := &models.ServiceInquiryRequest{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Email:   r.PostFormValue("email"),
		Service: r.PostFormValue("service"),
		Message: r.PostFormValue("message"),
	}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, "/services", "error", "Please fill in all fields and pick a valid service")
		return
	}

	if err := h.intakeService.SubmitInquiry(r.Context(), req); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.redirectWithFlash(w, r, "/services", "success", "Your inquiry has been received")
}

// localRedirectTarget returns the referer's path when it points at this
// site, otherwise "/". External hosts never become a redirect target.
func localRedirectTarget(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref == "" || len(ref) > 200 {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "/"
	}
	if u.Host != "" && u.Host != r.Host {
		return "/"
	}
	if u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.Path
}

func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	// The subscribe box sits in the footer; send the visitor back where
	// they came from when the referer is local.
	target := localRedirectTarget(r)

	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, target, "error", "Could not read the form, please try again")
		return
	}

	req := &models.NewsletterRequest{Email: r.PostFormValue("subemail")}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, target, "error", "Please enter a valid email address")
		return
	}

	already, err := h.intakeService.SubscribeNewsletter(r.Context(), req)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if already {
		h.redirectWithFlash(w, r, target, "info", "You are already subscribed to our newsletter")
		return
	}

	h.redirectWithFlash(w, r, target, "success", "Thank you for subscribing to our newsletter")
}
