package httpd

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/service"
)

// maxUploadSize bounds assignment file uploads at 10 MiB.
const maxUploadSize = 10 << 20

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	dashboard, err := h.dashboardService.BuildDashboard(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "dashboard", "Dashboard", dashboard)
}

func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	student, err := h.registrationService.Student(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "profile", "My Profile", student)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/portal/profile", "error", "Could not read the form, please try again")
		return
	}

	req := &models.ProfileUpdateRequest{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
	}
	if err := req.Validate(); err != nil {
		h.redirectWithFlash(w, r, "/portal/profile", "error", "Please check the form: name and a valid email are required")
		return
	}

	if _, err := h.registrationService.UpdateProfile(r.Context(), principal.StudentID, req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			h.redirectWithFlash(w, r, "/portal/profile", "error", err.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.redirectWithFlash(w, r, "/portal/profile", "success", "Profile updated")
}

func (h *Handler) MyCourses(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	enrollments, err := h.portalService.Enrollments(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "my_courses", "My Courses", enrollments)
}

type assignmentsData struct {
	Assignments []models.AssignmentWithCourse
	Submissions []models.SubmissionWithAssignment
}

func (h *Handler) Assignments(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	ctx := r.Context()

	assignments, err := h.portalService.Assignments(ctx, principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	submissions, err := h.portalService.Submissions(ctx, principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "assignments", "Assignments", assignmentsData{
		Assignments: assignments,
		Submissions: submissions,
	})
}

func (h *Handler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	assignmentID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.redirectWithFlash(w, r, "/portal/assignments", "error", "Upload failed: the file may be too large")
		return
	}

	req := &service.SubmitAssignmentRequest{
		AssignmentID: assignmentID,
		StudentID:    principal.StudentID,
		Content:      r.PostFormValue("content"),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileName = header.Filename
		req.FileSize = header.Size
		req.ContentType = header.Header.Get("Content-Type")
	} else if err != http.ErrMissingFile {
		h.redirectWithFlash(w, r, "/portal/assignments", "error", "Could not read the uploaded file")
		return
	}

	if _, err := h.portalService.SubmitAssignment(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			h.redirectWithFlash(w, r, "/portal/assignments", "error", "Assignment not found")
		case errors.Is(err, service.ErrAlreadySubmitted):
			h.redirectWithFlash(w, r, "/portal/assignments", "error", "You have already submitted this assignment")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	h.redirectWithFlash(w, r, "/portal/assignments", "success", "Assignment submitted")
}

// DownloadSubmission streams back the student's own uploaded answer file.
func (h *Handler) DownloadSubmission(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	assignmentID := chi.URLParam(r, "id")

	file, err := h.portalService.SubmissionFile(r.Context(), principal.StudentID, assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			h.redirectWithFlash(w, r, "/portal/assignments", "error", "No uploaded file for this assignment")
			return
		}
		h.serverError(w, r, err)
		return
	}
	defer file.Reader.Close()

	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.Header().Set("Content-Type", "application/octet-stream")
	if file.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	}
	if _, err := io.Copy(w, file.Reader); err != nil {
		h.logger.Error().Err(err).Str("assignment_id", assignmentID).Msg("failed to stream submission file")
	}
}

func (h *Handler) Certificates(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	certs, err := h.portalService.Certificates(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "certificates", "My Certificates", certs)
}

func (h *Handler) DownloadCertificate(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	certificateID := chi.URLParam(r, "id")

	url, err := h.portalService.CertificateDownloadURL(r.Context(), principal.StudentID, certificateID)
	if err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			h.redirectWithFlash(w, r, "/portal/certificates", "error", "Certificate not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *Handler) Announcements(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	announcements, err := h.portalService.Announcements(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "announcements", "Announcements", announcements)
}

type messagesData struct {
	Messages []models.MessageWithSender
	Unread   int
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	messages, unread, err := h.portalService.Messages(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "messages", "Messages", messagesData{
		Messages: messages,
		Unread:   unread,
	})
}

func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	messageID := chi.URLParam(r, "id")

	if err := h.portalService.MarkMessageRead(r.Context(), principal.StudentID, messageID); err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/portal/messages", http.StatusSeeOther)
}

type paymentsData struct {
	Payments []models.Payment
	Total    float64
}

func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	payments, total, err := h.portalService.Payments(r.Context(), principal.StudentID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "payments", "Payment History", paymentsData{
		Payments: payments,
		Total:    total,
	})
}
