package httpd

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/metrics"
	"github.com/dictchannels/portal/internal/service"
	"github.com/dictchannels/portal/internal/session"
)

type contextKey string

const principalKey contextKey = "principal"

// SessionStore is the slice of the session manager the handlers use.
type SessionStore interface {
	Create(ctx context.Context, w http.ResponseWriter, p session.Principal) error
	Get(ctx context.Context, r *http.Request) (*session.Principal, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
	PushFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, kind, text string) error
	PopFlashes(ctx context.Context, r *http.Request) ([]session.Flash, error)
}

type Handler struct {
	catalogService      service.CatalogService
	intakeService       service.IntakeService
	authService         service.AuthService
	registrationService service.RegistrationService
	dashboardService    service.DashboardService
	portalService       service.PortalService
	sessions            SessionStore
	renderer            *Renderer
	logger              zerolog.Logger
}

func NewHandler(
	catalogService service.CatalogService,
	intakeService service.IntakeService,
	authService service.AuthService,
	registrationService service.RegistrationService,
	dashboardService service.DashboardService,
	portalService service.PortalService,
	sessions SessionStore,
	renderer *Renderer,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		catalogService:      catalogService,
		intakeService:       intakeService,
		authService:         authService,
		registrationService: registrationService,
		dashboardService:    dashboardService,
		portalService:       portalService,
		sessions:            sessions,
		renderer:            renderer,
		logger:              logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public site.
	router.Get("/", h.HomePage)
	for route, page := range staticPages {
		router.Get(route, h.StaticPage(page))
	}
	router.Get("/services", h.ServicesPage)
	router.Get("/courses", h.CoursesPage)
	router.Get("/events", h.EventsPage)
	router.Get("/team", h.TeamPage)
	router.Get("/testimonial", h.TestimonialPage)
	router.Get("/contact", h.ContactPage)
	router.Get("/quote", h.QuotePage)

	// Form intake, POST only with redirect-after-POST.
	router.Post("/contact", h.SubmitContact)
	router.Post("/quote", h.SubmitQuote)
	router.Post("/inquiry", h.SubmitInquiry)
	router.Post("/newsletter", h.SubscribeNewsletter)

	// Auth.
	router.Get("/login", h.LoginPage)
	router.Post("/login", h.Login)
	router.Get("/register", h.RegisterPage)
	router.Post("/register", h.Register)
	router.Post("/logout", h.Logout)

	// Student portal.
	router.Route("/portal", func(r chi.Router) {
		r.Use(h.requireStudent)
		r.Get("/", h.Dashboard)
		r.Get("/profile", h.ProfilePage)
		r.Post("/profile", h.UpdateProfile)
		r.Get("/courses", h.MyCourses)
		r.Get("/assignments", h.Assignments)
		r.Post("/assignments/{id}/submit", h.SubmitAssignment)
		r.Get("/assignments/{id}/submission", h.DownloadSubmission)
		r.Get("/certificates", h.Certificates)
		r.Get("/certificates/{id}/download", h.DownloadCertificate)
		r.Get("/announcements", h.Announcements)
		r.Get("/messages", h.Messages)
		r.Post("/messages/{id}/read", h.MarkMessageRead)
		r.Get("/payments", h.Payments)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy","service":"portal"}`))
}

// requireStudent gates the portal routes. A missing or non-student session
// redirects to the login page with a notice, never a partial render.
func (h *Handler) requireStudent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := h.sessions.Get(r.Context(), r)
		if err != nil || principal.Role != session.RoleStudent {
			if err != nil && err != session.ErrNoSession {
				h.logger.Error().Err(err).Msg("failed to resolve session")
			}
			h.redirectWithFlash(w, r, "/login", "error", "Please log in to access the student portal")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func principalFrom(r *http.Request) *session.Principal {
	principal, _ := r.Context().Value(principalKey).(*session.Principal)
	return principal
}

// redirectWithFlash queues a one-shot notice and sends the browser on.
// Success and failure both land on a redirect; only the notice differs.
func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, kind, text string) {
	if err := h.sessions.PushFlash(r.Context(), w, r, kind, text); err != nil {
		h.logger.Error().Err(err).Msg("failed to push flash message")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// MetricsMiddleware records request durations per route pattern.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(
			pattern, r.Method, strconv.Itoa(ww.Status()),
		).Observe(time.Since(start).Seconds())
	})
}
