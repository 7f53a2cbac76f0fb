package httpd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/session"
)

type fakeSessionStore struct {
	principal *session.Principal
	flashes   []session.Flash
}

func (f *fakeSessionStore) Create(_ context.Context, _ http.ResponseWriter, p session.Principal) error {
	f.principal = &p
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, _ *http.Request) (*session.Principal, error) {
	if f.principal == nil {
		return nil, session.ErrNoSession
	}
	return f.principal, nil
}

func (f *fakeSessionStore) Destroy(_ context.Context, _ http.ResponseWriter, _ *http.Request) error {
	f.principal = nil
	return nil
}

func (f *fakeSessionStore) PushFlash(_ context.Context, _ http.ResponseWriter, _ *http.Request, kind, text string) error {
	f.flashes = append(f.flashes, session.Flash{Kind: kind, Text: text})
	return nil
}

func (f *fakeSessionStore) PopFlashes(_ context.Context, _ *http.Request) ([]session.Flash, error) {
	out := f.flashes
	f.flashes = nil
	return out, nil
}

type fakeIntakeService struct {
	subscribed []string
}

func (f *fakeIntakeService) SubmitContact(_ context.Context, _ *models.ContactRequest) error {
	return nil
}

func (f *fakeIntakeService) SubmitQuote(_ context.Context, _ *models.QuoteRequest) error {
	return nil
}

func (f *fakeIntakeService) SubmitInquiry(_ context.Context, _ *models.ServiceInquiryRequest) error {
	return nil
}

func (f *fakeIntakeService) SubscribeNewsletter(_ context.Context, req *models.NewsletterRequest) (bool, error) {
	f.subscribed = append(f.subscribed, req.Email)
	return false, nil
}

func portalRouter(t *testing.T, sessions *fakeSessionStore) http.Handler {
	h := &Handler{sessions: sessions, logger: zerolog.Nop()}

	router := chi.NewRouter()
	router.Route("/portal", func(r chi.Router) {
		r.Use(h.requireStudent)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			require.NotNil(t, principalFrom(r))
			w.WriteHeader(http.StatusOK)
		})
	})
	return router
}

func TestRequireStudent(t *testing.T) {
	t.Run("no session redirects to login", func(t *testing.T) {
		sessions := &fakeSessionStore{}
		router := portalRouter(t, sessions)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portal", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		require.Len(t, sessions.flashes, 1)
		assert.Equal(t, "error", sessions.flashes[0].Kind)
	})

	t.Run("non-student role redirects to login", func(t *testing.T) {
		sessions := &fakeSessionStore{principal: &session.Principal{StudentID: "x", Role: "staff"}}
		router := portalRouter(t, sessions)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portal", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("student role passes through", func(t *testing.T) {
		sessions := &fakeSessionStore{principal: &session.Principal{StudentID: "s1", Role: session.RoleStudent}}
		router := portalRouter(t, sessions)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portal", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLocalRedirectTarget(t *testing.T) {
	cases := []struct {
		name    string
		referer string
		want    string
	}{
		{"no referer", "", "/"},
		{"relative path", "/courses", "/courses"},
		{"same host", "http://portal.test/events", "/events"},
		{"foreign host", "https://evil.example/phish", "/"},
		{"scheme-relative", "//evil.example/phish", "/"},
		{"garbage", "http://%zz", "/"},
		{"oversized", "/" + strings.Repeat("a", 300), "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://portal.test/newsletter", nil)
			if tc.referer != "" {
				r.Header.Set("Referer", tc.referer)
			}
			assert.Equal(t, tc.want, localRedirectTarget(r))
		})
	}
}

func TestSubscribeNewsletter_ForeignRefererNotFollowed(t *testing.T) {
	sessions := &fakeSessionStore{}
	intake := &fakeIntakeService{}
	h := &Handler{sessions: sessions, intakeService: intake, logger: zerolog.Nop()}

	form := url.Values{"subemail": {"ada@example.com"}}
	r := httptest.NewRequest(http.MethodPost, "http://portal.test/newsletter", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Referer", "https://evil.example/phish")

	rec := httptest.NewRecorder()
	h.SubscribeNewsletter(rec, r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, []string{"ada@example.com"}, intake.subscribed)
}

func TestSubscribeNewsletter_LocalRefererFollowed(t *testing.T) {
	sessions := &fakeSessionStore{}
	h := &Handler{sessions: sessions, intakeService: &fakeIntakeService{}, logger: zerolog.Nop()}

	form := url.Values{"subemail": {"ada@example.com"}}
	r := httptest.NewRequest(http.MethodPost, "http://portal.test/newsletter", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Referer", "http://portal.test/courses")

	rec := httptest.NewRecorder()
	h.SubscribeNewsletter(rec, r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/courses", rec.Header().Get("Location"))
}
