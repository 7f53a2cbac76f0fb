package httpd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/session"
)

func TestNewRenderer_ParsesAllTemplates(t *testing.T) {
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	for route, page := range staticPages {
		assert.Contains(t, renderer.templates, page.Template, "missing template for %s", route)
	}
	for _, page := range []string{"home", "dashboard", "login", "register", "payments"} {
		assert.Contains(t, renderer.templates, page)
	}
}

func TestRenderer_RendersDashboard(t *testing.T) {
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	dashboard := &models.Dashboard{
		EnrolledCourses:    2,
		AvgProgress:        47,
		PendingAssignments: 1,
		RecentActivities: []models.ActivityItem{
			{Type: "assignment", Title: "Submitted: Lab 1", Date: time.Now(), Icon: "fas fa-tasks", Color: "primary"},
		},
	}

	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, "dashboard", PageData{
		Title:     "Dashboard",
		Principal: &session.Principal{StudentID: "s1", Role: session.RoleStudent},
		Data:      dashboard,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "47%")
	assert.Contains(t, body, "Submitted: Lab 1")
	assert.Contains(t, body, "My Portal")
}

func TestRenderer_RendersFlashes(t *testing.T) {
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, "login", PageData{
		Title: "Student Login",
		Flashes: []session.Flash{
			{Kind: "error", Text: "Please log in to access the student portal"},
		},
	})

	body := rec.Body.String()
	assert.Contains(t, body, "alert-danger")
	assert.Contains(t, body, "Please log in to access the student portal")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, "no_such_page", PageData{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenderer_RendersInfoPageBody(t *testing.T) {
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	page := staticPages["/faq"]
	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, page.Template, PageData{Title: page.Title, Data: page})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Frequently Asked Questions")
	// The body is trusted HTML and must land unescaped.
	assert.Contains(t, body, `<div class="accordion" id="faqAccordion">`)
}

func TestStaticPages_InfoPagesHaveBodies(t *testing.T) {
	for route, page := range staticPages {
		if page.Template != "info" {
			continue
		}
		assert.NotEmpty(t, page.Title, route)
		assert.NotEmpty(t, page.Lead, route)
		assert.NotEmpty(t, page.Body, route)
	}
}

func TestStaticPages_InquiryChoicesAreValid(t *testing.T) {
	for route, page := range staticPages {
		if page.Service == "" {
			continue
		}
		assert.True(t, models.IsValidServiceChoice(page.Service),
			"%s posts an unknown service choice %q", route, page.Service)
	}
}
