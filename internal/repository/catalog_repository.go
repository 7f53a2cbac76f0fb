package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

// CatalogRepository serves the read-only content shown on the public pages.
// Rows are maintained through the admin tooling, never through this service.
type CatalogRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListActiveTeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

type catalogRepository struct {
	*PostgresRepository
}

func NewCatalogRepository(db *sql.DB, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *catalogRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `SELECT id, title, description, link FROM courses ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Link); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

func (r *catalogRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	query := `SELECT id, title, description, icon, page FROM services ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Page); err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *catalogRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	query := `SELECT id, name, profession, image_url, text FROM testimonials ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Profession, &t.ImageURL, &t.Text); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, rows.Err()
}

func (r *catalogRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT id, title, description, location, starts_at FROM events ORDER BY starts_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *catalogRepository) ListActiveTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT id, name, designation, bio, image_url, display_order, is_active, created_at
		FROM team_members
		WHERE is_active = TRUE
		ORDER BY display_order, name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Designation, &m.Bio, &m.ImageURL,
			&m.DisplayOrder, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
