package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

// IntakeRepository persists visitor-facing form submissions. Every Create
// happens before any notification is attempted so a mail outage never
// loses a lead.
type IntakeRepository interface {
	CreateContact(ctx context.Context, sub *models.ContactSubmission) error
	CreateQuote(ctx context.Context, sub *models.QuoteSubmission) error
	CreateInquiry(ctx context.Context, sub *models.ServiceInquiry) error
	CreateNewsletterSubscription(ctx context.Context, sub *models.NewsletterSubscription) error
	NewsletterEmailExists(ctx context.Context, email string) (bool, error)
}

type intakeRepository struct {
	*PostgresRepository
}

func NewIntakeRepository(db *sql.DB, logger zerolog.Logger) IntakeRepository {
	return &intakeRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *intakeRepository) CreateContact(ctx context.Context, sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, first_name, email, phone, subject, message, submitted_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.FirstName, sub.Email, sub.Phone, sub.Subject, sub.Message,
		sub.SubmittedAt, sub.IsRead)
	return err
}

func (r *intakeRepository) CreateQuote(ctx context.Context, sub *models.QuoteSubmission) error {
	query := `
		INSERT INTO quote_submissions (id, name, phone, email, service, message, submitted_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Name, sub.Phone, sub.Email, sub.Service, sub.Message,
		sub.SubmittedAt, sub.IsRead)
	return err
}

func (r *intakeRepository) CreateInquiry(ctx context.Context, sub *models.ServiceInquiry) error {
	query := `
		INSERT INTO service_inquiries (id, name, phone, email, service, message, submitted_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Name, sub.Phone, sub.Email, sub.Service, sub.Message,
		sub.SubmittedAt, sub.IsRead)
	return err
}

func (r *intakeRepository) CreateNewsletterSubscription(ctx context.Context, sub *models.NewsletterSubscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, subscribed_at, is_active)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, sub.ID, sub.Email, sub.SubscribedAt, sub.IsActive)
	return err
}

func (r *intakeRepository) NewsletterEmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM newsletter_subscriptions WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
