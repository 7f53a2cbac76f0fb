package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/mail"
	"github.com/dictchannels/portal/internal/metrics"
	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/repository"
)

// IntakeService handles the public forms. Each submission is persisted
// first; the admin notification afterwards is best-effort and its failure
// is logged, never shown to the visitor.
type IntakeService interface {
	SubmitContact(ctx context.Context, req *models.ContactRequest) error
	SubmitQuote(ctx context.Context, req *models.QuoteRequest) error
	SubmitInquiry(ctx context.Context, req *models.ServiceInquiryRequest) error
	// SubscribeNewsletter reports alreadySubscribed=true for a known email
	// instead of an error; the visitor sees a soft acknowledgment.
	SubscribeNewsletter(ctx context.Context, req *models.NewsletterRequest) (alreadySubscribed bool, err error)
}

type intakeService struct {
	intakeRepo repository.IntakeRepository
	mailClient mail.Client
	adminEmail string
	now        func() time.Time
	logger     zerolog.Logger
}

func NewIntakeService(intakeRepo repository.IntakeRepository, mailClient mail.Client, adminEmail string, logger zerolog.Logger) IntakeService {
	return &intakeService{
		intakeRepo: intakeRepo,
		mailClient: mailClient,
		adminEmail: adminEmail,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *intakeService) SubmitContact(ctx context.Context, req *models.ContactRequest) error {
	sub := &models.ContactSubmission{
		ID:          uuid.New().String(),
		FirstName:   req.FirstName,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.intakeRepo.CreateContact(ctx, sub); err != nil {
		return fmt.Errorf("failed to save contact submission: %w", err)
	}
	metrics.FormSubmissionsTotal.WithLabelValues("contact").Inc()

	s.notify(ctx, "contact", mail.Message{
		To:      s.adminEmail,
		Subject: "New contact message: " + req.Subject,
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
			req.FirstName, req.Email, req.Phone, req.Message),
	})
	return nil
}

func (s *intakeService) SubmitQuote(ctx context.Context, req *models.QuoteRequest) error {
	sub := &models.QuoteSubmission{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Service:     req.Service,
		Message:     req.Message,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.intakeRepo.CreateQuote(ctx, sub); err != nil {
		return fmt.Errorf("failed to save quote submission: %w", err)
	}
	metrics.FormSubmissionsTotal.WithLabelValues("quote").Inc()

	s.notify(ctx, "quote", mail.Message{
		To:      s.adminEmail,
		Subject: "New quote request: " + req.Service,
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nService: %s\n\n%s",
			req.Name, req.Email, req.Phone, req.Service, req.Message),
	})
	return nil
}

func (s *intakeService) SubmitInquiry(ctx context.Context, req *models.ServiceInquiryRequest) error {
	sub := &models.ServiceInquiry{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Service:     req.Service,
		Message:     req.Message,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.intakeRepo.CreateInquiry(ctx, sub); err != nil {
		return fmt.Errorf("failed to save service inquiry: %w", err)
	}
	metrics.FormSubmissionsTotal.WithLabelValues("inquiry").Inc()

	s.notify(ctx, "inquiry", mail.Message{
		To:      s.adminEmail,
		Subject: "New service inquiry: " + req.Service,
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nService: %s\n\n%s",
			req.Name, req.Email, req.Phone, req.Service, req.Message),
	})
	return nil
}

func (s *intakeService) SubscribeNewsletter(ctx context.Context, req *models.NewsletterRequest) (bool, error) {
	exists, err := s.intakeRepo.NewsletterEmailExists(ctx, req.Email)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return true, nil
	}

	sub := &models.NewsletterSubscription{
		ID:           uuid.New().String(),
		Email:        req.Email,
		SubscribedAt: s.now().UTC(),
		IsActive:     true,
	}
	if err := s.intakeRepo.CreateNewsletterSubscription(ctx, sub); err != nil {
		// A concurrent subscribe between the check and the insert hits
		// the unique index; that is still "already subscribed".
		if isUniqueViolation(err, "") {
			return true, nil
		}
		return false, fmt.Errorf("failed to save subscription: %w", err)
	}

	metrics.FormSubmissionsTotal.WithLabelValues("newsletter").Inc()
	return false, nil
}

func (s *intakeService) notify(ctx context.Context, form string, msg mail.Message) {
	if err := s.mailClient.Send(ctx, msg); err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(form).Inc()
		s.logger.Error().Err(err).Str("form", form).Msg("failed to send admin notification")
	}
}
