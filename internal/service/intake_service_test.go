package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictchannels/portal/internal/models"
)

func newIntakeFixture() (*mockIntakeRepo, *mockMailClient, IntakeService) {
	repo := newMockIntakeRepo()
	mailer := &mockMailClient{}
	svc := NewIntakeService(repo, mailer, "admin@d-ictchannels.com", zerolog.Nop())
	return repo, mailer, svc
}

func TestSubmitContact_PersistsAndNotifies(t *testing.T) {
	repo, mailer, svc := newIntakeFixture()

	err := svc.SubmitContact(context.Background(), &models.ContactRequest{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "0800000000",
		Subject:   "Course question",
		Message:   "When does the next cohort start?",
	})
	require.NoError(t, err)

	require.Len(t, repo.contacts, 1)
	assert.Equal(t, "Course question", repo.contacts[0].Subject)
	assert.False(t, repo.contacts[0].IsRead)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "admin@d-ictchannels.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Body, "ada@example.com")
}

func TestSubmitContact_NotificationFailureIsSwallowed(t *testing.T) {
	repo, mailer, svc := newIntakeFixture()
	mailer.err = errors.New("smtp down")

	err := svc.SubmitContact(context.Background(), &models.ContactRequest{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "0800000000",
		Subject:   "Hi",
		Message:   "Hello",
	})

	// The visitor's submission still lands even when mail is down.
	require.NoError(t, err)
	assert.Len(t, repo.contacts, 1)
}

func TestContactRequest_BlankFieldFailsValidation(t *testing.T) {
	req := &models.ContactRequest{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "0800000000",
		Subject:   "",
		Message:   "Hello",
	}
	assert.Error(t, req.Validate())
}

func TestSubmitQuote_PersistsAndNotifies(t *testing.T) {
	repo, mailer, svc := newIntakeFixture()

	err := svc.SubmitQuote(context.Background(), &models.QuoteRequest{
		Name:    "Ada Lovelace",
		Phone:   "0800000000",
		Email:   "ada@example.com",
		Service: "SOFTWARE DEVELOPMENT SERVICE",
		Message: "Need an inventory system",
	})
	require.NoError(t, err)

	require.Len(t, repo.quotes, 1)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Subject, "SOFTWARE DEVELOPMENT SERVICE")
}

func TestQuoteRequest_RejectsUnknownService(t *testing.T) {
	req := &models.QuoteRequest{
		Name:    "Ada",
		Phone:   "0800000000",
		Email:   "ada@example.com",
		Service: "TIME TRAVEL CONSULTING",
		Message: "Hello",
	}
	assert.Error(t, req.Validate())
}

func TestSubmitInquiry_Persists(t *testing.T) {
	repo, _, svc := newIntakeFixture()

	err := svc.SubmitInquiry(context.Background(), &models.ServiceInquiryRequest{
		Name:    "Ada Lovelace",
		Phone:   "0800000000",
		Email:   "ada@example.com",
		Service: "WEBSITE SEO Optimization",
		Message: "Our site is invisible on search",
	})
	require.NoError(t, err)
	assert.Len(t, repo.inquiries, 1)
}

func TestSubscribeNewsletter_NewAndDuplicate(t *testing.T) {
	repo, _, svc := newIntakeFixture()
	ctx := context.Background()

	already, err := svc.SubscribeNewsletter(ctx, &models.NewsletterRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.False(t, already)
	assert.Len(t, repo.subscribers, 1)

	already, err = svc.SubscribeNewsletter(ctx, &models.NewsletterRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.True(t, already, "duplicate subscription is a soft success")
	assert.Len(t, repo.subscribers, 1, "no second row persisted")
}
