package service

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictchannels/portal/internal/models"
)

type mockAnnouncementRepo struct {
	announcements []models.Announcement
}

func (m *mockAnnouncementRepo) ListForStudent(_ context.Context, _ string) ([]models.Announcement, error) {
	return m.announcements, nil
}

type mockMessageRepo struct {
	messages []models.MessageWithSender
}

func (m *mockMessageRepo) ListForRecipient(_ context.Context, recipientID string) ([]models.MessageWithSender, error) {
	var out []models.MessageWithSender
	for _, msg := range m.messages {
		if msg.RecipientID == recipientID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockMessageRepo) MarkRead(_ context.Context, messageID, recipientID string) error {
	for i, msg := range m.messages {
		if msg.ID == messageID && msg.RecipientID == recipientID {
			m.messages[i].IsRead = true
		}
	}
	return nil
}

func (m *mockMessageRepo) CountUnread(_ context.Context, recipientID string) (int, error) {
	count := 0
	for _, msg := range m.messages {
		if msg.RecipientID == recipientID && !msg.IsRead {
			count++
		}
	}
	return count, nil
}

type mockPaymentRepo struct {
	payments []models.Payment
}

func (m *mockPaymentRepo) ListByStudent(_ context.Context, studentID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) TotalCompletedByStudent(_ context.Context, studentID string) (float64, error) {
	total := 0.0
	for _, p := range m.payments {
		if p.StudentID == studentID && p.Status == "completed" {
			total += p.Amount
		}
	}
	return total, nil
}

type mockObjectStorage struct {
	objects map[string][]byte
}

func newMockObjectStorage() *mockObjectStorage {
	return &mockObjectStorage{objects: make(map[string][]byte)}
}

func (m *mockObjectStorage) Upload(_ context.Context, key string, data io.Reader, _ int64, _ string) error {
	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.objects[key] = buf
	return nil
}

func (m *mockObjectStorage) Download(_ context.Context, key string) (io.ReadCloser, int64, error) {
	buf := m.objects[key]
	return io.NopCloser(bytes.NewReader(buf)), int64(len(buf)), nil
}

func (m *mockObjectStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *mockObjectStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func (m *mockObjectStorage) PresignedURL(_ context.Context, key string, _ int64) (string, error) {
	return "https://storage.example.com/" + key, nil
}

func newPortalFixture(assignmentRepo *mockAssignmentRepo, submissionRepo *mockSubmissionRepo, certificateRepo *mockCertificateRepo) (PortalService, *mockObjectStorage) {
	objectStorage := newMockObjectStorage()
	svc := NewPortalService(
		&mockEnrollmentRepo{},
		assignmentRepo,
		submissionRepo,
		certificateRepo,
		&mockAnnouncementRepo{},
		&mockMessageRepo{},
		&mockPaymentRepo{},
		objectStorage,
		zerolog.Nop(),
	)
	return svc, objectStorage
}

func TestSubmitAssignment_UploadsFileAndPersists(t *testing.T) {
	due := time.Now().Add(48 * time.Hour)
	assignmentRepo := &mockAssignmentRepo{assignments: []models.AssignmentWithCourse{
		{Assignment: models.Assignment{ID: "a1", Title: "Lab 1", DueDate: due}},
	}}
	submissionRepo := &mockSubmissionRepo{}
	svc, objectStorage := newPortalFixture(assignmentRepo, submissionRepo, &mockCertificateRepo{})

	sub, err := svc.SubmitAssignment(context.Background(), &SubmitAssignmentRequest{
		AssignmentID: "a1",
		StudentID:    "s1",
		Content:      "see attached",
		File:         bytes.NewReader([]byte("answer")),
		FileName:     "answer.pdf",
		FileSize:     6,
		ContentType:  "application/pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionStatusSubmitted.String(), sub.Status)
	assert.NotEmpty(t, sub.ObjectKey)
	assert.Contains(t, objectStorage.objects, sub.ObjectKey)
	assert.Len(t, submissionRepo.submissions, 1)
}

func TestSubmitAssignment_SecondSubmissionRejected(t *testing.T) {
	assignmentRepo := &mockAssignmentRepo{assignments: []models.AssignmentWithCourse{
		{Assignment: models.Assignment{ID: "a1", Title: "Lab 1"}},
	}}
	submissionRepo := &mockSubmissionRepo{}
	svc, _ := newPortalFixture(assignmentRepo, submissionRepo, &mockCertificateRepo{})
	ctx := context.Background()

	_, err := svc.SubmitAssignment(ctx, &SubmitAssignmentRequest{
		AssignmentID: "a1", StudentID: "s1", Content: "first",
	})
	require.NoError(t, err)

	_, err = svc.SubmitAssignment(ctx, &SubmitAssignmentRequest{
		AssignmentID: "a1", StudentID: "s1", Content: "second",
	})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Len(t, submissionRepo.submissions, 1)
}

func TestSubmitAssignment_UnknownAssignment(t *testing.T) {
	svc, _ := newPortalFixture(&mockAssignmentRepo{}, &mockSubmissionRepo{}, &mockCertificateRepo{})

	_, err := svc.SubmitAssignment(context.Background(), &SubmitAssignmentRequest{
		AssignmentID: "missing", StudentID: "s1",
	})
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestCertificateDownloadURL(t *testing.T) {
	certificateRepo := &mockCertificateRepo{certificates: []models.CertificateWithCourse{
		{Certificate: models.Certificate{ID: "c1", StudentID: "s1", ObjectKey: "certificates/c1.pdf"}},
		{Certificate: models.Certificate{ID: "c2", StudentID: "s2", ObjectKey: "certificates/c2.pdf"}},
	}}
	svc, objectStorage := newPortalFixture(&mockAssignmentRepo{}, &mockSubmissionRepo{}, certificateRepo)
	objectStorage.objects["certificates/c1.pdf"] = []byte("pdf")
	objectStorage.objects["certificates/c2.pdf"] = []byte("pdf")
	ctx := context.Background()

	url, err := svc.CertificateDownloadURL(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/certificates/c1.pdf", url)

	// A student cannot fetch another student's certificate.
	_, err = svc.CertificateDownloadURL(ctx, "s1", "c2")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestCertificateDownloadURL_FileNeverStored(t *testing.T) {
	certificateRepo := &mockCertificateRepo{certificates: []models.CertificateWithCourse{
		{Certificate: models.Certificate{ID: "c1", StudentID: "s1", ObjectKey: "certificates/c1.pdf"}},
	}}
	svc, _ := newPortalFixture(&mockAssignmentRepo{}, &mockSubmissionRepo{}, certificateRepo)

	_, err := svc.CertificateDownloadURL(context.Background(), "s1", "c1")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestSubmissionFile_RoundTrip(t *testing.T) {
	assignmentRepo := &mockAssignmentRepo{assignments: []models.AssignmentWithCourse{
		{Assignment: models.Assignment{ID: "a1", Title: "Lab 1"}},
	}}
	submissionRepo := &mockSubmissionRepo{}
	svc, _ := newPortalFixture(assignmentRepo, submissionRepo, &mockCertificateRepo{})
	ctx := context.Background()

	_, err := svc.SubmitAssignment(ctx, &SubmitAssignmentRequest{
		AssignmentID: "a1",
		StudentID:    "s1",
		File:         bytes.NewReader([]byte("answer")),
		FileName:     "answer.pdf",
		FileSize:     6,
		ContentType:  "application/pdf",
	})
	require.NoError(t, err)

	file, err := svc.SubmissionFile(ctx, "s1", "a1")
	require.NoError(t, err)
	defer file.Reader.Close()

	content, err := io.ReadAll(file.Reader)
	require.NoError(t, err)
	assert.Equal(t, "answer", string(content))
	assert.Equal(t, int64(6), file.Size)

	// Another student's lookup finds nothing.
	_, err = svc.SubmissionFile(ctx, "s2", "a1")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestMessages_ReportsUnreadCount(t *testing.T) {
	messageRepo := &mockMessageRepo{messages: []models.MessageWithSender{
		{Message: models.Message{ID: "m1", RecipientID: "s1", Subject: "Welcome", IsRead: true}},
		{Message: models.Message{ID: "m2", RecipientID: "s1", Subject: "Fees due"}},
		{Message: models.Message{ID: "m3", RecipientID: "s2", Subject: "Other inbox"}},
	}}
	svc := NewPortalService(
		&mockEnrollmentRepo{},
		&mockAssignmentRepo{},
		&mockSubmissionRepo{},
		&mockCertificateRepo{},
		&mockAnnouncementRepo{},
		messageRepo,
		&mockPaymentRepo{},
		newMockObjectStorage(),
		zerolog.Nop(),
	)

	messages, unread, err := svc.Messages(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, 1, unread)
}
