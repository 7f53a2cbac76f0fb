package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/repository"
	"github.com/dictchannels/portal/internal/storage"
)

// presignedURLTTL is how long a certificate download link stays valid.
const presignedURLTTL = int64(15 * 60)

// SubmissionFile is an uploaded answer streamed back to its owner.
// Callers must close Reader.
type SubmissionFile struct {
	Reader io.ReadCloser
	Name   string
	Size   int64
}

// SubmitAssignmentRequest carries an uploaded answer file plus optional
// inline notes.
type SubmitAssignmentRequest struct {
	AssignmentID string
	StudentID    string
	Content      string
	File         io.Reader
	FileName     string
	FileSize     int64
	ContentType  string
}

type PortalService interface {
	Enrollments(ctx context.Context, studentID string) ([]models.EnrollmentWithCourse, error)
	Assignments(ctx context.Context, studentID string) ([]models.AssignmentWithCourse, error)
	Submissions(ctx context.Context, studentID string) ([]models.SubmissionWithAssignment, error)
	SubmitAssignment(ctx context.Context, req *SubmitAssignmentRequest) (*models.AssignmentSubmission, error)
	SubmissionFile(ctx context.Context, studentID, assignmentID string) (*SubmissionFile, error)
	Certificates(ctx context.Context, studentID string) ([]models.CertificateWithCourse, error)
	CertificateDownloadURL(ctx context.Context, studentID, certificateID string) (string, error)
	Announcements(ctx context.Context, studentID string) ([]models.Announcement, error)
	Messages(ctx context.Context, studentID string) ([]models.MessageWithSender, int, error)
	MarkMessageRead(ctx context.Context, studentID, messageID string) error
	Payments(ctx context.Context, studentID string) ([]models.Payment, float64, error)
}

type portalService struct {
	enrollmentRepo   repository.EnrollmentRepository
	assignmentRepo   repository.AssignmentRepository
	submissionRepo   repository.SubmissionRepository
	certificateRepo  repository.CertificateRepository
	announcementRepo repository.AnnouncementRepository
	messageRepo      repository.MessageRepository
	paymentRepo      repository.PaymentRepository
	objectStorage    storage.ObjectStorage
	now              func() time.Time
	logger           zerolog.Logger
}

func NewPortalService(
	enrollmentRepo repository.EnrollmentRepository,
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
	certificateRepo repository.CertificateRepository,
	announcementRepo repository.AnnouncementRepository,
	messageRepo repository.MessageRepository,
	paymentRepo repository.PaymentRepository,
	objectStorage storage.ObjectStorage,
	logger zerolog.Logger,
) PortalService {
	return &portalService{
		enrollmentRepo:   enrollmentRepo,
		assignmentRepo:   assignmentRepo,
		submissionRepo:   submissionRepo,
		certificateRepo:  certificateRepo,
		announcementRepo: announcementRepo,
		messageRepo:      messageRepo,
		paymentRepo:      paymentRepo,
		objectStorage:    objectStorage,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *portalService) Enrollments(ctx context.Context, studentID string) ([]models.EnrollmentWithCourse, error) {
	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}
	return enrollments, nil
}

func (s *portalService) Assignments(ctx context.Context, studentID string) ([]models.AssignmentWithCourse, error) {
	assignments, err := s.assignmentRepo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	return assignments, nil
}

func (s *portalService) Submissions(ctx context.Context, studentID string) ([]models.SubmissionWithAssignment, error) {
	subs, err := s.submissionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	return subs, nil
}

func (s *portalService) SubmitAssignment(ctx context.Context, req *SubmitAssignmentRequest) (*models.AssignmentSubmission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}

	existing, err := s.submissionRepo.GetByAssignmentAndStudent(ctx, req.AssignmentID, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing submission: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadySubmitted
	}

	submissionID := uuid.New().String()

	objectKey := ""
	if req.File != nil && req.FileSize > 0 {
		objectKey = fmt.Sprintf("submissions/%s/%s%s", req.AssignmentID, submissionID, path.Ext(req.FileName))
		if err := s.objectStorage.Upload(ctx, objectKey, req.File, req.FileSize, req.ContentType); err != nil {
			return nil, fmt.Errorf("failed to upload submission file: %w", err)
		}
	}

	sub := &models.AssignmentSubmission{
		ID:           submissionID,
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		SubmittedAt:  s.now().UTC(),
		ObjectKey:    objectKey,
		Content:      req.Content,
		Status:       models.SubmissionStatusSubmitted.String(),
	}

	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		if objectKey != "" {
			if delErr := s.objectStorage.Delete(ctx, objectKey); delErr != nil {
				s.logger.Error().Err(delErr).Str("object_key", objectKey).Msg("failed to clean up orphaned upload")
			}
		}
		// A concurrent submit of the same assignment hits the unique pair
		// index.
		if isUniqueViolation(err, "") {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.logger.Info().Str("assignment_id", req.AssignmentID).Str("student_id", req.StudentID).Msg("assignment submitted")
	return sub, nil
}

// SubmissionFile streams back the file a student uploaded for an
// assignment. Only the owner's submission is reachable.
func (s *portalService) SubmissionFile(ctx context.Context, studentID, assignmentID string) (*SubmissionFile, error) {
	sub, err := s.submissionRepo.GetByAssignmentAndStudent(ctx, assignmentID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	if sub == nil || sub.ObjectKey == "" {
		return nil, ErrSubmissionNotFound
	}

	reader, size, err := s.objectStorage.Download(ctx, sub.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download submission file: %w", err)
	}

	return &SubmissionFile{
		Reader: reader,
		Name:   path.Base(sub.ObjectKey),
		Size:   size,
	}, nil
}

func (s *portalService) Certificates(ctx context.Context, studentID string) ([]models.CertificateWithCourse, error) {
	certs, err := s.certificateRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificates: %w", err)
	}
	return certs, nil
}

// CertificateDownloadURL hands out a short-lived presigned link. Ownership
// is checked so one student cannot fetch another's certificate.
func (s *portalService) CertificateDownloadURL(ctx context.Context, studentID, certificateID string) (string, error) {
	certs, err := s.certificateRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return "", fmt.Errorf("failed to load certificates: %w", err)
	}

	for _, cert := range certs {
		if cert.ID == certificateID && cert.ObjectKey != "" {
			// An issued row whose file never landed in the bucket reads the
			// same as no certificate.
			exists, err := s.objectStorage.Exists(ctx, cert.ObjectKey)
			if err != nil {
				return "", fmt.Errorf("failed to check certificate file: %w", err)
			}
			if !exists {
				return "", ErrCertificateNotFound
			}

			url, err := s.objectStorage.PresignedURL(ctx, cert.ObjectKey, presignedURLTTL)
			if err != nil {
				return "", fmt.Errorf("failed to presign certificate: %w", err)
			}
			return url, nil
		}
	}
	return "", ErrCertificateNotFound
}

func (s *portalService) Announcements(ctx context.Context, studentID string) ([]models.Announcement, error) {
	announcements, err := s.announcementRepo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load announcements: %w", err)
	}
	return announcements, nil
}

func (s *portalService) Messages(ctx context.Context, studentID string) ([]models.MessageWithSender, int, error) {
	messages, err := s.messageRepo.ListForRecipient(ctx, studentID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load messages: %w", err)
	}

	unread, err := s.messageRepo.CountUnread(ctx, studentID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return messages, unread, nil
}

func (s *portalService) MarkMessageRead(ctx context.Context, studentID, messageID string) error {
	if err := s.messageRepo.MarkRead(ctx, messageID, studentID); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (s *portalService) Payments(ctx context.Context, studentID string) ([]models.Payment, float64, error) {
	payments, err := s.paymentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load payments: %w", err)
	}

	total, err := s.paymentRepo.TotalCompletedByStudent(ctx, studentID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to total payments: %w", err)
	}

	return payments, total, nil
}
