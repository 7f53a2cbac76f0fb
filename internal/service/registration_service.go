package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dictchannels/portal/internal/metrics"
	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/repository"
)

const uniqueViolationCode = "23505"

// allocateRetries bounds the identifier retry loop. The counter makes a
// collision near impossible; the loop only covers operator-seeded rows.
const allocateRetries = 3

type RegistrationService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Student, error)
	Student(ctx context.Context, studentID string) (*models.Student, error)
	UpdateProfile(ctx context.Context, studentID string, req *models.ProfileUpdateRequest) (*models.Student, error)
	// AllocateStudentID mints the next institute identifier for the year,
	// e.g. DCT20260012.
	AllocateStudentID(ctx context.Context, year int) (string, error)
}

type registrationService struct {
	studentRepo repository.StudentRepository
	idPrefix    string
	now         func() time.Time
	logger      zerolog.Logger
}

func NewRegistrationService(studentRepo repository.StudentRepository, idPrefix string, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		studentRepo: studentRepo,
		idPrefix:    idPrefix,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *registrationService) AllocateStudentID(ctx context.Context, year int) (string, error) {
	seq, err := s.studentRepo.NextIDSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to allocate identifier sequence: %w", err)
	}

	return fmt.Sprintf("%s%d%04d", s.idPrefix, year, seq), nil
}

func (s *registrationService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Student, error) {
	existing, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	year := now.Year()

	var student *models.Student
	for attempt := 0; attempt < allocateRetries; attempt++ {
		studentID, err := s.AllocateStudentID(ctx, year)
		if err != nil {
			return nil, err
		}

		student = &models.Student{
			ID:             uuid.New().String(),
			StudentID:      studentID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			PasswordHash:   string(hash),
			EnrollmentDate: now,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		err = s.studentRepo.Create(ctx, student)
		if err == nil {
			break
		}
		if isUniqueViolation(err, "students_student_id_key") {
			// An operator seeded this identifier by hand; the next
			// counter value is free again.
			s.logger.Warn().Str("student_id", studentID).Msg("identifier collision, retrying")
			student = nil
			continue
		}
		if isUniqueViolation(err, "students_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("failed to allocate unique identifier after %d attempts", allocateRetries)
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("student_id", student.StudentID).Msg("student registered")
	return student, nil
}

func (s *registrationService) Student(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *registrationService) UpdateProfile(ctx context.Context, studentID string, req *models.ProfileUpdateRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	if req.Email != student.Email {
		other, err := s.studentRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
		if other != nil {
			return nil, ErrEmailTaken
		}
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Phone = req.Phone
	student.UpdatedAt = s.now().UTC()

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if isUniqueViolation(err, "students_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return student, nil
}

func isUniqueViolation(err error, constraint string) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}
	if pqErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
