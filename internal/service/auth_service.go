package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dictchannels/portal/internal/metrics"
	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/repository"
)

type AuthService interface {
	// Login checks the login name and password pair. The login name is the
	// student's email or their student number. The same error comes back
	// for an unknown account and a wrong password.
	Login(ctx context.Context, login, password string) (*models.Student, error)
}

type authService struct {
	studentRepo repository.StudentRepository
	logger      zerolog.Logger
}

func NewAuthService(studentRepo repository.StudentRepository, logger zerolog.Logger) AuthService {
	return &authService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (s *authService) Login(ctx context.Context, login, password string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if student == nil {
		student, err = s.studentRepo.GetByStudentID(ctx, login)
		if err != nil {
			return nil, fmt.Errorf("failed to load student: %w", err)
		}
	}
	if student == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	if !student.IsActive {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return nil, ErrAccountDisabled
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("student_id", student.StudentID).Msg("student logged in")
	return student, nil
}
