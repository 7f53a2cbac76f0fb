package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/repository"
)

type CatalogService interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Services(ctx context.Context) ([]models.Service, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	Events(ctx context.Context) ([]models.Event, error)
	TeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

func NewCatalogService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *catalogService) Courses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.catalogRepo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return courses, nil
}

func (s *catalogService) Services(ctx context.Context) ([]models.Service, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	return services, nil
}

func (s *catalogService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.catalogRepo.ListTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *catalogService) Events(ctx context.Context) ([]models.Event, error) {
	events, err := s.catalogRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}

func (s *catalogService) TeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.catalogRepo.ListActiveTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return members, nil
}
