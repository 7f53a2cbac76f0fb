package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
	"github.com/dictchannels/portal/internal/repository"
)

const (
	recentEnrollmentsLimit  = 2
	recentSubmissionsLimit  = 3
	recentCertificatesLimit = 2
	activityFeedLimit       = 5
	upcomingWindow          = 7 * 24 * time.Hour
	upcomingLimit           = 3
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, studentID string) (*models.Dashboard, error)
}

type dashboardService struct {
	enrollmentRepo  repository.EnrollmentRepository
	submissionRepo  repository.SubmissionRepository
	certificateRepo repository.CertificateRepository
	assignmentRepo  repository.AssignmentRepository
	now             func() time.Time
	logger          zerolog.Logger
}

func NewDashboardService(
	enrollmentRepo repository.EnrollmentRepository,
	submissionRepo repository.SubmissionRepository,
	certificateRepo repository.CertificateRepository,
	assignmentRepo repository.AssignmentRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		enrollmentRepo:  enrollmentRepo,
		submissionRepo:  submissionRepo,
		certificateRepo: certificateRepo,
		assignmentRepo:  assignmentRepo,
		now:             time.Now,
		logger:          logger,
	}
}

// BuildDashboard assembles the student's overview from independent reads.
// The queries do not share a transaction; a write landing mid-aggregation
// can skew one card against another, which is fine for a display page.
func (s *dashboardService) BuildDashboard(ctx context.Context, studentID string) (*models.Dashboard, error) {
	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}

	pendingCount, err := s.submissionRepo.CountByStudentAndStatuses(ctx, studentID,
		[]string{models.SubmissionStatusPending.String(), models.SubmissionStatusSubmitted.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	certCount, err := s.certificateRepo.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count certificates: %w", err)
	}

	recentSubs, err := s.submissionRepo.RecentByStudent(ctx, studentID, recentSubmissionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent submissions: %w", err)
	}

	recentCerts, err := s.certificateRepo.RecentByStudent(ctx, studentID, recentCertificatesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent certificates: %w", err)
	}

	now := s.now().UTC()
	upcoming, err := s.assignmentRepo.ListUpcomingByStudent(ctx, studentID, now, now.Add(upcomingWindow), upcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming assignments: %w", err)
	}

	recentEnrollments := enrollments
	if len(recentEnrollments) > recentEnrollmentsLimit {
		recentEnrollments = recentEnrollments[:recentEnrollmentsLimit]
	}

	return &models.Dashboard{
		EnrolledCourses:     len(enrollments),
		AvgProgress:         averageProgress(enrollments),
		PendingAssignments:  pendingCount,
		CertificatesCount:   certCount,
		RecentEnrollments:   recentEnrollments,
		RecentActivities:    mergeActivities(recentSubs, recentCerts),
		UpcomingAssignments: upcoming,
	}, nil
}

// averageProgress is integer division over the enrollment count; no
// enrollments means 0, not a division by zero.
func averageProgress(enrollments []models.EnrollmentWithCourse) int {
	if len(enrollments) == 0 {
		return 0
	}

	sum := 0
	for _, e := range enrollments {
		sum += e.ProgressPercentage
	}
	return sum / len(enrollments)
}

// mergeActivities folds recent submissions and certificates into one feed,
// newest first, capped at activityFeedLimit entries. Both inputs are small,
// so concatenate-then-sort is fine.
func mergeActivities(subs []models.SubmissionWithAssignment, certs []models.CertificateWithCourse) []models.ActivityItem {
	items := make([]models.ActivityItem, 0, len(subs)+len(certs))

	for _, sub := range subs {
		items = append(items, models.ActivityItem{
			Type:  "assignment",
			Title: "Submitted: " + sub.AssignmentTitle,
			Date:  sub.SubmittedAt,
			Icon:  "fas fa-tasks",
			Color: "primary",
		})
	}
	for _, cert := range certs {
		items = append(items, models.ActivityItem{
			Type:  "certificate",
			Title: "Certificate earned: " + cert.CourseTitle,
			Date:  cert.IssuedAt,
			Icon:  "fas fa-certificate",
			Color: "success",
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	if len(items) > activityFeedLimit {
		items = items[:activityFeedLimit]
	}
	return items
}
