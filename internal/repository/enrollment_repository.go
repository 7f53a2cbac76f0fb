package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentWithCourse, error)
	RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.EnrollmentWithCourse, error)
}

type enrollmentRepository struct {
	*PostgresRepository
}

func NewEnrollmentRepository(db *sql.DB, logger zerolog.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (id, student_id, course_id, enrolled_at, progress_percentage, is_completed, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		enrollment.ID, enrollment.StudentID, enrollment.CourseID, enrollment.EnrolledAt,
		enrollment.ProgressPercentage, enrollment.IsCompleted, enrollment.CompletedAt)
	return err
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentWithCourse, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.enrolled_at, e.progress_percentage,
		       e.is_completed, e.completed_at, c.title
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC
	`

	return r.queryEnrollments(ctx, query, studentID)
}

func (r *enrollmentRepository) RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.EnrollmentWithCourse, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.enrolled_at, e.progress_percentage,
		       e.is_completed, e.completed_at, c.title
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC
		LIMIT $2
	`

	return r.queryEnrollments(ctx, query, studentID, limit)
}

func (r *enrollmentRepository) queryEnrollments(ctx context.Context, query string, args ...interface{}) ([]models.EnrollmentWithCourse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []models.EnrollmentWithCourse
	for rows.Next() {
		var e models.EnrollmentWithCourse
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrolledAt,
			&e.ProgressPercentage, &e.IsCompleted, &e.CompletedAt, &e.CourseTitle); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}

	return enrollments, rows.Err()
}
