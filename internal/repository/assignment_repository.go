package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	ListForStudent(ctx context.Context, studentID string) ([]models.AssignmentWithCourse, error)
	// ListUpcomingByStudent returns assignments in the student's enrolled
	// courses whose due date falls within [from, to], soonest first.
	ListUpcomingByStudent(ctx context.Context, studentID string, from, to time.Time, limit int) ([]models.AssignmentWithCourse, error)
}

type assignmentRepository struct {
	*PostgresRepository
}

func NewAssignmentRepository(db *sql.DB, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	query := `
		SELECT id, title, description, course_id, due_date, max_score, created_at
		FROM assignments
		WHERE id = $1
	`

	var a models.Assignment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.CourseID, &a.DueDate, &a.MaxScore, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) ListForStudent(ctx context.Context, studentID string) ([]models.AssignmentWithCourse, error) {
	query := `
		SELECT a.id, a.title, a.description, a.course_id, a.due_date, a.max_score, a.created_at, c.title
		FROM assignments a
		JOIN courses c ON c.id = a.course_id
		JOIN enrollments e ON e.course_id = a.course_id
		WHERE e.student_id = $1
		ORDER BY a.due_date
	`

	return r.queryAssignments(ctx, query, studentID)
}

func (r *assignmentRepository) ListUpcomingByStudent(ctx context.Context, studentID string, from, to time.Time, limit int) ([]models.AssignmentWithCourse, error) {
	query := `
		SELECT a.id, a.title, a.description, a.course_id, a.due_date, a.max_score, a.created_at, c.title
		FROM assignments a
		JOIN courses c ON c.id = a.course_id
		JOIN enrollments e ON e.course_id = a.course_id
		WHERE e.student_id = $1 AND a.due_date >= $2 AND a.due_date <= $3
		ORDER BY a.due_date
		LIMIT $4
	`

	return r.queryAssignments(ctx, query, studentID, from, to, limit)
}

func (r *assignmentRepository) queryAssignments(ctx context.Context, query string, args ...interface{}) ([]models.AssignmentWithCourse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.AssignmentWithCourse
	for rows.Next() {
		var a models.AssignmentWithCourse
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.CourseID,
			&a.DueDate, &a.MaxScore, &a.CreatedAt, &a.CourseTitle); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
