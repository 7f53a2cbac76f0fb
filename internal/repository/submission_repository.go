package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.AssignmentSubmission) error
	GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*models.AssignmentSubmission, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.SubmissionWithAssignment, error)
	RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.SubmissionWithAssignment, error)
	CountByStudentAndStatuses(ctx context.Context, studentID string, statuses []string) (int, error)
}

type submissionRepository struct {
	*PostgresRepository
}

func NewSubmissionRepository(db *sql.DB, logger zerolog.Logger) SubmissionRepository {
	return &submissionRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *submissionRepository) Create(ctx context.Context, sub *models.AssignmentSubmission) error {
	query := `
		INSERT INTO assignment_submissions (id, assignment_id, student_id, submitted_at, object_key, content, score, feedback, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.AssignmentID, sub.StudentID, sub.SubmittedAt,
		sub.ObjectKey, sub.Content, sub.Score, sub.Feedback, sub.Status)
	return err
}

func (r *submissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*models.AssignmentSubmission, error) {
	query := `
		SELECT id, assignment_id, student_id, submitted_at, object_key, content, score, feedback, status
		FROM assignment_submissions
		WHERE assignment_id = $1 AND student_id = $2
	`

	var s models.AssignmentSubmission
	err := r.db.QueryRowContext(ctx, query, assignmentID, studentID).Scan(
		&s.ID, &s.AssignmentID, &s.StudentID, &s.SubmittedAt,
		&s.ObjectKey, &s.Content, &s.Score, &s.Feedback, &s.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepository) ListByStudent(ctx context.Context, studentID string) ([]models.SubmissionWithAssignment, error) {
	query := `
		SELECT s.id, s.assignment_id, s.student_id, s.submitted_at, s.object_key,
		       s.content, s.score, s.feedback, s.status, a.title
		FROM assignment_submissions s
		JOIN assignments a ON a.id = s.assignment_id
		WHERE s.student_id = $1
		ORDER BY s.submitted_at DESC
	`

	return r.querySubmissions(ctx, query, studentID)
}

func (r *submissionRepository) RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.SubmissionWithAssignment, error) {
	query := `
		SELECT s.id, s.assignment_id, s.student_id, s.submitted_at, s.object_key,
		       s.content, s.score, s.feedback, s.status, a.title
		FROM assignment_submissions s
		JOIN assignments a ON a.id = s.assignment_id
		WHERE s.student_id = $1
		ORDER BY s.submitted_at DESC
		LIMIT $2
	`

	return r.querySubmissions(ctx, query, studentID, limit)
}

func (r *submissionRepository) CountByStudentAndStatuses(ctx context.Context, studentID string, statuses []string) (int, error) {
	query := `
		SELECT COUNT(*) FROM assignment_submissions
		WHERE student_id = $1 AND status = ANY($2)
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, studentID, pq.Array(statuses)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *submissionRepository) querySubmissions(ctx context.Context, query string, args ...interface{}) ([]models.SubmissionWithAssignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.SubmissionWithAssignment
	for rows.Next() {
		var s models.SubmissionWithAssignment
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.SubmittedAt,
			&s.ObjectKey, &s.Content, &s.Score, &s.Feedback, &s.Status, &s.AssignmentTitle); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	return subs, rows.Err()
}
