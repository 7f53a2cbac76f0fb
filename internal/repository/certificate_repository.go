package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type CertificateRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.CertificateWithCourse, error)
	RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.CertificateWithCourse, error)
	CountByStudent(ctx context.Context, studentID string) (int, error)
}

type certificateRepository struct {
	*PostgresRepository
}

func NewCertificateRepository(db *sql.DB, logger zerolog.Logger) CertificateRepository {
	return &certificateRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *certificateRepository) ListByStudent(ctx context.Context, studentID string) ([]models.CertificateWithCourse, error) {
	query := `
		SELECT ct.id, ct.student_id, ct.course_id, ct.issued_at, ct.certificate_number, ct.object_key, c.title
		FROM certificates ct
		JOIN courses c ON c.id = ct.course_id
		WHERE ct.student_id = $1
		ORDER BY ct.issued_at DESC
	`

	return r.queryCertificates(ctx, query, studentID)
}

func (r *certificateRepository) RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.CertificateWithCourse, error) {
	query := `
		SELECT ct.id, ct.student_id, ct.course_id, ct.issued_at, ct.certificate_number, ct.object_key, c.title
		FROM certificates ct
		JOIN courses c ON c.id = ct.course_id
		WHERE ct.student_id = $1
		ORDER BY ct.issued_at DESC
		LIMIT $2
	`

	return r.queryCertificates(ctx, query, studentID, limit)
}

func (r *certificateRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	query := `SELECT COUNT(*) FROM certificates WHERE student_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, studentID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *certificateRepository) queryCertificates(ctx context.Context, query string, args ...interface{}) ([]models.CertificateWithCourse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []models.CertificateWithCourse
	for rows.Next() {
		var c models.CertificateWithCourse
		if err := rows.Scan(&c.ID, &c.StudentID, &c.CourseID, &c.IssuedAt,
			&c.CertificateNumber, &c.ObjectKey, &c.CourseTitle); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}

	return certs, rows.Err()
}
