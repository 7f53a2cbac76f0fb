package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type AnnouncementRepository interface {
	// ListForStudent returns site-wide announcements plus those scoped to
	// courses the student is enrolled in, newest first.
	ListForStudent(ctx context.Context, studentID string) ([]models.Announcement, error)
}

type announcementRepository struct {
	*PostgresRepository
}

func NewAnnouncementRepository(db *sql.DB, logger zerolog.Logger) AnnouncementRepository {
	return &announcementRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *announcementRepository) ListForStudent(ctx context.Context, studentID string) ([]models.Announcement, error) {
	query := `
		SELECT a.id, a.title, a.content, a.course_id, a.created_by, a.created_at, a.is_important
		FROM announcements a
		WHERE a.course_id IS NULL
		   OR a.course_id IN (SELECT course_id FROM enrollments WHERE student_id = $1)
		ORDER BY a.is_important DESC, a.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CourseID,
			&a.CreatedBy, &a.CreatedAt, &a.IsImportant); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}
