package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	// NextIDSequence atomically bumps and returns the per-year identifier
	// counter. Two concurrent registrations can never observe the same value.
	NextIDSequence(ctx context.Context, year int) (int, error)
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, student_id, first_name, last_name, email, phone,
			password_hash, current_course, enrollment_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		student.ID,
		student.StudentID,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.PasswordHash,
		student.CurrentCourse,
		student.EnrollmentDate,
		student.IsActive,
		student.CreatedAt,
		student.UpdatedAt,
	)

	return err
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return r.getOne(ctx, `WHERE student_id = $1`, studentID)
}

func (r *studentRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Student, error) {
	query := `
		SELECT id, student_id, first_name, last_name, email, phone,
			password_hash, current_course, enrollment_date, is_active, created_at, updated_at
		FROM students
	` + where

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&student.ID,
		&student.StudentID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.PasswordHash,
		&student.CurrentCourse,
		&student.EnrollmentDate,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
			current_course = $6, updated_at = $7
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.CurrentCourse,
		student.UpdatedAt,
	)

	return err
}

func (r *studentRepository) NextIDSequence(ctx context.Context, year int) (int, error) {
	// The upsert serializes concurrent callers on the counter row, so each
	// one gets a distinct sequence number without an explicit lock.
	query := `
		INSERT INTO student_id_counters (year, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (year)
		DO UPDATE SET last_seq = student_id_counters.last_seq + 1
		RETURNING last_seq
	`

	var seq int
	err := r.db.QueryRowContext(ctx, query, year).Scan(&seq)
	return seq, err
}
