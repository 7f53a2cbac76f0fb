package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type PaymentRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Payment, error)
	TotalCompletedByStudent(ctx context.Context, studentID string) (float64, error)
}

type paymentRepository struct {
	*PostgresRepository
}

func NewPaymentRepository(db *sql.DB, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *paymentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Payment, error) {
	query := `
		SELECT id, student_id, amount, description, payment_date, status, transaction_id, payment_method
		FROM payments
		WHERE student_id = $1
		ORDER BY payment_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &p.Description,
			&p.PaymentDate, &p.Status, &p.TransactionID, &p.PaymentMethod); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) TotalCompletedByStudent(ctx context.Context, studentID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE student_id = $1 AND status = $2
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, studentID, string(models.PaymentStatusCompleted)).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
