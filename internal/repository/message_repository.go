package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/dictchannels/portal/internal/models"
)

type MessageRepository interface {
	ListForRecipient(ctx context.Context, recipientID string) ([]models.MessageWithSender, error)
	MarkRead(ctx context.Context, messageID, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int, error)
}

type messageRepository struct {
	*PostgresRepository
}

func NewMessageRepository(db *sql.DB, logger zerolog.Logger) MessageRepository {
	return &messageRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *messageRepository) ListForRecipient(ctx context.Context, recipientID string) ([]models.MessageWithSender, error) {
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.subject, m.content, m.sent_at, m.is_read,
		       COALESCE(s.first_name || ' ' || s.last_name, 'Staff')
		FROM messages m
		LEFT JOIN students s ON s.id = m.sender_id
		WHERE m.recipient_id = $1
		ORDER BY m.sent_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.MessageWithSender
	for rows.Next() {
		var m models.MessageWithSender
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Subject,
			&m.Content, &m.SentAt, &m.IsRead, &m.SenderName); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *messageRepository) MarkRead(ctx context.Context, messageID, recipientID string) error {
	query := `UPDATE messages SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`

	_, err := r.db.ExecContext(ctx, query, messageID, recipientID)
	return err
}

func (r *messageRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	query := `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = FALSE`

	var count int
	if err := r.db.QueryRowContext(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
