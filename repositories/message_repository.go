package repositories

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageColumns = `id, name, email, subject, message, created_at, is_read, is_archived, response_text, response_at, likes, dislikes`

func (r *MessageRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt,
			&m.IsRead, &m.IsArchived, &m.ResponseText, &m.ResponseAt, &m.Likes, &m.Dislikes); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) GetByID(ctx context.Context, id int) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := r.db.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM contact_messages WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt,
			&m.IsRead, &m.IsArchived, &m.ResponseText, &m.ResponseAt, &m.Likes, &m.Dislikes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		m.Name, m.Email, m.Subject, m.Message, time.Now().UTC()).Scan(&m.ID, &m.CreatedAt)
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `UPDATE contact_messages SET is_read = true WHERE id = $1`, id)
	return err
}

// Update applies the admin review fields. An empty response text clears any
// previous response and its timestamp.
func (r *MessageRepository) Update(ctx context.Context, id int, req models.MessageUpdateRequest) error {
	var responseAt *time.Time
	responseText := req.ResponseText
	if responseText != "" {
		now := time.Now().UTC()
		responseAt = &now
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE contact_messages
		SET is_read = $1, is_archived = $2, response_text = $3, response_at = $4
		WHERE id = $5`,
		req.IsRead, req.IsArchived, responseText, responseAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageRepository) ToggleRead(ctx context.Context, id int) (bool, error) {
	var read bool
	err := r.db.QueryRow(ctx,
		`UPDATE contact_messages SET is_read = NOT is_read WHERE id = $1 RETURNING is_read`, id).
		Scan(&read)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	return read, err
}

func (r *MessageRepository) ToggleArchive(ctx context.Context, id int) (bool, error) {
	var archived bool
	err := r.db.QueryRow(ctx,
		`UPDATE contact_messages SET is_archived = NOT is_archived WHERE id = $1 RETURNING is_archived`, id).
		Scan(&archived)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	return archived, err
}

func (r *MessageRepository) AddReaction(ctx context.Context, id int, like bool) error {
	column := "dislikes"
	if like {
		column = "likes"
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_messages SET `+column+` = `+column+` + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageRepository) CountUnread(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE NOT is_read`).Scan(&total)
	return total, err
}
