package repositories

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestimonialRepository struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

const testimonialColumns = `id, author, content, posted_at, is_visible, likes, dislikes`

func (r *TestimonialRepository) GetAll(ctx context.Context, visibleOnly bool) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY posted_at DESC`
	if visibleOnly {
		query = `SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_visible ORDER BY posted_at DESC`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Content, &t.PostedAt, &t.IsVisible, &t.Likes, &t.Dislikes); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	var t models.Testimonial
	err := r.db.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id).
		Scan(&t.ID, &t.Author, &t.Content, &t.PostedAt, &t.IsVisible, &t.Likes, &t.Dislikes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO testimonials (author, content, posted_at, is_visible)
		VALUES ($1, $2, $3, $4) RETURNING id, posted_at`,
		t.Author, t.Content, time.Now().UTC(), t.IsVisible).Scan(&t.ID, &t.PostedAt)
}

func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE testimonials SET author = $1, content = $2, is_visible = $3 WHERE id = $4`,
		t.Author, t.Content, t.IsVisible, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) ToggleVisibility(ctx context.Context, id int) (bool, error) {
	var visible bool
	err := r.db.QueryRow(ctx,
		`UPDATE testimonials SET is_visible = NOT is_visible WHERE id = $1 RETURNING is_visible`, id).
		Scan(&visible)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	return visible, err
}

func (r *TestimonialRepository) AddReaction(ctx context.Context, id int, like bool) error {
	column := "dislikes"
	if like {
		column = "likes"
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE testimonials SET `+column+` = `+column+` + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) CountPending(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials WHERE NOT is_visible`).Scan(&total)
	return total, err
}
