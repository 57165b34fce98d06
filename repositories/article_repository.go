package repositories

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `id, title, slug, content, author, published_at, image`

func (r *ArticleRepository) GetAll(ctx context.Context, page, limit int) ([]models.Article, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY published_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.PublishedAt, &a.Image); err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.PublishedAt, &a.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug).
		Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.PublishedAt, &a.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) Search(ctx context.Context, query string, page, limit int) ([]models.Article, int, error) {
	offset := (page - 1) * limit
	pattern := "%" + query + "%"

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles WHERE title ILIKE $1 OR content ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE title ILIKE $1 OR content ILIKE $1
		 ORDER BY published_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.PublishedAt, &a.Image); err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO articles (title, slug, content, author, published_at, image)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, published_at`,
		article.Title, article.Slug, article.Content, article.Author, time.Now().UTC(), article.Image).
		Scan(&article.ID, &article.PublishedAt)
	return mapPgError(err)
}

func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE articles SET title = $1, slug = $2, content = $3, author = $4, image = $5 WHERE id = $6`,
		article.Title, article.Slug, article.Content, article.Author, article.Image, article.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total)
	return total, err
}
