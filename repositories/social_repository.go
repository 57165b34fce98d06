package repositories

import (
	"context"
	"errors"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SocialRepository struct {
	db *pgxpool.Pool
}

func NewSocialRepository(db *pgxpool.Pool) *SocialRepository {
	return &SocialRepository{db: db}
}

func (r *SocialRepository) GetAll(ctx context.Context, visibleOnly bool) ([]models.SocialMediaLink, error) {
	query := `SELECT id, platform, url, icon_class, is_visible, order_num
	          FROM social_media_links ORDER BY order_num, id`
	if visibleOnly {
		query = `SELECT id, platform, url, icon_class, is_visible, order_num
		         FROM social_media_links WHERE is_visible ORDER BY order_num, id`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []models.SocialMediaLink{}
	for rows.Next() {
		var l models.SocialMediaLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.IconClass, &l.IsVisible, &l.OrderNum); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *SocialRepository) GetByID(ctx context.Context, id int) (*models.SocialMediaLink, error) {
	var l models.SocialMediaLink
	err := r.db.QueryRow(ctx,
		`SELECT id, platform, url, icon_class, is_visible, order_num FROM social_media_links WHERE id = $1`, id).
		Scan(&l.ID, &l.Platform, &l.URL, &l.IconClass, &l.IsVisible, &l.OrderNum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *SocialRepository) Create(ctx context.Context, link *models.SocialMediaLink) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO social_media_links (platform, url, icon_class, is_visible, order_num)
		VALUES ($1, $2, $3, $4, (SELECT COUNT(*) FROM social_media_links))
		RETURNING id, order_num`,
		link.Platform, link.URL, link.IconClass, link.IsVisible).Scan(&link.ID, &link.OrderNum)
	return mapPgError(err)
}

func (r *SocialRepository) Update(ctx context.Context, link *models.SocialMediaLink) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE social_media_links SET platform = $1, url = $2, icon_class = $3, is_visible = $4 WHERE id = $5`,
		link.Platform, link.URL, link.IconClass, link.IsVisible, link.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SocialRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM social_media_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
