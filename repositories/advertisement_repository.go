package repositories

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdvertisementRepository struct {
	db *pgxpool.Pool
}

func NewAdvertisementRepository(db *pgxpool.Pool) *AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

const adColumns = `id, type, title, is_active, text_content, button_text, button_url,
	image_url, product_id, adsense_client_id, adsense_slot_id, start_date, end_date`

func (r *AdvertisementRepository) scanRows(rows pgx.Rows) ([]models.Advertisement, error) {
	defer rows.Close()

	ads := []models.Advertisement{}
	for rows.Next() {
		var a models.Advertisement
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.IsActive, &a.TextContent, &a.ButtonText,
			&a.ButtonURL, &a.ImageURL, &a.ProductID, &a.AdsenseClientID, &a.AdsenseSlotID,
			&a.StartDate, &a.EndDate); err != nil {
			return nil, err
		}
		ads = append(ads, a)
	}
	return ads, rows.Err()
}

func (r *AdvertisementRepository) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+adColumns+` FROM advertisements ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

// GetActive returns ads that are switched on and whose display window, when
// set, contains the given instant.
func (r *AdvertisementRepository) GetActive(ctx context.Context, now time.Time) ([]models.Advertisement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+adColumns+` FROM advertisements
		WHERE is_active
		  AND (start_date IS NULL OR start_date <= $1)
		  AND (end_date IS NULL OR end_date >= $1)
		ORDER BY id DESC`, now)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *AdvertisementRepository) GetByID(ctx context.Context, id int) (*models.Advertisement, error) {
	var a models.Advertisement
	err := r.db.QueryRow(ctx,
		`SELECT `+adColumns+` FROM advertisements WHERE id = $1`, id).
		Scan(&a.ID, &a.Type, &a.Title, &a.IsActive, &a.TextContent, &a.ButtonText,
			&a.ButtonURL, &a.ImageURL, &a.ProductID, &a.AdsenseClientID, &a.AdsenseSlotID,
			&a.StartDate, &a.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdvertisementRepository) Create(ctx context.Context, a *models.Advertisement) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO advertisements (type, title, is_active, text_content, button_text, button_url,
			image_url, product_id, adsense_client_id, adsense_slot_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		a.Type, a.Title, a.IsActive, a.TextContent, a.ButtonText, a.ButtonURL,
		a.ImageURL, a.ProductID, a.AdsenseClientID, a.AdsenseSlotID, a.StartDate, a.EndDate).
		Scan(&a.ID)
}

func (r *AdvertisementRepository) Update(ctx context.Context, a *models.Advertisement) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE advertisements SET type = $1, title = $2, is_active = $3, text_content = $4,
			button_text = $5, button_url = $6, image_url = $7, product_id = $8,
			adsense_client_id = $9, adsense_slot_id = $10, start_date = $11, end_date = $12
		WHERE id = $13`,
		a.Type, a.Title, a.IsActive, a.TextContent, a.ButtonText, a.ButtonURL,
		a.ImageURL, a.ProductID, a.AdsenseClientID, a.AdsenseSlotID, a.StartDate, a.EndDate, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AdvertisementRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
