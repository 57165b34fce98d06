package repositories

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdsenseRepository struct {
	db *pgxpool.Pool
}

func NewAdsenseRepository(db *pgxpool.Pool) *AdsenseRepository {
	return &AdsenseRepository{db: db}
}

const adsenseColumns = `id, client_id, slot_header, slot_sidebar, slot_content, status, created_at, updated_at`

// GetOrCreate returns the singleton AdSense configuration, inserting an
// empty inactive row on first access.
func (r *AdsenseRepository) GetOrCreate(ctx context.Context) (*models.AdsenseConfig, error) {
	cfg, err := r.get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO adsense_config (id, client_id, slot_header, slot_sidebar, slot_content, status)
		VALUES (1, '', '', '', '', 'inactive')
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return nil, err
	}
	return r.get(ctx)
}

func (r *AdsenseRepository) get(ctx context.Context) (*models.AdsenseConfig, error) {
	var c models.AdsenseConfig
	err := r.db.QueryRow(ctx,
		`SELECT `+adsenseColumns+` FROM adsense_config WHERE id = 1`).
		Scan(&c.ID, &c.ClientID, &c.SlotHeader, &c.SlotSidebar, &c.SlotContent,
			&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AdsenseRepository) Save(ctx context.Context, c *models.AdsenseConfig) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO adsense_config (id, client_id, slot_header, slot_sidebar, slot_content, status, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			slot_header = EXCLUDED.slot_header,
			slot_sidebar = EXCLUDED.slot_sidebar,
			slot_content = EXCLUDED.slot_content,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		c.ClientID, c.SlotHeader, c.SlotSidebar, c.SlotContent, c.Status, time.Now().UTC())
	return err
}
