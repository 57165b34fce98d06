package repositories

import (
	"context"
	"errors"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AffiliateRepository struct {
	db *pgxpool.Pool
}

func NewAffiliateRepository(db *pgxpool.Pool) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) GetAll(ctx context.Context) ([]models.Affiliate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, referral_link, is_active FROM affiliates ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	affiliates := []models.Affiliate{}
	for rows.Next() {
		var a models.Affiliate
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.ReferralLink, &a.IsActive); err != nil {
			return nil, err
		}
		affiliates = append(affiliates, a)
	}
	return affiliates, rows.Err()
}

func (r *AffiliateRepository) GetByID(ctx context.Context, id int) (*models.Affiliate, error) {
	var a models.Affiliate
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, referral_link, is_active FROM affiliates WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Email, &a.ReferralLink, &a.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AffiliateRepository) Create(ctx context.Context, a *models.Affiliate) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO affiliates (name, email, referral_link, is_active) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.Email, a.ReferralLink, a.IsActive).Scan(&a.ID)
	return mapPgError(err)
}

func (r *AffiliateRepository) Update(ctx context.Context, a *models.Affiliate) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE affiliates SET name = $1, email = $2, referral_link = $3, is_active = $4 WHERE id = $5`,
		a.Name, a.Email, a.ReferralLink, a.IsActive, a.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AffiliateRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM affiliates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AffiliateRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM affiliates`).Scan(&total)
	return total, err
}

// --- statistics ---

const statColumns = `id, affiliate_id, date, clicks, signups, sales, commission, is_paid`

func (r *AffiliateRepository) GetAllStats(ctx context.Context) ([]models.AffiliateStat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+statColumns+` FROM affiliate_stats ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.AffiliateStat{}
	for rows.Next() {
		var s models.AffiliateStat
		if err := rows.Scan(&s.ID, &s.AffiliateID, &s.Date, &s.Clicks, &s.Signups,
			&s.Sales, &s.Commission, &s.IsPaid); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *AffiliateRepository) GetStatByID(ctx context.Context, id int) (*models.AffiliateStat, error) {
	var s models.AffiliateStat
	err := r.db.QueryRow(ctx,
		`SELECT `+statColumns+` FROM affiliate_stats WHERE id = $1`, id).
		Scan(&s.ID, &s.AffiliateID, &s.Date, &s.Clicks, &s.Signups, &s.Sales, &s.Commission, &s.IsPaid)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AffiliateRepository) CreateStat(ctx context.Context, s *models.AffiliateStat) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO affiliate_stats (affiliate_id, date, clicks, signups, sales, commission, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		s.AffiliateID, s.Date, s.Clicks, s.Signups, s.Sales, s.Commission, s.IsPaid).Scan(&s.ID)
	return mapPgError(err)
}

func (r *AffiliateRepository) UpdateStat(ctx context.Context, s *models.AffiliateStat) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE affiliate_stats SET affiliate_id = $1, date = $2, clicks = $3, signups = $4,
			sales = $5, commission = $6, is_paid = $7 WHERE id = $8`,
		s.AffiliateID, s.Date, s.Clicks, s.Signups, s.Sales, s.Commission, s.IsPaid, s.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AffiliateRepository) DeleteStat(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM affiliate_stats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AffiliateRepository) CountStats(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM affiliate_stats`).Scan(&total)
	return total, err
}

// RecordClick increments today's click counter for the affiliate, creating
// the day's row on first click. One row per affiliate per day.
func (r *AffiliateRepository) RecordClick(ctx context.Context, affiliateID int, day time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO affiliate_stats (affiliate_id, date, clicks)
		VALUES ($1, $2, 1)
		ON CONFLICT (affiliate_id, date) DO UPDATE SET clicks = affiliate_stats.clicks + 1`,
		affiliateID, day)
	return err
}
