package repositories

import (
	"context"
	"errors"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncRepository struct {
	db *pgxpool.Pool
}

func NewSyncRepository(db *pgxpool.Pool) *SyncRepository {
	return &SyncRepository{db: db}
}

// GetOrCreate returns the singleton sync state, inserting the placeholder
// row on first access. Two concurrent first accesses race benignly: the
// loser's insert fails the unique check and it re-reads (last-writer-wins
// is acceptable in this single-admin context).
func (r *SyncRepository) GetOrCreate(ctx context.Context) (*models.SyncState, error) {
	state, err := r.get(ctx)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO sync_state (id, last_sync_time, last_sync_count, last_synced_url)
		VALUES (1, 'N/A', 0, 'N/A')
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return nil, err
	}
	return r.get(ctx)
}

func (r *SyncRepository) get(ctx context.Context) (*models.SyncState, error) {
	var s models.SyncState
	err := r.db.QueryRow(ctx,
		`SELECT id, last_sync_time, last_sync_count, last_synced_url FROM sync_state WHERE id = 1`).
		Scan(&s.ID, &s.LastSyncTime, &s.LastSyncCount, &s.LastSyncedURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save records the outcome of a successful sync run.
func (r *SyncRepository) Save(ctx context.Context, state *models.SyncState) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_state (id, last_sync_time, last_sync_count, last_synced_url)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			last_sync_count = EXCLUDED.last_sync_count,
			last_synced_url = EXCLUDED.last_synced_url`,
		state.LastSyncTime, state.LastSyncCount, state.LastSyncedURL)
	return err
}
