package services

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/utils"

	"go.uber.org/zap"
)

const fetchTimeout = 10 * time.Second

// SyncStore is the slice of the catalog store the sync engine needs.
type SyncStore interface {
	// ProductByExternalID returns (nil, nil) when no product carries the id.
	ProductByExternalID(ctx context.Context, externalID string) (*models.Product, error)
	// FirstSubcategory returns (nil, nil) when the store has no subcategories.
	FirstSubcategory(ctx context.Context) (*models.Subcategory, error)
	// ApplyFeedBatch commits all changes in a single transaction or none.
	ApplyFeedBatch(ctx context.Context, changes []models.FeedChange) error
}

// SyncService pulls a product feed from an external provider and reconciles
// it against the catalog by external id. It never deletes products and it
// never touches the catalog when the fetch fails.
type SyncService struct {
	store  SyncStore
	client *http.Client
	logger *zap.Logger
}

func NewSyncService(store SyncStore, logger *zap.Logger) *SyncService {
	return &SyncService{
		store:  store,
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Sync fetches the feed at sourceURL, normalizes each record and upserts the
// batch. It returns the number of reconciled records (updates plus inserts).
// Failures are reported as one of the typed errors in this package; on any
// error the catalog is exactly as it was before the call.
func (s *SyncService) Sync(ctx context.Context, sourceURL string) (int, error) {
	records, err := s.fetch(ctx, sourceURL)
	if err != nil {
		return 0, err
	}

	fallback, err := s.store.FirstSubcategory(ctx)
	if err != nil {
		return 0, err
	}

	changes := make([]models.FeedChange, 0, len(records))
	for _, rec := range records {
		price, ok := utils.ParsePrice(rec.Price)
		if !ok {
			s.logger.Warn("could not parse external price, using 0.0",
				zap.String("external_id", rec.ExternalID),
				zap.String("name", rec.Name),
				zap.String("external_price", rec.Price))
		}

		existing, err := s.store.ProductByExternalID(ctx, rec.ExternalID)
		if err != nil {
			return 0, err
		}

		if existing != nil {
			existing.Name = rec.Name
			existing.Slug = utils.Slugify(rec.Name)
			existing.Price = price
			existing.Description = rec.Description
			existing.Image = rec.Image
			existing.Link = rec.Link
			// subcategory assignment is deliberately left as-is
			changes = append(changes, models.FeedChange{Product: *existing})
			continue
		}

		if fallback == nil {
			s.logger.Warn("no subcategories defined, skipping new external product",
				zap.String("external_id", rec.ExternalID),
				zap.String("name", rec.Name))
			continue
		}

		externalID := rec.ExternalID
		subcategoryID := fallback.ID
		changes = append(changes, models.FeedChange{
			Create: true,
			Product: models.Product{
				Name:          rec.Name,
				Slug:          utils.Slugify(rec.Name),
				Price:         price,
				Description:   rec.Description,
				Image:         rec.Image,
				Link:          rec.Link,
				SubcategoryID: &subcategoryID,
				ExternalID:    &externalID,
			},
		})
	}

	if len(changes) > 0 {
		if err := s.store.ApplyFeedBatch(ctx, changes); err != nil {
			return 0, &IntegrityError{Err: err}
		}
	}
	return len(changes), nil
}

func (s *SyncService) fetch(ctx context.Context, sourceURL string) ([]models.FeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, &ConnectionError{URL: sourceURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &TimeoutError{URL: sourceURL, Timeout: fetchTimeout}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{URL: sourceURL, Timeout: fetchTimeout}
		}
		return nil, &ConnectionError{URL: sourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode}
	}

	var records []models.FeedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FormatError{Err: err}
	}
	return records, nil
}
