package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore is an in-memory SyncStore keyed by external id.
type fakeStore struct {
	products    map[string]models.Product
	subcats     []models.Subcategory
	batchErr    error
	batchesRun  int
	nextID      int
	lastChanges []models.FeedChange
}

func newFakeStore(subcats ...models.Subcategory) *fakeStore {
	return &fakeStore{
		products: map[string]models.Product{},
		subcats:  subcats,
		nextID:   1,
	}
}

func (f *fakeStore) ProductByExternalID(_ context.Context, externalID string) (*models.Product, error) {
	p, ok := f.products[externalID]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (f *fakeStore) FirstSubcategory(_ context.Context) (*models.Subcategory, error) {
	if len(f.subcats) == 0 {
		return nil, nil
	}
	copied := f.subcats[0]
	return &copied, nil
}

func (f *fakeStore) ApplyFeedBatch(_ context.Context, changes []models.FeedChange) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batchesRun++
	f.lastChanges = changes
	for _, c := range changes {
		p := c.Product
		if c.Create {
			p.ID = f.nextID
			f.nextID++
		}
		if p.ExternalID != nil {
			f.products[*p.ExternalID] = p
		}
	}
	return nil
}

func newTestSync(store SyncStore) *SyncService {
	return NewSyncService(store, zap.NewNop())
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSyncUpdatesExistingProduct(t *testing.T) {
	store := newFakeStore(models.Subcategory{ID: 7, Name: "Gadgets", Slug: "gadgets", CategoryID: 1})
	ext := "EXT001"
	sub := 3
	store.products[ext] = models.Product{
		ID: 42, Name: "Old Laptop", Slug: "old-laptop", Price: 999,
		SubcategoryID: &sub, ExternalID: &ext,
	}

	srv := feedServer(t, `[{
		"external_id": "EXT001",
		"name": "Laptop Ultrabook X1",
		"external_price": "$1,180.00",
		"external_description": "Updated laptop",
		"external_image": "/img/laptop.jpg",
		"external_link": "https://example.com/laptop-x1"
	}]`)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	updated := store.products[ext]
	assert.Equal(t, 42, updated.ID, "internal id must not change")
	assert.Equal(t, "Laptop Ultrabook X1", updated.Name)
	assert.Equal(t, "laptop-ultrabook-x1", updated.Slug)
	assert.InDelta(t, 1180.0, updated.Price, 1e-9)
	require.NotNil(t, updated.SubcategoryID)
	assert.Equal(t, 3, *updated.SubcategoryID, "subcategory assignment must stay untouched")
}

func TestSyncCreatesNewProductWithFallbackSubcategory(t *testing.T) {
	store := newFakeStore(models.Subcategory{ID: 5, Name: "Audio", Slug: "audio", CategoryID: 2})

	srv := feedServer(t, `[{
		"external_id": "EXT004",
		"name": "Smartwatch Pro S",
		"external_price": "$250",
		"external_description": "Health tracking smartwatch",
		"external_image": "/img/smartwatch.jpg",
		"external_link": "https://example.com/smartwatch-pro-s"
	}]`)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	created, ok := store.products["EXT004"]
	require.True(t, ok)
	assert.Equal(t, "smartwatch-pro-s", created.Slug)
	require.NotNil(t, created.SubcategoryID)
	assert.Equal(t, 5, *created.SubcategoryID)
	require.NotNil(t, created.ExternalID)
	assert.Equal(t, "EXT004", *created.ExternalID)
}

func TestSyncSkipsNewProductWithoutSubcategories(t *testing.T) {
	store := newFakeStore()

	srv := feedServer(t, `[{
		"external_id": "EXT009",
		"name": "Orphan Product",
		"external_price": "$10",
		"external_description": "",
		"external_image": "",
		"external_link": "https://example.com/orphan"
	}]`)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, store.products)
	assert.Zero(t, store.batchesRun, "no batch should be applied for an all-skipped feed")
}

func TestSyncBadPriceFallsBackToZero(t *testing.T) {
	store := newFakeStore(models.Subcategory{ID: 1, Name: "Misc", Slug: "misc", CategoryID: 1})

	srv := feedServer(t, `[
		{"external_id": "EXT010", "name": "Broken Price", "external_price": "garbage",
		 "external_description": "", "external_image": "", "external_link": "https://example.com/a"},
		{"external_id": "EXT011", "name": "Good Price", "external_price": "€999",
		 "external_description": "", "external_image": "", "external_link": "https://example.com/b"}
	]`)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "a bad price never aborts the batch")
	assert.Zero(t, store.products["EXT010"].Price)
	assert.InDelta(t, 999.0, store.products["EXT011"].Price, 1e-9)
}

func TestSyncTimeout(t *testing.T) {
	store := newFakeStore(models.Subcategory{ID: 1})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	svc := newTestSync(store)
	svc.client = &http.Client{Timeout: 20 * time.Millisecond}

	count, err := svc.Sync(context.Background(), srv.URL)
	assert.Zero(t, count)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, srv.URL, timeoutErr.URL)
	assert.Zero(t, store.batchesRun, "fetch failure must leave the store untouched")
	assert.Empty(t, store.products)
}

func TestSyncConnectionFailure(t *testing.T) {
	store := newFakeStore()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	count, err := newTestSync(store).Sync(context.Background(), url)
	assert.Zero(t, count)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, url, connErr.URL)
	assert.Zero(t, store.batchesRun)
}

func TestSyncTransportError(t *testing.T) {
	store := newFakeStore()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	assert.Zero(t, count)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadGateway, transportErr.Status)
}

func TestSyncFormatError(t *testing.T) {
	store := newFakeStore()
	srv := feedServer(t, `{"this": "is not a feed array"`)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	assert.Zero(t, count)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Zero(t, store.batchesRun)
}

func TestSyncBatchFailureIsIntegrityError(t *testing.T) {
	store := newFakeStore(models.Subcategory{ID: 1})
	store.batchErr = repositories.ErrDuplicate

	srv := feedServer(t, `[{"external_id": "EXT020", "name": "Dup", "external_price": "$5",
		"external_description": "", "external_image": "", "external_link": "https://example.com/d"}]`)

	count, err := newTestSync(store).Sync(context.Background(), srv.URL)
	assert.Zero(t, count)

	var integrityErr *IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	assert.Empty(t, store.products)
}

func TestSyncIdempotentForStableFeed(t *testing.T) {
	store := newFakeStore(models.Subcategory{ID: 9, Name: "Default", Slug: "default", CategoryID: 1})

	body := `[
		{"external_id": "EXT001", "name": "Laptop Ultrabook X1", "external_price": "$1150",
		 "external_description": "Pro laptop", "external_image": "/img/a.jpg", "external_link": "https://example.com/a"},
		{"external_id": "EXT002", "name": "Auriculares Bluetooth Z2", "external_price": "$79",
		 "external_description": "Noise cancelling", "external_image": "/img/b.jpg", "external_link": "https://example.com/b"}
	]`
	srv := feedServer(t, body)
	svc := newTestSync(store)

	first, err := svc.Sync(context.Background(), srv.URL)
	require.NoError(t, err)
	snapshot := map[string]models.Product{}
	for k, v := range store.products {
		p := v
		p.ID = 0 // ids are assigned on create; compare content only
		snapshot[k] = p
	}

	second, err := svc.Sync(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same feed must yield the same count")
	assert.Len(t, store.products, 2, "no duplicates on re-run")
	for k, v := range store.products {
		p := v
		p.ID = 0
		assert.Equal(t, snapshot[k], p)
	}
}
