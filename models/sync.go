package models

// SyncState is the singleton record describing the last successful product
// sync. It is created lazily with placeholder values on first access and
// rewritten only after a sync completes.
type SyncState struct {
	ID            int    `json:"id"`
	LastSyncTime  string `json:"last_sync_time"`
	LastSyncCount int    `json:"last_sync_count"`
	LastSyncedURL string `json:"last_synced_url"`
}

// FeedRecord is one item of the external provider's product payload, exactly
// as it arrives on the wire. It is never persisted in this shape.
type FeedRecord struct {
	ExternalID  string `json:"external_id"`
	Name        string `json:"name"`
	Price       string `json:"external_price"`
	Description string `json:"external_description"`
	Image       string `json:"external_image"`
	Link        string `json:"external_link"`
}

// FeedChange is one reconciled feed record ready to be written. Create
// distinguishes an insert from an overwrite of an existing product.
type FeedChange struct {
	Product Product
	Create  bool
}
