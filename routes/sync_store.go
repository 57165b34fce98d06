package routes

import (
	"context"

	"affiliate-hub/models"
	"affiliate-hub/repositories"
)

// productCatalog joins the product and category repositories into the single
// store surface the sync engine works against.
type productCatalog struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func (pc productCatalog) ProductByExternalID(ctx context.Context, externalID string) (*models.Product, error) {
	return pc.products.ProductByExternalID(ctx, externalID)
}

func (pc productCatalog) FirstSubcategory(ctx context.Context) (*models.Subcategory, error) {
	return pc.categories.FirstSubcategory(ctx)
}

func (pc productCatalog) ApplyFeedBatch(ctx context.Context, changes []models.FeedChange) error {
	return pc.products.ApplyFeedBatch(ctx, changes)
}
