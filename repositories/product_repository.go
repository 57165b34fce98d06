package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, slug, price, description, image, link, subcategory_id, external_id, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Description, &p.Image,
		&p.Link, &p.SubcategoryID, &p.ExternalID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Description, &p.Image,
			&p.Link, &p.SubcategoryID, &p.ExternalID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetBySubcategory(ctx context.Context, subcategoryID, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE subcategory_id = $1`, subcategoryID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE subcategory_id = $1
	          ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, subcategoryID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Description, &p.Image,
			&p.Link, &p.SubcategoryID, &p.ExternalID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug))
}

// ProductByExternalID resolves a product by the provider-assigned key used
// by the sync engine. Returns (nil, nil) when no product carries the id.
func (r *ProductRepository) ProductByExternalID(ctx context.Context, externalID string) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE external_id = $1`, externalID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (r *ProductRepository) Search(ctx context.Context, query string, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit
	pattern := "%" + query + "%"

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR description ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE name ILIKE $1 OR description ILIKE $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Description, &p.Image,
			&p.Link, &p.SubcategoryID, &p.ExternalID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, slug, price, description, image, link, subcategory_id, external_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		product.Name, product.Slug, product.Price, product.Description, product.Image,
		product.Link, product.SubcategoryID, product.ExternalID, time.Now().UTC(),
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	return mapPgError(err)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET name = $1, slug = $2, price = $3, description = $4,
	          image = $5, link = $6, subcategory_id = $7, external_id = $8, updated_at = $9
	          WHERE id = $10`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Slug, product.Price, product.Description, product.Image,
		product.Link, product.SubcategoryID, product.ExternalID, time.Now().UTC(), product.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total)
	return total, err
}

// ApplyFeedBatch writes every reconciled feed record inside one transaction.
// A failure on any row (including a uniqueness violation) rolls back the
// whole batch and leaves the catalog untouched.
func (r *ProductRepository) ApplyFeedBatch(ctx context.Context, changes []models.FeedChange) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin feed batch: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	for _, change := range changes {
		p := change.Product
		if change.Create {
			_, err = tx.Exec(ctx, `
				INSERT INTO products (name, slug, price, description, image, link, subcategory_id, external_id, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
				p.Name, p.Slug, p.Price, p.Description, p.Image, p.Link, p.SubcategoryID, p.ExternalID, now)
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE products SET name = $1, slug = $2, price = $3, description = $4,
				image = $5, link = $6, updated_at = $7 WHERE id = $8`,
				p.Name, p.Slug, p.Price, p.Description, p.Image, p.Link, now, p.ID)
		}
		if err != nil {
			return mapPgError(err)
		}
	}

	return tx.Commit(ctx)
}
