package repositories

import (
	"context"
	"errors"

	"affiliate-hub/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetAllWithSubcategories returns every category with its subcategories in a
// single pass, avoiding a query per category.
func (r *CategoryRepository) GetAllWithSubcategories(ctx context.Context) ([]models.CategoryWithSubcategories, error) {
	categories, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, category_id FROM subcategories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCategory := map[int][]models.Subcategory{}
	for rows.Next() {
		var s models.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.CategoryID); err != nil {
			return nil, err
		}
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]models.CategoryWithSubcategories, 0, len(categories))
	for _, c := range categories {
		subs := byCategory[c.ID]
		if subs == nil {
			subs = []models.Subcategory{}
		}
		result = append(result, models.CategoryWithSubcategories{Category: c, Subcategories: subs})
	}
	return result, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name, &c.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Slug).Scan(&category.ID)
	return mapPgError(err)
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, slug = $2 WHERE id = $3`,
		category.Name, category.Slug, category.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the category; subcategories and their products go with it
// (ON DELETE CASCADE).
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total)
	return total, err
}

// --- subcategories ---

func (r *CategoryRepository) GetSubcategory(ctx context.Context, id int) (*models.Subcategory, error) {
	var s models.Subcategory
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, category_id FROM subcategories WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Slug, &s.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CategoryRepository) GetSubcategoryBySlug(ctx context.Context, slug string) (*models.Subcategory, error) {
	var s models.Subcategory
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, category_id FROM subcategories WHERE slug = $1`, slug).
		Scan(&s.ID, &s.Name, &s.Slug, &s.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FirstSubcategory is the sync engine's fallback assignment target. Returns
// (nil, nil) when the store holds no subcategories at all.
func (r *CategoryRepository) FirstSubcategory(ctx context.Context) (*models.Subcategory, error) {
	var s models.Subcategory
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, category_id FROM subcategories ORDER BY id LIMIT 1`).
		Scan(&s.ID, &s.Name, &s.Slug, &s.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CategoryRepository) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO subcategories (name, slug, category_id) VALUES ($1, $2, $3) RETURNING id`,
		sub.Name, sub.Slug, sub.CategoryID).Scan(&sub.ID)
	return mapPgError(err)
}

func (r *CategoryRepository) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE subcategories SET name = $1, slug = $2 WHERE id = $3 AND category_id = $4`,
		sub.Name, sub.Slug, sub.ID, sub.CategoryID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSubcategory cascades to the subcategory's products.
func (r *CategoryRepository) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID int) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM subcategories WHERE id = $1 AND category_id = $2`, subcategoryID, categoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ProductCounts returns the number of products per subcategory id.
func (r *CategoryRepository) ProductCounts(ctx context.Context) (map[int]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, COUNT(p.id)
		FROM subcategories s
		LEFT JOIN products p ON p.subcategory_id = s.id
		GROUP BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var id, count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}
