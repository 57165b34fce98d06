package models

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Subcategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int    `json:"category_id"`
}

type CategoryWithSubcategories struct {
	Category
	Subcategories []Subcategory `json:"subcategories"`
}

// Product is the central catalog entity. ExternalID is set only on products
// created by the sync engine; SubcategoryID may be nil for admin-created
// products that were never categorized.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Link          string    `json:"link"`
	SubcategoryID *int      `json:"subcategory_id"`
	ExternalID    *string   `json:"external_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Image       string    `json:"image"`
}
