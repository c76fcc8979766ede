package model

import (
	"strings"
	"time"
)

// Category is the category reference embedded in a product.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product is a storefront catalogue entry.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p Product) InStock() bool { return p.Stock > 0 }

// SearchFields are matched by free-text search: name, description and category name.
func (p Product) SearchFields() []string {
	return []string{p.Name, p.Description, p.Category.Name}
}

func (p Product) Attribute(name string) (any, bool) {
	switch name {
	case "price":
		return p.Price, true
	case "inStock":
		return p.InStock(), true
	case "stock":
		return p.Stock, true
	case "categoryId":
		return p.Category.ID, p.Category.ID != ""
	case "category":
		return strings.TrimSpace(p.Category.Name), p.Category.Name != ""
	case "createdAt":
		return p.CreatedAt, !p.CreatedAt.IsZero()
	}
	return nil, false
}
