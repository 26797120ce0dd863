// Package catalog is the read-only product catalog. The demo data set is
// fixed at construction time, so lookups need no locking.
package catalog

import (
	"errors"
	"strings"

	"github.com/abarrotes/pos/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

type Catalog struct {
	categories []domain.Category
	byCategory map[string][]domain.Product
	byID       map[string]domain.Product
}

func New(categories []domain.Category, products map[string][]domain.Product) *Catalog {
	c := &Catalog{
		categories: categories,
		byCategory: products,
		byID:       make(map[string]domain.Product),
	}
	for _, list := range products {
		for _, p := range list {
			c.byID[p.ID] = p
		}
	}
	return c
}

func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Products(categoryID string) ([]domain.Product, error) {
	found := false
	for _, cat := range c.categories {
		if cat.ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrCategoryNotFound
	}
	list := c.byCategory[categoryID]
	out := make([]domain.Product, len(list))
	copy(out, list)
	return out, nil
}

func (c *Catalog) Get(productID string) (domain.Product, error) {
	p, ok := c.byID[productID]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Search does a case-insensitive substring match over all products, in
// category order.
func (c *Catalog) Search(term string) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []domain.Product
	if term == "" {
		return out
	}
	for _, cat := range c.categories {
		for _, p := range c.byCategory[cat.ID] {
			if strings.Contains(strings.ToLower(p.Name), term) {
				out = append(out, p)
			}
		}
	}
	return out
}
