package domain

import (
	"strings"

	"github.com/sweetloaf/bakeshop/services/catalog/internal/models"
)

// Filter narrows products to those matching both the category and the
// free-text query. Category "All" (or empty) matches everything; the query
// is a case-insensitive substring match over name, description and category,
// and an empty query matches everything.
func Filter(products []models.Product, category, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p models.Product, category string) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return p.Category == category
}

func matchesQuery(p models.Product, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}
