package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetloaf/bakeshop/services/catalog/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{Name: "Chocolate Fudge Cake", Description: "Rich layered chocolate cake", Category: "Cake"},
		{Name: "Blueberry Muffin", Description: "Bursting with wild blueberries", Category: "Muffin"},
		{Name: "Walnut Brownie", Description: "Dense and chewy with toasted walnuts", Category: "Brownie"},
		{Name: "Croissant", Description: "Flaky butter pastry", Category: "Pastry"},
		{Name: "Oat Energy Bar", Description: "No refined sugar", Category: "Healthy"},
	}
}

func names(ps []models.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{
			name:     "all category and empty query returns everything",
			category: models.CategoryAll,
			want:     []string{"Chocolate Fudge Cake", "Blueberry Muffin", "Walnut Brownie", "Croissant", "Oat Energy Bar"},
		},
		{
			name: "empty category behaves like all",
			want: []string{"Chocolate Fudge Cake", "Blueberry Muffin", "Walnut Brownie", "Croissant", "Oat Energy Bar"},
		},
		{
			name:     "category narrows exactly",
			category: "Cake",
			want:     []string{"Chocolate Fudge Cake"},
		},
		{
			name:  "query is case insensitive over the name",
			query: "BLUEBERRY",
			want:  []string{"Blueberry Muffin"},
		},
		{
			name:  "query matches the description",
			query: "walnuts",
			want:  []string{"Walnut Brownie"},
		},
		{
			name:  "query matches the category field",
			query: "pastry",
			want:  []string{"Croissant"},
		},
		{
			name:     "category and query compose with and",
			category: "Muffin",
			query:    "chocolate",
			want:     []string{},
		},
		{
			name:  "surrounding whitespace is ignored",
			query: "  croissant  ",
			want:  []string{"Croissant"},
		},
		{
			name:  "no match yields empty, not nil",
			query: "sourdough",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(testProducts(), tt.category, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	got := Filter(testProducts(), models.CategoryAll, "b")
	assert.Equal(t, []string{"Blueberry Muffin", "Walnut Brownie", "Croissant", "Oat Energy Bar"}, names(got))
}
