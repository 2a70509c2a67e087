package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/catalog/internal/models"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/repo"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/transport"
)

func newTestService(t *testing.T) *CatalogService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Product{}))

	return &CatalogService{Repo: &repo.GormRepo{DB: db}}
}

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name:        "Chocolate Fudge Cake",
		Description: "Rich layered chocolate cake",
		Price:       20.00,
		Category:    "Cake",
		Discount:    intPtr(15),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Chocolate Fudge Cake", created.Name)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Discount)
	assert.Equal(t, 15, *got.Discount)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{
			name: "blank name",
			req:  transport.CreateProductRequest{Name: "  ", Price: 5, Category: "Cake"},
		},
		{
			name: "negative price",
			req:  transport.CreateProductRequest{Name: "Cake", Price: -1, Category: "Cake"},
		},
		{
			name: "unknown category",
			req:  transport.CreateProductRequest{Name: "Cake", Price: 5, Category: "Sushi"},
		},
		{
			name: "discount over 100",
			req:  transport.CreateProductRequest{Name: "Cake", Price: 5, Category: "Cake", Discount: intPtr(101)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CreateProduct(ctx, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_PatchProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name:     "Blueberry Muffin",
		Price:    2.75,
		Category: "Muffin",
	})
	require.NoError(t, err)

	patched, err := svc.PatchProduct(ctx, transport.PatchProductRequest{
		Price:    floatPtr(3.25),
		Discount: intPtr(10),
	}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.25, patched.Price)
	require.NotNil(t, patched.Discount)
	assert.Equal(t, 10, *patched.Discount)
	// Untouched fields survive a patch.
	assert.Equal(t, "Blueberry Muffin", patched.Name)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.PatchProduct(ctx, transport.PatchProductRequest{Price: floatPtr(1)}, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid patch", func(t *testing.T) {
		_, err := svc.PatchProduct(ctx, transport.PatchProductRequest{Name: strPtr("  ")}, created.ID)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name:     "Walnut Brownie",
		Price:    4.25,
		Category: "Brownie",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("already gone", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteProduct(ctx, created.ID), ErrNotFound)
	})
}

func TestCatalogService_SearchProducts_FallsBackToDatabase(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	seed := []transport.CreateProductRequest{
		{Name: "Chocolate Fudge Cake", Description: "Rich layered chocolate cake", Price: 20, Category: "Cake"},
		{Name: "Chocolate Chip Muffin", Description: "Loaded with chips", Price: 3, Category: "Muffin"},
		{Name: "Croissant", Description: "Flaky butter pastry", Price: 3.5, Category: "Pastry"},
	}
	for i, req := range seed {
		p, err := svc.CreateProduct(ctx, req)
		require.NoError(t, err)
		// Spread creation times so the listing order is deterministic.
		require.NoError(t, svc.Repo.DB.Model(p).
			Update("created_at", time.Date(2026, time.March, 1+i, 12, 0, 0, 0, time.UTC)).Error)
	}

	t.Run("matches across name and description", func(t *testing.T) {
		total, hits, err := svc.SearchProducts(ctx, "chocolate", models.CategoryAll, 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, hits, 2)
	})

	t.Run("category narrows the hits", func(t *testing.T) {
		total, hits, err := svc.SearchProducts(ctx, "chocolate", "Muffin", 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, hits, 1)
		assert.Equal(t, "Chocolate Chip Muffin", hits[0].Name)
	})

	t.Run("pagination slices the result", func(t *testing.T) {
		total, hits, err := svc.SearchProducts(ctx, "chocolate", models.CategoryAll, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, hits, 1)
	})

	t.Run("offset past the end yields empty", func(t *testing.T) {
		total, hits, err := svc.SearchProducts(ctx, "chocolate", models.CategoryAll, 5, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Empty(t, hits)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		_, _, err := svc.SearchProducts(ctx, "   ", models.CategoryAll, 0, 10)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCatalogService_GetProducts_ByCategory(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	for _, req := range []transport.CreateProductRequest{
		{Name: "Croissant", Price: 3.5, Category: "Pastry"},
		{Name: "Danish", Price: 4, Category: "Pastry"},
		{Name: "Oat Energy Bar", Price: 5, Category: "Healthy"},
	} {
		_, err := svc.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.GetProducts(ctx, models.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pastries, err := svc.GetProducts(ctx, "Pastry")
	require.NoError(t, err)
	assert.Len(t, pastries, 2)
}
