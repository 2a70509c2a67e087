package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/pkg/logging"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/domain"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/models"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/repo"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/search"
	"github.com/sweetloaf/bakeshop/services/catalog/internal/transport"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type CatalogService struct {
	Repo    *repo.GormRepo
	ES      *elasticsearch.Client
	ESIndex string
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return prod, err
}

func (s *CatalogService) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx, category)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := validateProduct(req.Name, req.Price, req.Category, req.Discount); err != nil {
		return nil, err
	}

	prod := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Bestseller:  req.Bestseller,
		Discount:    req.Discount,
	}

	created, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, created)
	return created, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uuid.UUID) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount > 100) {
		return nil, fmt.Errorf("discount must be within [0,100]: %w", ErrValidation)
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", *req.Category, ErrValidation)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("name must not be empty: %w", ErrValidation)
	}

	prod, err := s.Repo.PatchProduct(ctx, req, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, prod)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}

	if s.ES != nil {
		if esErr := search.DeleteProduct(ctx, s.ES, s.ESIndex, id); esErr != nil {
			logging.FromContext(ctx).Warn("es_delete_failed", "product_id", id, "error", esErr)
		}
	}
	return nil
}

// SearchProducts queries Elasticsearch and falls back to the database plus
// the in-memory filter when the index is unavailable.
func (s *CatalogService) SearchProducts(ctx context.Context, query, category string, from, size int) (int64, []models.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, nil, fmt.Errorf("query must not be empty: %w", ErrValidation)
	}

	if s.ES != nil {
		total, hits, err := search.Search(ctx, s.ES, s.ESIndex, q, from, size)
		if err == nil {
			if category != "" && category != models.CategoryAll {
				hits = domain.Filter(hits, category, "")
				total = int64(len(hits))
			}
			return total, hits, nil
		}
		logging.FromContext(ctx).Warn("es_search_failed, falling back to db", "error", err)
	}

	all, err := s.Repo.GetProducts(ctx, category)
	if err != nil {
		return 0, nil, err
	}
	matched := domain.Filter(all, category, q)

	total := int64(len(matched))
	if from >= len(matched) {
		return total, []models.Product{}, nil
	}
	end := from + size
	if end > len(matched) {
		end = len(matched)
	}
	return total, matched[from:end], nil
}

func (s *CatalogService) syncIndex(ctx context.Context, prod *models.Product) {
	if s.ES == nil {
		return
	}
	if err := search.IndexProduct(ctx, s.ES, s.ESIndex, prod); err != nil {
		logging.FromContext(ctx).Warn("es_index_failed", "product_id", prod.ID, "error", err)
	}
}

func validateProduct(name string, price float64, category string, discount *int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}
	if !models.ValidCategory(category) {
		return fmt.Errorf("unknown category %q: %w", category, ErrValidation)
	}
	if discount != nil && (*discount < 0 || *discount > 100) {
		return fmt.Errorf("discount must be within [0,100]: %w", ErrValidation)
	}
	return nil
}
