package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sweetloaf/bakeshop/services/feedback/internal/models"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/repo"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/transport"
)

var ErrValidation = errors.New("validation")

const (
	DefaultListLimit = 6
	MaxListLimit     = 50
)

type FeedbackService struct {
	Repo *repo.GormRepo
}

// Submit validates and appends a review. Validation failures never reach the
// database.
func (h *FeedbackService) Submit(ctx context.Context, req transport.SubmitFeedbackRequest) (*models.FeedbackEntry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, fmt.Errorf("comment required: %w", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be within [1,5]: %w", ErrValidation)
	}

	entry := models.FeedbackEntry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
		Product: strings.TrimSpace(req.Product),
	}

	return h.Repo.Create(ctx, &entry)
}

func (h *FeedbackService) List(ctx context.Context, limit int) ([]models.FeedbackEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return h.Repo.List(ctx, limit)
}
