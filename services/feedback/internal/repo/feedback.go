package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/feedback/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Create(ctx context.Context, entry *models.FeedbackEntry) (*models.FeedbackEntry, error) {
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *GormRepo) List(ctx context.Context, limit int) ([]models.FeedbackEntry, error) {
	var entries []models.FeedbackEntry
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
