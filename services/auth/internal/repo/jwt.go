package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/auth/internal/models"
)

func (r *GormRepo) RefreshExists(ctx context.Context, jti string) (bool, error) {
	var token models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("jti = ?", jti).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *GormRepo) RefreshExpiredOrRevoked(ctx context.Context, jti string) (bool, error) {
	var token models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("jti = ?", jti).First(&token).Error; err != nil {
		return true, err
	}
	if token.Revoked {
		return true, nil
	}
	return token.ExpiresAt < time.Now().Unix(), nil
}

func (r *GormRepo) RevokeByJTI(ctx context.Context, jti string) error {
	return r.DB.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("jti = ?", jti).
		Update("revoked", true).Error
}
