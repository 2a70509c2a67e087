package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	jwthelp "github.com/sweetloaf/bakeshop/pkg/jwt"
	"github.com/sweetloaf/bakeshop/pkg/tokens"
	"github.com/sweetloaf/bakeshop/services/auth/internal/models"
)

type GormRepo struct {
	DB            *gorm.DB
	JWTSecret     []byte
	RefreshSecret []byte
}

func (r *GormRepo) AddRefreshToDB(ctx context.Context, refreshToken string) error {
	claims, err := tokens.RefreshClaimsFromToken(refreshToken, r.RefreshSecret)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return err
	}

	refreshModel := models.RefreshToken{
		Token:     jwthelp.Sha256Hex(refreshToken),
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time.Unix(),
		JTI:       claims.ID,
	}

	return r.DB.WithContext(ctx).Create(&refreshModel).Error
}
