package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sweetloaf/bakeshop/pkg/hash"
	jwthelp "github.com/sweetloaf/bakeshop/pkg/jwt"
	"github.com/sweetloaf/bakeshop/pkg/logging"
	"github.com/sweetloaf/bakeshop/pkg/tokens"
	"github.com/sweetloaf/bakeshop/services/auth/internal/models"
	"github.com/sweetloaf/bakeshop/services/auth/internal/repo"
)

var (
	ErrValidation          = errors.New("validation")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserAlreadyExist    = errors.New("user already exist")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	Repo repo.GormRepo
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
	IsAdmin      bool
}

func (h *AuthService) CreateAccessToken(role, id string, accessExp time.Time) (string, error) {
	accessClaims := tokens.AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(accessExp),
		},
	}

	tokenAccess := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	return tokenAccess.SignedString(h.Repo.JWTSecret)
}

func (h *AuthService) CreateRefreshToken(id string, refreshExp time.Time) (string, error) {
	refreshClaims := tokens.RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(refreshExp),
			ID:        jwthelp.NewJTI(),
		},
	}

	tokenRefresh := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	return tokenRefresh.SignedString(h.Repo.RefreshSecret)
}

func (h *AuthService) Register(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if username == "" || password == "" {
		return fmt.Errorf("username and password required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         "user",
	}

	if err := h.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "reason", "user already exist")
			return ErrUserAlreadyExist
		}
		l.Error("register_error", "error", err)
		return err
	}
	return nil
}

func (h *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password required: %w", ErrValidation)
	}

	user, err := h.Repo.UserExist(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "reason", "invalid username or password")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "error", err)
		return nil, err
	}

	return h.issuePair(ctx, user)
}

func (h *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	claims, err := tokens.RefreshClaimsFromToken(refreshToken, h.Repo.RefreshSecret)
	if err != nil || claims == nil {
		return nil, ErrInvalidRefreshToken
	}

	exists, err := h.Repo.RefreshExists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidRefreshToken
	}

	dead, err := h.Repo.RefreshExpiredOrRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if dead {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	user, err := h.Repo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Rotation: the old token is dead the moment a new pair is issued.
	if err := h.Repo.RevokeByJTI(ctx, claims.ID); err != nil {
		l.Error("refresh_error", "reason", "cannot revoke old token", "error", err)
		return nil, err
	}

	return h.issuePair(ctx, user)
}

func (h *AuthService) LogOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return h.Repo.LogOut(ctx, refreshToken)
}

func (h *AuthService) issuePair(ctx context.Context, user *models.User) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.issue_pair")

	accessExp := time.Now().Add(accessTTL)
	accessToken, err := h.CreateAccessToken(user.Role, user.ID.String(), accessExp)
	if err != nil {
		l.Error("issue_pair_failed", "error", err)
		return nil, err
	}

	refreshExp := time.Now().Add(refreshTTL)
	refreshToken, err := h.CreateRefreshToken(user.ID.String(), refreshExp)
	if err != nil {
		l.Error("issue_pair_failed", "error", err)
		return nil, err
	}

	if err := h.Repo.AddRefreshToDB(ctx, refreshToken); err != nil {
		l.Error("issue_pair_failed", "reason", "cannot store refresh token", "error", err)
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
		IsAdmin:      user.Role == "admin",
	}, nil
}
