package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andrewserrazina/friendly-paws-backend/internal/auth"
	"github.com/andrewserrazina/friendly-paws-backend/internal/config"
	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/repository"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, accounts repository.AccountRepository) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. No token is issued on registration;
// the caller logs in separately. Username uniqueness is enforced by
// the store, so a racing duplicate registration loses cleanly.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, apperrors.NewDuplicateIdentity(username)
		}
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues an access token. An unknown
// username and a wrong password produce the same error so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}
	if !auth.VerifyPassword(account.PasswordHash, password) {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Generate(account.Username)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
