package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// UserSvcFacade exposes the caller's own profile.
type UserSvcFacade interface {
	GetCurrentUser(ctx context.Context, userID string) (*domain.UserDTO, error)
}

// AuthSvcFacade issues access tokens.
type AuthSvcFacade interface {
	// DevLogin upserts the user identified by email and signs a token for it.
	DevLogin(ctx context.Context, req *dto.DevLoginRequest) (*dto.LoginResponse, error)

	// RefreshToken signs a fresh token for an authenticated caller.
	RefreshToken(ctx context.Context, userID string) (*dto.RefreshTokenResponse, error)
}
