// Package auth issues and verifies the bearer tokens that identify users.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// JWTRepository implements portsrepo.AuthRepository with HS256 tokens.
type JWTRepository struct {
	secret string
	issuer string
	expiry time.Duration
	now    func() time.Time
}

var _ portsrepo.AuthRepository = (*JWTRepository)(nil)

func NewJWTRepository(secret, issuer string, expiry time.Duration) *JWTRepository {
	return &JWTRepository{secret: secret, issuer: issuer, expiry: expiry, now: time.Now}
}

func (r *JWTRepository) VerifyToken(_ context.Context, token string) (string, error) {
	userID, err := utils.ParseAndValidateJWT(token, r.secret, r.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.NewAuthError("Token has expired")
		}
		return "", apperrors.NewAuthError("Invalid token")
	}
	return userID, nil
}

func (r *JWTRepository) IssueToken(_ context.Context, userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, apperrors.NewAuthError("")
	}
	token, expiresAt, err := utils.GenerateJWT(userID, r.secret, r.expiry, r.issuer, r.now())
	if err != nil {
		return "", time.Time{}, apperrors.NewAppError(500, "failed to issue token", err)
	}
	return token, expiresAt, nil
}
