package repositories

import (
	"context"
	"time"
)

// AuthRepository turns bearer tokens into user ids and back.
type AuthRepository interface {
	// VerifyToken returns the user id the token was issued for.
	VerifyToken(ctx context.Context, token string) (string, error)

	// IssueToken signs a new token for userID and returns it with its expiry.
	IssueToken(ctx context.Context, userID string) (string, time.Time, error)
}
