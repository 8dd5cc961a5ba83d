package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// WithAuth guards fn with the caller identity check. The returned function
// fails with *apperrors.AuthError when userID is empty, before fn or any
// validation runs, and passes the zero In when in is nil.
func WithAuth[In, Out any](fn func(ctx context.Context, userID string, in In) (Out, error)) func(ctx context.Context, userID string, in *In) (Out, error) {
	return func(ctx context.Context, userID string, in *In) (Out, error) {
		if userID == "" {
			var zero Out
			return zero, apperrors.NewAuthError("")
		}
		var input In
		if in != nil {
			input = *in
		}
		return fn(ctx, userID, input)
	}
}
