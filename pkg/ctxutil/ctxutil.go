// Package ctxutil carries per-run identity through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	accountIDKey ctxKey = "account_id"
	requestIDKey ctxKey = "request_id"
)

// WithAccountID stores the signed-in account in the context.
func WithAccountID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// AccountIDFromCtx returns the signed-in account.
// Returns 0 and false if the value is missing, not positive, or of the wrong type.
func AccountIDFromCtx(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(accountIDKey).(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// NewRequestID stores a fresh random request ID in the context.
func NewRequestID(ctx context.Context) context.Context {
	return WithRequestID(ctx, uuid.NewString())
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
