package middleware

import (
	"context"
	"errors"
)

type contextKey string

const emailKey contextKey = "email"

var errUnauthorized = errors.New("unauthorized")

// ContextWithEmail returns a new context carrying the authenticated email.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmailFromContext returns the email of the verified token holder.
func GetEmailFromContext(ctx context.Context) (string, error) {
	email, ok := ctx.Value(emailKey).(string)
	if !ok || email == "" {
		return "", errUnauthorized
	}
	return email, nil
}
