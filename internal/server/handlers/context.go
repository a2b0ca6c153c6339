package handlers

import (
	"context"

	"github.com/iudanet/walklog/internal/server/jwt"
)

// contextKey тип для ключей контекста
type contextKey string

// ClaimsKey ключ для хранения claims токена в контексте
const ClaimsKey contextKey = "claims"

// WithClaims кладет проверенные claims токена в контекст
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaims извлекает claims токена из контекста запроса
func GetClaims(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims, ok && claims != nil
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
