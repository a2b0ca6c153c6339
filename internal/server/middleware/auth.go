package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/walklog/internal/server/handlers"
	"github.com/iudanet/walklog/internal/server/jwt"
	"github.com/iudanet/walklog/internal/server/storage"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Отсутствующий токен и удаленный пользователь дают 401,
// недействительный или отозванный токен дает 403.
func AuthMiddleware(
	logger *slog.Logger,
	jwtService *jwt.Service,
	userStorage storage.UserStorage,
	tokenStorage storage.TokenStorage,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, ok := bearerToken(r)
			if !ok {
				logger.WarnContext(ctx, "missing access token", slog.String("path", r.URL.Path))
				writeError(w, logger, "Access token required", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.Validate(tokenString)
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				writeError(w, logger, "Invalid or expired token", http.StatusForbidden)
				return
			}

			revoked, err := tokenStorage.IsTokenRevoked(ctx, claims.ID)
			if err != nil {
				logger.ErrorContext(ctx, "failed to check token revocation", slog.Any("error", err))
				writeError(w, logger, "Internal server error", http.StatusInternalServerError)
				return
			}
			if revoked {
				logger.WarnContext(ctx, "revoked access token", slog.String("user_id", claims.UserID))
				writeError(w, logger, "Invalid or expired token", http.StatusForbidden)
				return
			}

			if _, err := userStorage.GetUserByID(ctx, claims.UserID); err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.WarnContext(ctx, "token user not found", slog.String("user_id", claims.UserID))
					writeError(w, logger, "User not found", http.StatusUnauthorized)
					return
				}
				logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
				writeError(w, logger, "Internal server error", http.StatusInternalServerError)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.String("user_id", claims.UserID))

			next.ServeHTTP(w, r.WithContext(handlers.WithClaims(ctx, claims)))
		})
	}
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
