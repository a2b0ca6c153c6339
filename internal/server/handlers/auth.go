package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/walklog/internal/crypto"
	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/server/jwt"
	"github.com/iudanet/walklog/internal/server/metrics"
	"github.com/iudanet/walklog/internal/server/storage"
	"github.com/iudanet/walklog/internal/validation"
	"github.com/iudanet/walklog/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger       *slog.Logger
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	jwtService   *jwt.Service
	metrics      *metrics.Metrics
	now          func() time.Time
	bcryptCost   int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(
	logger *slog.Logger,
	userStorage storage.UserStorage,
	tokenStorage storage.TokenStorage,
	jwtService *jwt.Service,
	bcryptCost int,
	m *metrics.Metrics,
) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		jwtService:   jwtService,
		bcryptCost:   bcryptCost,
		metrics:      m,
		now:          time.Now,
	}
}

// Register обрабатывает POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendDecodeError(w, h.logger, err)
		return
	}

	email, err := validation.ValidateEmail(req.Email)
	if err != nil {
		sendError(w, h.logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(w, h.logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := crypto.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := h.now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", email))
			sendError(w, h.logger, "User already exists with this email", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	token, _, err := h.jwtService.Generate(user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordRegistration()
	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", user.Email),
		slog.String("user_id", user.ID))

	sendJSON(w, h.logger, api.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    toAPIUser(user, true),
	}, http.StatusCreated)
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendDecodeError(w, h.logger, err)
		return
	}

	email, err := validation.ValidateEmail(req.Email)
	if err != nil {
		sendError(w, h.logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		sendError(w, h.logger, "Validation failed: password: cannot be empty", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", email))
			sendError(w, h.logger, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", email))
			sendError(w, h.logger, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	token, _, err := h.jwtService.Generate(user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("email", user.Email),
		slog.String("user_id", user.ID))

	sendJSON(w, h.logger, api.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toAPIUser(user, false),
	}, http.StatusOK)
}

// Verify обрабатывает GET /api/auth/verify.
// Токен и существование пользователя уже проверены AuthMiddleware.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(w, h.logger, "Access token required", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(w, h.logger, "User not found", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, api.VerifyResponse{
		Message: "Token is valid",
		User:    toAPIUser(user, false),
	}, http.StatusOK)
}

// Logout обрабатывает POST /api/auth/logout.
// Токен запроса отзывается до окончания срока его действия.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := GetClaims(ctx)
	if !ok {
		sendError(w, h.logger, "Access token required", http.StatusUnauthorized)
		return
	}

	revoked := &models.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		RevokedAt: h.now().UTC(),
	}
	if claims.ExpiresAt != nil {
		revoked.ExpiresAt = claims.ExpiresAt.Time
	}

	if revoked.JTI != "" {
		if err := h.tokenStorage.RevokeToken(ctx, revoked); err != nil {
			h.logger.ErrorContext(ctx, "failed to revoke token", slog.Any("error", err))
			sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.logger.InfoContext(ctx, "user logged out successfully", slog.String("user_id", claims.UserID))

	sendJSON(w, h.logger, api.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}

// toAPIUser переводит пользователя в представление для ответа
func toAPIUser(user *models.User, withCreatedAt bool) api.User {
	resp := api.User{
		ID:    user.ID,
		Email: user.Email,
	}
	if withCreatedAt && !user.CreatedAt.IsZero() {
		createdAt := user.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
