package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/server/jwt"
	"github.com/iudanet/walklog/internal/server/storage"
	"github.com/iudanet/walklog/internal/server/storage/sqlite"
	"github.com/iudanet/walklog/internal/server/storage/storagetest"
	"github.com/iudanet/walklog/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// setupTestStorage открывает sqlite в памяти
func setupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// newJSONRequest создает запрос с JSON телом
func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// asUser добавляет в контекст запроса claims пользователя, как это делает AuthMiddleware
func asUser(r *http.Request, userID string) *http.Request {
	claims := &jwt.Claims{UserID: userID, Email: userID + "@example.com"}
	claims.ID = "jti-" + userID
	return r.WithContext(WithClaims(r.Context(), claims))
}

// decodeError читает ErrorResponse из ответа
func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// createUser создает пользователя в хранилище и возвращает его ID
func createUser(t *testing.T, s storage.UserStorage) string {
	t.Helper()
	return storagetest.CreateUser(t, s)
}
