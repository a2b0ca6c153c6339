package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantCode    int
		wantOrigin  string
		wantHandler bool
	}{
		{
			name:        "allowed origin",
			allowed:     []string{"https://walk.example.com"},
			method:      http.MethodGet,
			origin:      "https://walk.example.com",
			wantCode:    http.StatusOK,
			wantOrigin:  "https://walk.example.com",
			wantHandler: true,
		},
		{
			name:        "unknown origin gets no CORS headers",
			allowed:     []string{"https://walk.example.com"},
			method:      http.MethodGet,
			origin:      "https://evil.example.com",
			wantCode:    http.StatusOK,
			wantHandler: true,
		},
		{
			name:        "wildcard",
			allowed:     []string{"*"},
			method:      http.MethodPost,
			origin:      "http://localhost:8080",
			wantCode:    http.StatusOK,
			wantOrigin:  "http://localhost:8080",
			wantHandler: true,
		},
		{
			name:        "no origin header",
			allowed:     []string{"*"},
			method:      http.MethodGet,
			wantCode:    http.StatusOK,
			wantHandler: true,
		},
		{
			name:       "preflight",
			allowed:    []string{"https://walk.example.com"},
			method:     http.MethodOptions,
			origin:     "https://walk.example.com",
			preflight:  true,
			wantCode:   http.StatusNoContent,
			wantOrigin: "https://walk.example.com",
		},
		{
			name:      "preflight from unknown origin",
			allowed:   []string{"https://walk.example.com"},
			method:    http.MethodOptions,
			origin:    "https://evil.example.com",
			preflight: true,
			wantCode:  http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CORSMiddleware(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(tt.method, "/api/walks", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantHandler, called)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
		})
	}
}
