package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// DefaultTimeout таймаут HTTP запроса по умолчанию
const DefaultTimeout = 30 * time.Second

// ClientAPI определяет операции удаленного сервиса прогулок.
// Все ошибки имеют тип *Error и классифицируются через errors.Is
// (ErrNetwork, ErrValidation, ErrUnauthorized, ErrNotFound, ErrConflict, ErrServer).
type ClientAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Verify(ctx context.Context, token string) (*api.VerifyResponse, error)
	Logout(ctx context.Context, token string) error
	ListWalks(ctx context.Context, token string) ([]models.Walk, error)
	CreateWalk(ctx context.Context, token string, walk models.Walk) (*models.Walk, error)
	SyncWalks(ctx context.Context, token string, walks []models.Walk) (*api.SyncResponse, error)
	DeleteWalk(ctx context.Context, token string, walk models.Walk) (*api.DeleteResponse, error)
	DeleteAllWalks(ctx context.Context, token string) (*api.DeleteResponse, error)
	Stats(ctx context.Context, token string) (*api.StatsResponse, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check
var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут одного HTTP запроса
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient заменяет HTTP клиент целиком
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, "register", http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, "login", http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify проверяет токен на сервере
func (c *Client) Verify(ctx context.Context, token string) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.doRequest(ctx, "verify token", http.MethodGet, "/api/auth/verify", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout отзывает токен на сервере
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doRequest(ctx, "logout", http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// ListWalks получает все прогулки пользователя (сортировка по дате по убыванию)
func (c *Client) ListWalks(ctx context.Context, token string) ([]models.Walk, error) {
	walks := []models.Walk{}
	if err := c.doRequest(ctx, "list walks", http.MethodGet, "/api/walks", token, nil, &walks); err != nil {
		return nil, err
	}
	return walks, nil
}

// CreateWalk создает прогулку на сервере
func (c *Client) CreateWalk(ctx context.Context, token string, walk models.Walk) (*models.Walk, error) {
	var resp api.CreateWalkResponse
	req := api.NewCreateWalkRequest(walk)
	if err := c.doRequest(ctx, "create walk", http.MethodPost, "/api/walks", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Walk, nil
}

// SyncWalks отправляет весь локальный набор прогулок одним запросом
func (c *Client) SyncWalks(ctx context.Context, token string, walks []models.Walk) (*api.SyncResponse, error) {
	req := api.SyncRequest{Walks: make([]api.CreateWalkRequest, 0, len(walks))}
	for _, w := range walks {
		req.Walks = append(req.Walks, api.NewCreateWalkRequest(w))
	}

	var resp api.SyncResponse
	if err := c.doRequest(ctx, "sync walks", http.MethodPost, "/api/walks/sync", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteWalk удаляет прогулку на сервере.
// Дистанция и время передаются параметрами запроса, чтобы сервер удалил
// только совпадающую запись, а не все прогулки за день.
func (c *Client) DeleteWalk(ctx context.Context, token string, walk models.Walk) (*api.DeleteResponse, error) {
	query := url.Values{}
	query.Set("distance", strconv.FormatFloat(walk.Distance, 'f', -1, 64))
	query.Set("timeElapsed", strconv.Itoa(walk.TimeElapsed))
	path := "/api/walks/" + url.PathEscape(walk.Date.String()) + "?" + query.Encode()

	var resp api.DeleteResponse
	if err := c.doRequest(ctx, "delete walk", http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAllWalks удаляет все прогулки пользователя на сервере
func (c *Client) DeleteAllWalks(ctx context.Context, token string) (*api.DeleteResponse, error) {
	var resp api.DeleteResponse
	if err := c.doRequest(ctx, "delete all walks", http.MethodDelete, "/api/walks/all", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats получает агрегированную статистику с сервера
func (c *Client) Stats(ctx context.Context, token string) (*api.StatsResponse, error) {
	var resp api.StatsResponse
	if err := c.doRequest(ctx, "get stats", http.MethodGet, "/api/stats", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, "health check", http.MethodGet, "/health", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и классифицирует ошибки
func (c *Client) doRequest(ctx context.Context, op, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request body: %w", op, err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(op, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		message := strings.TrimSpace(string(respBody))
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			message = errResp.Message
			if message == "" {
				message = errResp.Error
			}
		}
		return statusError(op, resp.StatusCode, message)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{kind: ErrServer, Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	return nil
}
