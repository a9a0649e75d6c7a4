package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/utils"
	"github.com/MKhiriev/mission-planner/models"
)

const (
	apiPrefix      = "/api/v1"
	actuatorPrefix = "/actuator"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/v1/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register", credentials)
}

// Login implements [ServerAdapter]. It POSTs to /api/v1/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "login", credentials)
}

// authenticate prefers the token from the Authorization response header and
// falls back to the one in the body.
func (h *httpServerAdapter) authenticate(ctx context.Context, action string, credentials models.Credentials) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&authResponse).
		Post(apiPrefix + "/auth/" + action)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := authResponse.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", action, err)
		}
	}
	if token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: %w", action, utils.ErrInvalidAuthorizationHeader)
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", authResponse.Username).Msgf("%s succeeded", action)

	return authResponse, nil
}

// List implements [ServerAdapter].
func (h *httpServerAdapter) List(ctx context.Context, resource string) ([]json.RawMessage, error) {
	var records []json.RawMessage

	resp, err := h.authedRequest(ctx).
		SetResult(&records).
		Get(collectionPath(resource))
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Get implements [ServerAdapter].
func (h *httpServerAdapter) Get(ctx context.Context, resource string, id int64) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).Get(itemPath(resource, id))
	if err != nil {
		return nil, fmt.Errorf("get %s request: %w", resource, err)
	}

	return recordFromResponse(resp)
}

// Create implements [ServerAdapter].
func (h *httpServerAdapter) Create(ctx context.Context, resource string, body any) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(collectionPath(resource))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", resource, err)
	}

	return recordFromResponse(resp)
}

// Update implements [ServerAdapter].
func (h *httpServerAdapter) Update(ctx context.Context, resource string, id int64, body any) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(itemPath(resource, id))
	if err != nil {
		return nil, fmt.Errorf("update %s request: %w", resource, err)
	}

	return recordFromResponse(resp)
}

// Delete implements [ServerAdapter].
func (h *httpServerAdapter) Delete(ctx context.Context, resource string, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(itemPath(resource, id))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", resource, err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter]. Both 200 and 503 carry a status body.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().SetContext(ctx).Get(actuatorPrefix + "/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if resp.StatusCode() != http.StatusServiceUnavailable {
		if err = mapHTTPError(resp); err != nil {
			return models.HealthResponse{}, err
		}
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}

	return health, nil
}

// Info implements [ServerAdapter].
func (h *httpServerAdapter) Info(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(actuatorPrefix + "/info")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func recordFromResponse(resp *resty.Response) (json.RawMessage, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode record: invalid JSON of %d bytes", len(body))
	}

	return json.RawMessage(body), nil
}

func collectionPath(resource string) string {
	return apiPrefix + "/" + resource
}

func itemPath(resource string, id int64) string {
	return collectionPath(resource) + "/" + strconv.FormatInt(id, 10)
}
