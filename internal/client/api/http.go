package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/asaraswat/ecotrackify/internal/client/models"
	"github.com/asaraswat/ecotrackify/internal/logging"
)

const (
	apiPrefix = "/api/v1"

	// Success markers the backend is trusted to return verbatim.
	loginSuccessMessage   = "Successful login"
	registerSuccessStatus = "success"

	// New accounts are always ordinary users; roles are a backend concept.
	defaultRole = "user"
)

// HTTPClient implements Client over the backend's JSON REST interface.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a gateway bound to baseURL (scheme://host:port,
// without the /api/v1 prefix). The supplied http.Client controls timeouts.
func NewHTTPClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
		log:     log,
	}
}

type tokenData struct {
	Token string `json:"token"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Data    tokenData `json:"data"`
}

type registerResponse struct {
	Status string    `json:"status"`
	Data   tokenData `json:"data"`
}

type footprintResponse struct {
	CarbonFootprint models.Breakdown `json:"carbonFootprint"`
}

// Login authenticates and returns the bearer token. Any response whose
// message is not the exact success marker is treated as a failed login.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, "", &resp); err != nil {
		return "", err
	}
	if resp.Message != loginSuccessMessage {
		return "", fmt.Errorf("login: %w", ErrUnexpectedResponse)
	}
	return resp.Data.Token, nil
}

// Register creates an account with the default user role and returns the
// issued token. The status field must equal the exact success marker.
func (c *HTTPClient) Register(ctx context.Context, email, password, passwordConfirm string) (string, error) {
	body := map[string]string{
		"email":           email,
		"password":        password,
		"passwordConfirm": passwordConfirm,
		"role":            defaultRole,
	}

	var resp registerResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, "", &resp); err != nil {
		return "", err
	}
	if resp.Status != registerSuccessStatus {
		return "", fmt.Errorf("register: %w", ErrUnexpectedResponse)
	}
	return resp.Data.Token, nil
}

// SubmitFootprint posts the estimated figures and returns the computed
// breakdown. Requires a bearer token.
func (c *HTTPClient) SubmitFootprint(ctx context.Context, values models.FootprintValues, token string) (*models.Breakdown, error) {
	var resp footprintResponse
	if err := c.do(ctx, http.MethodPost, "/carbon-footprint", values, token, &resp); err != nil {
		return nil, err
	}
	return &resp.CarbonFootprint, nil
}

// ListTips fetches all community tips in server-assigned order.
func (c *HTTPClient) ListTips(ctx context.Context, token string) ([]models.Tip, error) {
	var tips []models.Tip
	if err := c.do(ctx, http.MethodGet, "/eco-friendly-practices", nil, token, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// AddTip submits one tip and returns the stored record with its
// server-assigned creation time.
func (c *HTTPClient) AddTip(ctx context.Context, message, token string) (*models.Tip, error) {
	body := map[string]string{"message": message}

	var tip models.Tip
	if err := c.do(ctx, http.MethodPost, "/eco-friendly-practices", body, token, &tip); err != nil {
		return nil, err
	}
	return &tip, nil
}

// do issues one request and decodes the JSON response into out.
// A non-nil body is JSON-encoded; a non-empty token becomes a bearer header.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "unexpected status", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, ErrUnexpectedResponse)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", ErrUnexpectedResponse)
	}

	c.log.Debug(ctx, "request ok", "method", method, "path", path, "request_id", requestID)
	return nil
}
