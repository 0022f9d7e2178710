// Package services holds the outbound clients for the canteen API. Every
// payload is normalized into the canonical models records at this boundary;
// nothing past it sees a raw server shape.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhtran-dev/canteen-client/config"
	"github.com/minhtran-dev/canteen-client/models"
	"github.com/minhtran-dev/canteen-client/utils"
)

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	AccessToken() (string, error)
}

// Client is the shared HTTP plumbing for all canteen API services.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// do performs an authenticated JSON request and decodes the response body
// into out (when out is non-nil). HTTP failures come back as *models.APIError
// carrying the server's detail message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return c.request(ctx, method, path, query, body, out, true)
}

// doAnon is do without the Authorization header, for login and register.
func (c *Client) doAnon(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return c.request(ctx, method, path, query, body, out, false)
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out interface{}, withAuth bool) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(payload.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if withAuth {
		token, err := c.tokens.AccessToken()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &models.APIError{
			Status: resp.StatusCode,
			Detail: models.ErrorDetail(respBody),
		}
		utils.ErrorLogger.Printf("%s %s -> %d: %s", method, path, resp.StatusCode, apiErr.Detail)
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// StoreTokenSource reads the access token from the snapshot store and
// refuses tokens whose exp claim has already passed.
type StoreTokenSource struct {
	Store interface {
		Get(key string) (string, error)
	}
}

func (s *StoreTokenSource) AccessToken() (string, error) {
	token, err := s.Store.Get("access_token")
	if err != nil {
		return "", models.ErrNotAuthenticated
	}
	if utils.TokenExpired(token) {
		return "", models.ErrTokenExpired
	}
	return token, nil
}

// StaticTokenSource returns a fixed token, mainly for tests.
type StaticTokenSource string

func (s StaticTokenSource) AccessToken() (string, error) {
	return string(s), nil
}
