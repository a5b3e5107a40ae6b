package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://api.norman-ai.com"
	DefaultTimeout = 60 * time.Second

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 512
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client is the shared HTTP plumbing behind every platform adapter.
type Client struct {
	http *resty.Client
	log  logrus.FieldLogger
}

func NewClient(cfg Config, log logrus.FieldLogger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{http: httpClient, log: log}
}

// APIError is returned for every non-2xx platform response.
type APIError struct {
	Method     string
	Route      string
	StatusCode int
	Body       string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Route, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return domain.ErrNotAuthenticated
	}
	return nil
}

func (c *Client) request(ctx context.Context, token domain.Secret) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString())
	if !token.IsZero() {
		req.SetAuthToken(token.Reveal())
	}
	return req
}

func (c *Client) post(ctx context.Context, token domain.Secret, route string, params map[string]string, body, out any) error {
	req := c.request(ctx, token).SetPathParams(params)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(route)
	return c.decode(resp, err, http.MethodPost, route, out)
}

func (c *Client) decode(resp *resty.Response, err error, method, route string, out any) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, route, err)
	}

	requestID := resp.Request.Header.Get(requestIDHeader)
	c.log.WithFields(logrus.Fields{
		"method":     method,
		"route":      route,
		"status":     resp.StatusCode(),
		"request_id": requestID,
		"duration":   resp.Time(),
	}).Debug("platform request")

	if resp.IsError() {
		return &APIError{
			Method:     method,
			Route:      route,
			StatusCode: resp.StatusCode(),
			Body:       truncate(strings.TrimSpace(string(resp.Body())), maxErrorBody),
			RequestID:  requestID,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, route, err)
	}

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
