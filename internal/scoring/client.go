// Package scoring is the client for the answer-checking backend.
//
// Each question has its own endpoint (e.g. /api/check-peter-question3/).
// The client POSTs the trimmed answer, validates the response shape at the
// boundary, and normalizes the backend's inconsistent field naming into one
// canonical Feedback value. Failures are typed so the submission workflow
// can degrade them into kid-friendly feedback instead of surfacing errors.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 10 * time.Second
)

// Config holds scoring client configuration.
type Config struct {
	// BaseURL is the scoring server root. Question endpoints are resolved
	// relative to it.
	BaseURL string

	// Timeout bounds a single scoring request end to end.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("BOOKWORM_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("BOOKWORM_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Scorer checks a learner's answer against a question's endpoint.
type Scorer interface {
	Score(ctx context.Context, endpoint, answer string) (*Feedback, error)
}

// Client is the HTTP implementation of Scorer.
type Client struct {
	http *resty.Client
}

var _ Scorer = (*Client)(nil)

// NewClient creates a scoring client for the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &Client{http: c}
}

// Score submits the answer to the endpoint and returns the normalized result.
//
// Error taxonomy:
//   - *ErrTimeout for deadline overruns
//   - *ErrTransport for network failures and non-2xx statuses
//   - *ErrServer for a 2xx response carrying an {error} field
//   - *ErrInvalidPayload for a 2xx response with neither a result nor an error
func (c *Client) Score(ctx context.Context, endpoint, answer string) (*Feedback, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"answer": answer}).
		Post(endpoint)
	if err != nil {
		if isTimeout(err) {
			return nil, &ErrTimeout{Err: err}
		}
		return nil, &ErrTransport{Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &ErrTransport{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}

	body := resp.Body()

	schema, err := resultJSONSchema()
	if err != nil {
		return nil, fmt.Errorf("compile result schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ErrInvalidPayload{Body: body, Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &ErrInvalidPayload{Body: body, Err: err}
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &ErrInvalidPayload{Body: body, Err: err}
	}
	if p.Error != "" {
		return nil, &ErrServer{Message: p.Error}
	}

	return p.normalize(), nil
}

// isTimeout reports whether err is a deadline overrun rather than a
// connectivity failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
