package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/dto"
	"TOURBOOK_WEB/internal/metrics"
)

// ErrUnauthorized matches any APIError carrying HTTP 401.
var ErrUnauthorized = errors.New("apiclient: unauthorized")

// APIError is a failed call. StatusCode is 0 when the API was unreachable.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// HTTPStatus is the status to mirror to our own caller.
func (e *APIError) HTTPStatus() int {
	if e.StatusCode == 0 {
		return http.StatusBadGateway
	}
	return e.StatusCode
}

type credentials struct {
	cookies       []*http.Cookie
	authorization string
}

type credentialsKey struct{}

// WithCredentials attaches the caller's cookies and Authorization header to
// ctx. Every request made with the returned context carries them verbatim.
func WithCredentials(ctx context.Context, cookies []*http.Cookie, authorization string) context.Context {
	return context.WithValue(ctx, credentialsKey{}, credentials{cookies: cookies, authorization: authorization})
}

// FromRequest is WithCredentials over an incoming browser request.
func FromRequest(r *http.Request) context.Context {
	return WithCredentials(r.Context(), r.Cookies(), r.Header.Get("Authorization"))
}

// Client talks to the marketplace REST API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New creates a Client. m may be nil.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger:  logger.Named("APIClient"),
		metrics: m,
	}
}

type call struct {
	method   string
	path     string
	endpoint string // metrics label
	body     any
	fallback string
}

// do performs c and returns the raw envelope data. Any failure is an *APIError.
func (c *Client) do(ctx context.Context, cl call) (data json.RawMessage, err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveAPI(cl.endpoint, err, started) }()

	var body io.Reader
	if cl.body != nil {
		payload, mErr := json.Marshal(cl.body)
		if mErr != nil {
			return nil, &APIError{Message: cl.fallback, Err: fmt.Errorf("marshal request: %w", mErr)}
		}
		body = bytes.NewReader(payload)
	}

	req, rErr := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if rErr != nil {
		return nil, &APIError{Message: cl.fallback, Err: fmt.Errorf("create request: %w", rErr)}
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds, ok := ctx.Value(credentialsKey{}).(credentials); ok {
		for _, ck := range creds.cookies {
			req.AddCookie(ck)
		}
		if creds.authorization != "" {
			req.Header.Set("Authorization", creds.authorization)
		}
	}

	resp, dErr := c.client.Do(req)
	if dErr != nil {
		c.logger.Error("API request failed", zap.String("endpoint", cl.endpoint), zap.Error(dErr))
		return nil, &APIError{Message: cl.fallback, Err: dErr}
	}
	defer resp.Body.Close()

	raw, rErr := io.ReadAll(resp.Body)
	if rErr != nil {
		c.logger.Error("API response read failed",
			zap.String("endpoint", cl.endpoint),
			zap.Int("statusCode", resp.StatusCode),
			zap.Error(rErr))
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: cl.fallback, Err: fmt.Errorf("read response: %w", rErr)}
	}
	var env dto.Envelope[json.RawMessage]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || decodeErr != nil || !env.Success {
		msg := cl.fallback
		if decodeErr == nil && strings.TrimSpace(env.Message) != "" {
			msg = env.Message
		}
		status := resp.StatusCode
		if status >= 200 && status <= 299 {
			status = http.StatusBadRequest
			if decodeErr != nil {
				status = http.StatusBadGateway
			}
		}
		c.logger.Warn("API call rejected",
			zap.String("endpoint", cl.endpoint),
			zap.Int("statusCode", resp.StatusCode),
			zap.String("message", msg))
		return nil, &APIError{StatusCode: status, Message: msg}
	}

	return env.Data, nil
}

// decodeList reads a data array. Missing or malformed data yields an empty
// slice and a warning.
func decodeList[T any](c *Client, endpoint string, data json.RawMessage) []T {
	out := []T{}
	if isEmpty(data) {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Warn("Unexpected data shape, using empty collection",
			zap.String("endpoint", endpoint), zap.Error(err))
		return []T{}
	}
	return out
}

// decodeOne reads a data object, returning the zero value when it is absent
// or malformed.
func decodeOne[T any](c *Client, endpoint string, data json.RawMessage) T {
	var out T
	if isEmpty(data) {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Warn("Unexpected data shape, ignoring",
			zap.String("endpoint", endpoint), zap.Error(err))
		var zero T
		return zero
	}
	return out
}

func isEmpty(data json.RawMessage) bool {
	d := bytes.TrimSpace(data)
	return len(d) == 0 || bytes.Equal(d, []byte("null"))
}

// Ping checks the API health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/health",
		endpoint: "health",
		fallback: "API is unavailable",
	})
	return err
}
