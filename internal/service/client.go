package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/config"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	cb "github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/circuit_breaker"
)

const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
	bearer              = "Bearer "
)

// Client is the transport shared by the remote API services. Every call is
// a single round trip; nothing is retried.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	base    *url.URL
	breaker cb.CircuitBreaker
}

func NewClient(log *zap.Logger, cfg config.API) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("api base url %q is not absolute", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	log = log.Named("api")
	c := &Client{
		log:    log,
		client: &http.Client{Timeout: timeout},
		base:   base,
	}
	c.breaker = cb.New(cfg.BreakerWindow, cfg.BreakerCooldown, cfg.BreakerRatio, 1,
		cb.WithFailureFilter(errs.Retryable),
		cb.WithStateHook(func(from, to cb.State) {
			log.Warn("circuit breaker", zap.Stringer("from", from), zap.Stringer("to", to))
		}),
	)
	return c, nil
}

// Request describes one call. Token is sent as a bearer credential when set.
type Request struct {
	Method string
	// Path segments are escaped individually.
	Path  []string
	Query url.Values
	Token string
	Body  any
}

func (c *Client) URL(segments []string, query url.Values) string {
	u := *c.base
	escaped := make([]string, 0, len(segments))
	raw := make([]string, 0, len(segments))
	for _, s := range segments {
		raw = append(raw, s)
		escaped = append(escaped, url.PathEscape(s))
	}
	u.Path = c.base.Path + "/" + strings.Join(raw, "/")
	u.RawPath = c.base.EscapedPath() + "/" + strings.Join(escaped, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do performs the request and returns the raw body of a 2xx response.
// Non-2xx responses become *errs.APIError; anything that prevents a response
// becomes *errs.TransportError.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, int, error) {
	var (
		data   []byte
		status int
	)
	err := c.breaker.Call(func() error {
		var err error
		data, status, err = c.do(ctx, r)
		return err
	})
	if errors.Is(err, cb.ErrOpen) {
		return nil, 0, &errs.TransportError{Op: r.Method + " " + strings.Join(r.Path, "/"), Err: err}
	}
	return data, status, err
}

func (c *Client) do(ctx context.Context, r Request) ([]byte, int, error) {
	op := r.Method + " /" + strings.Join(r.Path, "/")

	var body io.Reader = http.NoBody
	if r.Body != nil {
		b, err := model.JSON.Marshal(r.Body)
		if err != nil {
			return nil, 0, errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, c.URL(r.Path, r.Query), body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set(AuthorizationHeader, bearer+r.Token)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("op", op), zap.String("request_id", reqID), zap.Error(err))
		return nil, 0, &errs.TransportError{Op: op, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &errs.TransportError{Op: op, Err: err}
	}
	c.log.Debug("request",
		zap.String("op", op),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return data, resp.StatusCode, &errs.APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, resp.StatusCode, nil
}

// errorMessage reads {"message": ...} or {"error": ...}, or a short plain
// text body.
func errorMessage(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	if data[0] == '{' {
		var body struct {
			Message any `json:"message"`
			Error   any `json:"error"`
		}
		if err := model.JSON.Unmarshal(data, &body); err == nil {
			if s, ok := body.Message.(string); ok && s != "" {
				return s
			}
			if s, ok := body.Error.(string); ok && s != "" {
				return s
			}
		}
		return ""
	}
	if data[0] == '<' || len(data) > 512 {
		return ""
	}
	return string(data)
}

func unwrapURLError(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) {
		return uErr.Err
	}
	return err
}
