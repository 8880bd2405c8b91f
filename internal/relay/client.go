// Package relay forwards accepted contact submissions to the third-party
// forms relay, which emails them on to the team.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"

	"omgagents.ai/web/internal/contact"
	"omgagents.ai/web/internal/observability"
)

const (
	DefaultEndpoint = "https://api.web3forms.com/submit"
	defaultTimeout  = 20 * time.Second
)

// ErrNetwork marks failures to reach the relay at all.
var ErrNetwork = errors.New("relay: network error")

// RelayError is a failure the relay reported itself.
type RelayError struct {
	Status  int
	Message string
}

func (e *RelayError) Error() string { return e.Message }

// reply is the relay's JSON answer.
type reply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client posts multipart submissions to the relay endpoint. It never retries.
type Client struct {
	endpoint  string
	accessKey string
	http      *resty.Client
}

// Option customises the Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = resty.NewWithClient(hc).SetTimeout(hc.Timeout)
		}
	}
}

// New builds a relay client.
func New(endpoint, accessKey string, timeout time.Duration, opts ...Option) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		endpoint:  endpoint,
		accessKey: accessKey,
		http:      resty.New().SetTimeout(timeout).SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Forward sends one submission. Errors wrap ErrNetwork for transport
// failures, are *RelayError when the relay answered success=false, and are
// plain errors for anything else.
func (c *Client) Forward(ctx context.Context, msg contact.Sanitized) (err error) {
	ctx, span := observability.Tracer().Start(ctx, "relay.Forward")
	span.SetAttributes(attribute.Int("relay.attachments", len(msg.Attachments)))
	status := 0
	defer func() { observability.EndSpan(span, status, err) }()

	req := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"access_key":    c.accessKey,
			"name":          msg.Name,
			"email":         msg.Email,
			"message":       msg.Message,
			"company":       msg.Company,
			"securityCheck": msg.SecurityCheck,
		})

	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}()
	for i, a := range msg.Attachments {
		if a.Open == nil {
			continue
		}
		rc, openErr := a.Open()
		if openErr != nil {
			return fmt.Errorf("relay: open attachment %s: %w", a.Filename, openErr)
		}
		closers = append(closers, rc)
		req.SetMultipartField(fmt.Sprintf("file_%d", i), a.Filename, a.ContentType, rc)
	}

	resp, postErr := req.Post(c.endpoint)
	if postErr != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, postErr)
	}
	status = resp.StatusCode()

	var out reply
	if decodeErr := json.Unmarshal(resp.Body(), &out); decodeErr != nil {
		return fmt.Errorf("relay: unexpected response %s", resp.Status())
	}
	if !out.Success {
		m := strings.TrimSpace(out.Message)
		if m == "" {
			m = "Submission failed"
		}
		return &RelayError{Status: status, Message: m}
	}
	return nil
}
