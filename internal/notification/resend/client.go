// Package resend delivers notifications through the Resend HTTP API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"

	"localdir/internal/notification"
	"localdir/pkg/platform/circuit"
)

// ErrCircuitOpen is reported without contacting the API while the provider is
// considered down.
var ErrCircuitOpen = errors.New("resend: circuit open")

// Client posts messages to {baseURL}/emails.
type Client struct {
	apiKey  string
	baseURL string
	from    string
	http    *http.Client
	logger  *slog.Logger
	breaker *circuit.Breaker

	retryCfg retry.Config
	timeout  time.Duration
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(cl *Client) {
		cl.breaker = b
	}
}

// WithRetry sets the attempt count and the first backoff delay.
func WithRetry(attempts int, initialDelay time.Duration) Option {
	return func(cl *Client) {
		cl.retryCfg.MaxAttempts = attempts
		cl.retryCfg.InitialDelay = initialDelay
	}
}

func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

func New(apiKey, baseURL, from string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		from:    from,
		http:    &http.Client{},
		logger:  slog.New(slog.DiscardHandler),
		breaker: circuit.New("resend", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(1)),
		retryCfg: retry.Config{
			MaxAttempts:   2,
			InitialDelay:  time.Second,
			BackoffPolicy: retry.BackoffExponential,
		},
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	CC      []string `json:"cc,omitempty"`
	BCC     []string `json:"bcc,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send delivers msg. It never returns an error; failures are in the Outcome.
func (c *Client) Send(ctx context.Context, msg notification.Message) notification.Outcome {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		CC:      msg.CC,
		BCC:     msg.BCC,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return notification.Outcome{Err: fmt.Errorf("encode resend request: %w", err)}
	}
	if !c.breaker.Allow() {
		return notification.Outcome{Err: ErrCircuitOpen}
	}

	r := retry.New[string](c.retryCfg)
	t := timeout.New[string](timeout.Config{DefaultTimeout: c.timeout})
	id, err := t.Execute(ctx, c.timeout, func(ctx context.Context) (string, error) {
		return r.Do(ctx, func(ctx context.Context) (string, error) {
			return c.post(ctx, body)
		})
	})
	if err != nil {
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.WarnContext(ctx, "resend circuit opened", "error", err)
		}
		return notification.Outcome{Err: err}
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "resend circuit closed")
	}
	return notification.Outcome{ID: id}
}

func (c *Client) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read resend response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("resend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var out sendResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode resend response: %w", err)
	}
	return out.ID, nil
}
