// Package poemapi provides the HTTP client for the poem generation backend.
package poemapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tesso57/poemgen/internal/domain/poem"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	healthPath   = "/api/"
	generatePath = "/api/generate-poem"

	maxErrorBodyBytes = 64 << 10
)

var tracer = otel.Tracer("poemgen/poemapi")

// Config controls how the backend is reached.
type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	// Message is the body's error text, if the backend provided one.
	Message string
	Body    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("poem API returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("poem API returned status %d", e.StatusCode)
}

// ServerMessage returns the message the backend put in the error body.
func (e *StatusError) ServerMessage() string {
	return e.Message
}

// Client talks to the poem generation backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client with an instrumented transport.
func NewClient(cfg Config) *Client {
	return NewClientWithHTTP(cfg, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.Timeout,
	})
}

// NewClientWithHTTP creates a client using the given http.Client.
func NewClientWithHTTP(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the backend root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls the backend root endpoint and returns its greeting message.
func (c *Client) Health(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "poemapi.health")
	defer span.End()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return "", fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(resp)
		span.RecordError(statusErr)
		span.SetStatus(codes.Error, "status")
		return "", statusErr
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to decode health response: %w", err)
	}
	return body.Message, nil
}

// Generate sends one poem request and returns the backend's reply.
// A reply with success=false is not an error at this layer.
func (c *Client) Generate(ctx context.Context, req poem.Request) (poem.Response, error) {
	ctx, span := tracer.Start(ctx, "poemapi.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("poem.style", string(req.Style)),
		attribute.String("poem.mood", string(req.Mood)),
		attribute.String("poem.length", string(req.Length)),
	)

	payload, err := json.Marshal(req)
	if err != nil {
		span.RecordError(err)
		return poem.Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		span.RecordError(err)
		return poem.Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return poem.Response{}, fmt.Errorf("failed to generate poem: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(resp)
		span.RecordError(statusErr)
		span.SetStatus(codes.Error, "status")
		return poem.Response{}, statusErr
	}

	var result poem.Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		span.RecordError(err)
		return poem.Response{}, fmt.Errorf("failed to decode response: %w", err)
	}

	span.SetAttributes(attribute.Bool("poem.success", result.Success))
	return result, nil
}

func newStatusError(resp *http.Response) *StatusError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Message:    errorMessageFromBody(raw),
		Body:       string(raw),
	}
}

// errorMessageFromBody prefers the "error" field, then a string "detail" field.
func errorMessageFromBody(raw []byte) string {
	var body struct {
		Error  string `json:"error"`
		Detail any    `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(body.Error); msg != "" {
		return msg
	}
	if detail, ok := body.Detail.(string); ok {
		return strings.TrimSpace(detail)
	}
	return ""
}
