// Package completion talks to an OpenAI-compatible chat-completion endpoint.
package completion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"sponsorbot/internal/domain"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrCompletionFailed is wrapped by every error returned from Complete
var ErrCompletionFailed = errors.New("completion failed")

// StatusError is returned for any response status other than 200
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openchat/openchat-3.5-1210"
	DefaultTimeout = 60 * time.Second
)

// Config holds completion endpoint settings
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
	SiteURL  string
	SiteName string
}

// DefaultConfig returns the OpenRouter defaults for apiKey
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		BaseURL:  DefaultBaseURL,
		Model:    DefaultModel,
		Timeout:  DefaultTimeout,
		SiteName: "12 Step Sponsor Bot",
	}
}

// Client sends chat completion requests with a fixed model
type Client struct {
	api    *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a completion client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	headers := map[string]string{}
	if cfg.SiteURL != "" {
		headers["HTTP-Referer"] = cfg.SiteURL
	}
	if cfg.SiteName != "" {
		headers["X-Title"] = cfg.SiteName
	}
	apiCfg.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &headerTransport{base: http.DefaultTransport, headers: headers},
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  model,
		logger: logger,
	}
}

// Model returns the model identifier sent with every request
func (c *Client) Model() string {
	return c.model
}

// Complete sends messages and returns the first choice's content
func (c *Client) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Warn("Completion request failed",
			zap.String("model", c.model),
			zap.Int("status", statusCode(err)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("Completion returned no choices", zap.String("model", c.model))
		return "", fmt.Errorf("%w: no choices returned", ErrCompletionFailed)
	}

	c.logger.Debug("Completion received",
		zap.String("model", c.model),
		zap.Int("messages", len(messages)),
		zap.Duration("duration", time.Since(start)),
	)

	return resp.Choices[0].Message.Content, nil
}

// statusCode extracts the HTTP status from an API error, 0 for transport errors
func statusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// headerTransport adds fixed headers to every request and rejects every status except 200
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) > 0 {
		req = req.Clone(req.Context())
		for k, v := range t.headers {
			req.Header.Set(k, v)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	return resp, nil
}
