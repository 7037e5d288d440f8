package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"relay/config"
	"relay/logging"
)

// Client sends relay requests to the provider's Messages API.
type Client struct {
	url        string
	model      string
	maxTokens  int
	httpClient *resty.Client
}

// NewBackendClient creates a Client for the configured provider.
func NewBackendClient(cfg config.ProviderConfig) *Client {
	httpClient := resty.New().
		SetLogger(logging.GetLogger()).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", cfg.APIVersion)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		url:        cfg.URL,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		httpClient: httpClient,
	}
}

// Relay forwards content as a single user message and returns the provider's
// answer. Every way the call can go wrong is reported as a Failure.
func (c *Client) Relay(ctx context.Context, content json.RawMessage) Result {
	payload := NewOutboundRequest(c.model, c.maxTokens, content)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return Failure{Cause: fmt.Errorf("sending request: %w", err)}
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return Failure{Cause: &ProviderError{StatusCode: resp.StatusCode(), Body: body}}
	}
	if !json.Valid(body) {
		return Failure{Cause: errors.New("provider returned a malformed JSON body")}
	}

	return Success{Body: body}
}
