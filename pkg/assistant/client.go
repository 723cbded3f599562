// Package assistant proxies Q&A prompts to the configured upstream AI
// endpoint. It carries no state; the core never depends on it.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the upstream AI endpoint.
type Client struct {
	upstreamURL string
	httpClient  *http.Client
}

// NewClient creates a client for the given upstream URL. timeout
// bounds the whole exchange; there is no retry.
func NewClient(upstreamURL string, timeout time.Duration) *Client {
	return &Client{
		upstreamURL: upstreamURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Response string `json:"response"`
}

// Ask sends the prompt upstream and returns the response text.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(askRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode prompt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.upstreamURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("assistant upstream returned status %d", resp.StatusCode)
	}

	var out askResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return out.Response, nil
}
