// backend-go/internal/ai/oracle.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/config"
	"github.com/smartshelfx/backend-go/internal/domain"
)

// Oracle is the external decision oracle: prompt text in, completion text
// out. A failed or timed-out call surfaces as domain.ErrOracleUnavailable;
// the caller decides whether to retry or fall back to the local forecast.
// No implementation may fabricate a substitute response.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// openRouterClient talks to an OpenAI-compatible chat completions endpoint.
type openRouterClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOracle builds the HTTP-backed oracle client with a bounded timeout.
func NewOracle(cfg config.OracleConfig) Oracle {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &openRouterClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle call failed: %v: %w", err, domain.ErrOracleUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("oracle response read failed: %v: %w", err, domain.ErrOracleUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("oracle returned status %d: %w", resp.StatusCode, domain.ErrOracleUnavailable)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("oracle response decode failed: %v: %w", err, domain.ErrOracleUnavailable)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("oracle returned no choices: %w", domain.ErrOracleUnavailable)
	}

	log.Debug().
		Str("model", c.model).
		Dur("latency", time.Since(start)).
		Msg("oracle completion received")

	return parsed.Choices[0].Message.Content, nil
}
