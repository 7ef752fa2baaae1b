// Package remote talks to the chat-completion and affirmations endpoints.
// Every call returns either a payload or a *Failure; nothing panics and no
// call outlives the configured timeout.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
)

const maxBodyBytes = 1 << 20

type Client struct {
	chatURL         string
	apiKey          string
	model           string
	temperature     float64
	affirmationsURL string
	client          *http.Client
	logger          *slog.Logger
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.AITimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		chatURL:         cfg.ChatAPIURL,
		apiKey:          cfg.ChatAPIKey,
		model:           cfg.ChatModel,
		temperature:     cfg.ChatTemperature,
		affirmationsURL: cfg.AffirmationsAPIURL,
		client:          &http.Client{Timeout: timeout},
		logger:          slog.Default().With("component", "remote"),
	}
}

// Message is one chat-completion message. Role is "system" or "user".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Affirmation is one item of the affirmations endpoint.
type Affirmation struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Complete posts the conversation and returns choices[0].message.content.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" || c.chatURL == "" {
		return "", &Failure{Reason: ReasonNotConfigured, Err: fmt.Errorf("chat API key not configured")}
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &Failure{Reason: ReasonDecode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", &Failure{Reason: ReasonNotConfigured, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	body, err := c.do(req)
	if err != nil {
		c.logger.Warn("chat completion failed", "error", err, "latency_ms", time.Since(start).Milliseconds())
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", decodeFailure("parse chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", decodeFailure("chat response has no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == nil || strings.TrimSpace(*content) == "" {
		return "", decodeFailure("chat response has no message content")
	}

	c.logger.Debug("chat completion received", "latency_ms", time.Since(start).Milliseconds())
	return strings.TrimSpace(*content), nil
}

// FetchAffirmations fetches the affirmation list. An empty list is a success.
func (c *Client) FetchAffirmations(ctx context.Context) ([]Affirmation, error) {
	if c.affirmationsURL == "" {
		return nil, &Failure{Reason: ReasonNotConfigured, Err: fmt.Errorf("affirmations URL not configured")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.affirmationsURL, nil)
	if err != nil {
		return nil, &Failure{Reason: ReasonNotConfigured, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		c.logger.Warn("affirmations fetch failed", "error", err)
		return nil, err
	}

	var items []Affirmation
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, decodeFailure("parse affirmations: %w", err)
	}
	for i, item := range items {
		if item.ID == "" || strings.TrimSpace(item.Content) == "" {
			return nil, decodeFailure("affirmation %d is missing id or content", i)
		}
	}
	return items, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, transportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportFailure(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Failure{
			Reason:     ReasonBadStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("API returned %d: %s", resp.StatusCode, truncate(string(body), 200)),
		}
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
