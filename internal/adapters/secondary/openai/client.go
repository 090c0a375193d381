// Package openai talks to the Azure OpenAI chat-completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"sdlc-studio-service/internal/config"
	"sdlc-studio-service/internal/core/domain"
	ports "sdlc-studio-service/internal/core/ports/output"
)

type client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
}

func NewClient(cfg *config.OpenAIConfig) ports.AIClient {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
	}
}

type chatRequest struct {
	Messages    []ports.ChatTurn `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	reply, _, err := c.Chat(ctx, []ports.ChatTurn{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, maxTokens)
	return reply, err
}

func (c *client) Chat(ctx context.Context, turns []ports.ChatTurn, maxTokens int) (string, int, error) {
	if c.endpoint == "" || c.apiKey == "" {
		return "", 0, domain.ErrAIUnavailable
	}

	payload, err := json.Marshal(chatRequest{
		Messages:    turns,
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", 0, fmt.Errorf("marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("read chat response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", 0, fmt.Errorf("decode chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := ""
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", 0, fmt.Errorf("chat completion failed (%d): %s", resp.StatusCode, msg)
	}
	if len(parsed.Choices) == 0 {
		return "", 0, fmt.Errorf("chat completion returned no choices")
	}

	log.WithFields(log.Fields{
		"deployment": c.deployment,
		"tokens":     parsed.Usage.TotalTokens,
		"duration":   time.Since(start).String(),
	}).Debug("chat completion")

	return parsed.Choices[0].Message.Content, parsed.Usage.TotalTokens, nil
}
