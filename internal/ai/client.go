package ai

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/logger"
)

// Client wraps the Gemini API client and hands out conversations.
type Client struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

func NewClient(ctx context.Context, cfg config.GeminiConfig, httpClient *http.Client, log logger.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// NewConversation opens a fresh multi-turn exchange with empty history.
func (c *Client) NewConversation() Conversation {
	return &geminiConversation{
		client: c.client,
		model:  c.model,
		logger: c.logger,
	}
}
