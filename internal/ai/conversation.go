package ai

import (
	"context"
	"fmt"
	"slices"

	"google.golang.org/genai"

	"github.com/gevsen/Tg-bot/internal/logger"
)

// Conversation is an ongoing multi-turn exchange with the model. It is
// owned by exactly one session and is not safe for concurrent use.
type Conversation interface {
	Send(ctx context.Context, req Request, opts GenerationOptions) (*Response, error)
}

// geminiConversation keeps the turn history itself and calls
// Models.GenerateContent per turn, because the generation config has to be
// rebuilt from session settings on every message.
type geminiConversation struct {
	client  *genai.Client
	model   string
	logger  logger.Logger
	history []*genai.Content
}

func (c *geminiConversation) Send(ctx context.Context, req Request, opts GenerationOptions) (*Response, error) {
	if req.Empty() {
		return nil, fmt.Errorf("empty request")
	}

	var parts []*genai.Part
	if req.Text != "" {
		parts = append(parts, genai.NewPartFromText(req.Text))
	}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}

	contents := append(slices.Clone(c.history), &genai.Content{
		Role:  genai.RoleUser,
		Parts: parts,
	})

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, buildConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	response := &Response{}
	var answerParts []*genai.Part
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text == "" {
				continue
			}
			response.Fragments = append(response.Fragments, Fragment{
				Text:    part.Text,
				Thought: part.Thought,
			})
			if !part.Thought {
				answerParts = append(answerParts, part)
			}
		}
	}

	c.logger.WithFields(logger.Fields{
		"model":     c.model,
		"fragments": len(response.Fragments),
	}).Debug("Received model response")

	// Thought fragments are summaries and do not belong in the history.
	c.history = contents
	if len(answerParts) > 0 {
		c.history = append(c.history, &genai.Content{
			Role:  genai.RoleModel,
			Parts: answerParts,
		})
	}

	return response, nil
}

func buildConfig(opts GenerationOptions) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(opts.Temperature)),
		TopP:        genai.Ptr(float32(opts.TopP)),
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: opts.IncludeThoughts,
			ThinkingBudget:  genai.Ptr(int32(opts.ThinkingBudget)),
		},
	}
	if opts.Grounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}
