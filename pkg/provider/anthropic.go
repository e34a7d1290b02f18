package provider

import (
	"context"
	"strings"

	anthropic_sdk "github.com/anthropics/anthropic-sdk-go"
	anthropic_option "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/gitshape-ai/gitshape/pkg/config"
	"github.com/gitshape-ai/gitshape/pkg/errors"
	"github.com/gitshape-ai/gitshape/pkg/logging"
)

type anthropicClient struct {
	client      anthropic_sdk.Client
	model       string
	maxTokens   int
	temperature float64
	log         logging.Logger
}

func newAnthropicClient(cfg *config.Resolved, log logging.Logger) *anthropicClient {
	opts := []anthropic_option.RequestOption{
		anthropic_option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" && cfg.BaseURL != config.ProviderClaude {
		opts = append(opts, anthropic_option.WithBaseURL(cfg.BaseURL))
	}
	return &anthropicClient{
		client:      anthropic_sdk.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log,
	}
}

func (c *anthropicClient) Model() string { return c.model }

func (c *anthropicClient) Chat(ctx context.Context, system, user string) (string, error) {
	requestID := uuid.NewString()
	c.log.Debug("anthropic request", "request_id", requestID, "model", c.model, "max_tokens", c.maxTokens)

	params := anthropic_sdk.MessageNewParams{
		Model:     anthropic_sdk.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic_sdk.MessageParam{
			anthropic_sdk.NewUserMessage(anthropic_sdk.NewTextBlock(user)),
		},
	}
	if strings.TrimSpace(system) != "" {
		params.System = []anthropic_sdk.TextBlockParam{{Text: system}}
	}
	if c.temperature > 0 {
		params.Temperature = anthropic_sdk.Float(c.temperature)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", errors.ProviderError("anthropic request failed", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.ProviderError("anthropic returned an empty response", nil)
	}

	c.log.Debug("anthropic response", "request_id", requestID, "chars", len(text))
	return text, nil
}
