package provider

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/gitshape-ai/gitshape/pkg/config"
	"github.com/gitshape-ai/gitshape/pkg/errors"
	"github.com/gitshape-ai/gitshape/pkg/logging"
)

// openaiClient serves every OpenAI-compatible endpoint: OpenAI itself plus
// Groq and Ollama via their base URLs.
type openaiClient struct {
	client      openai.Client
	model       string
	maxTokens   int
	temperature float64
	log         logging.Logger
}

func newOpenAIClient(cfg *config.Resolved, log logging.Logger) *openaiClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" && cfg.BaseURL != config.ProviderOpenAI {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &openaiClient{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log,
	}
}

func (c *openaiClient) Model() string { return c.model }

func (c *openaiClient) Chat(ctx context.Context, system, user string) (string, error) {
	requestID := uuid.NewString()
	c.log.Debug("openai request", "request_id", requestID, "model", c.model, "max_tokens", c.maxTokens)

	var messages []openai.ChatCompletionMessageParamUnion
	if strings.TrimSpace(system) != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(user))

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    shared.ChatModel(c.model),
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.maxTokens))
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errors.ProviderError("chat completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ProviderError("chat completion returned no choices", nil)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.ProviderError("chat completion returned an empty response", nil)
	}

	c.log.Debug("openai response", "request_id", requestID, "chars", len(text))
	return text, nil
}
