package provider

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/gitshape-ai/gitshape/pkg/config"
	"github.com/gitshape-ai/gitshape/pkg/errors"
	"github.com/gitshape-ai/gitshape/pkg/logging"
)

type geminiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
	log         logging.Logger
}

func newGeminiClient(cfg *config.Resolved, log logging.Logger) (*geminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.ProviderError("failed to create gemini client", err)
	}
	return &geminiClient{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log,
	}, nil
}

func (c *geminiClient) Model() string { return c.model }

func (c *geminiClient) Chat(ctx context.Context, system, user string) (string, error) {
	requestID := uuid.NewString()
	c.log.Debug("gemini request", "request_id", requestID, "model", c.model, "max_tokens", c.maxTokens)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(user)}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{}
	if strings.TrimSpace(system) != "" {
		cfg.SystemInstruction = genai.NewContentFromParts(
			[]*genai.Part{genai.NewPartFromText(system)}, genai.RoleUser)
	}
	if c.maxTokens > 0 {
		cfg.MaxOutputTokens = int32(c.maxTokens)
	}
	if c.temperature > 0 {
		temp := float32(c.temperature)
		cfg.Temperature = &temp
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", errors.ProviderError("gemini request failed", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.ProviderError("gemini returned no candidates", nil)
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.ProviderError("gemini returned an empty response", nil)
	}

	c.log.Debug("gemini response", "request_id", requestID, "chars", len(text))
	return text, nil
}
