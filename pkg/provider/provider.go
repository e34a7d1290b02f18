// Package provider abstracts the text-generation backends. Each client
// takes a system prompt and a user prompt and returns plain text; the
// factory picks the backend from the resolved base URL.
package provider

import (
	"context"

	"github.com/gitshape-ai/gitshape/pkg/config"
	"github.com/gitshape-ai/gitshape/pkg/errors"
	"github.com/gitshape-ai/gitshape/pkg/logging"
)

// Client is a text-generation backend.
type Client interface {
	// Chat sends one system+user exchange and returns the response text.
	Chat(ctx context.Context, system, user string) (string, error)
	// Model returns the model name this client generates with.
	Model() string
}

// New builds the client matching the resolved configuration: the Anthropic
// SDK for anthropic.com URLs, the Gemini SDK for generativelanguage URLs,
// and the OpenAI-compatible client for everything else (OpenAI, Groq,
// Ollama).
func New(cfg *config.Resolved, log logging.Logger) (Client, error) {
	if cfg.APIKey == "" && cfg.BaseURL != config.ProviderOllama {
		return nil, errors.ConfigError("no API key configured; set one via --api-key, the environment, or "+config.ConfigFilename, nil)
	}

	switch {
	case cfg.IsClaude():
		return newAnthropicClient(cfg, log), nil
	case cfg.IsGemini():
		return newGeminiClient(cfg, log)
	default:
		return newOpenAIClient(cfg, log), nil
	}
}
