// Package config handles gitshape configuration: the ~/.gitshape.yaml file,
// environment variables, and command-line overrides, resolved in
// CLI > env > file > default order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gitshape-ai/gitshape/pkg/errors"
)

// Provider base URLs. The OpenAI-compatible entries (openai, groq, ollama)
// share one client; claude and gemini use their native SDKs.
const (
	ProviderOpenAI = "https://api.openai.com/v1"
	ProviderClaude = "https://api.anthropic.com/v1"
	ProviderGemini = "https://generativelanguage.googleapis.com"
	ProviderGroq   = "https://api.groq.com/openai/v1"
	ProviderOllama = "http://localhost:11434/v1"
)

// ConfigFilename is the per-user config file, stored in the home directory.
const ConfigFilename = ".gitshape.yaml"

// Default generation parameters.
const (
	DefaultMaxTokens    = 500
	DefaultTemperature  = 0.5
	DefaultMaxDiffChars = 30000
)

// ProviderToURL maps a provider name to its base URL. Returns "" for
// unknown providers.
func ProviderToURL(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return ProviderOpenAI
	case "claude", "anthropic":
		return ProviderClaude
	case "gemini", "google":
		return ProviderGemini
	case "groq":
		return ProviderGroq
	case "ollama", "local":
		return ProviderOllama
	default:
		return ""
	}
}

// Config is the on-disk configuration. All fields are optional; nil means
// unset so resolution can fall through to the next source.
type Config struct {
	APIKey       *string  `yaml:"api_key,omitempty"`
	Model        *string  `yaml:"model,omitempty"`
	MaxTokens    *int     `yaml:"max_tokens,omitempty"`
	Temperature  *float64 `yaml:"temperature,omitempty"`
	BaseURL      *string  `yaml:"base_url,omitempty"`
	Provider     *string  `yaml:"provider,omitempty"`
	BaseBranch   *string  `yaml:"base_branch,omitempty"`
	MaxDiffChars *int     `yaml:"max_diff_chars,omitempty"`
	Algorithm    *int     `yaml:"algorithm,omitempty"`
}

// Path returns the config file path in the user's home directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.ConfigError("could not determine home directory", err)
	}
	return filepath.Join(home, ConfigFilename), nil
}

// Load reads the config file. A missing or unreadable file yields an empty
// config rather than an error so the tool works without one.
func Load() *Config {
	path, err := Path()
	if err != nil {
		return &Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &Config{}
	}
	return &cfg
}

// Save writes the config file to the home directory.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.ConfigError("failed to serialize config", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to write config file: %s", path), err)
	}
	return nil
}

// LoadDotenv loads a .env file from the current directory if present, so
// API keys can live next to the repository. Missing files are not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

// Overrides carries command-line values into Resolve. Nil means the flag
// was not given.
type Overrides struct {
	APIKey       *string
	Model        *string
	MaxTokens    *int
	Temperature  *float64
	BaseURL      *string
	Provider     *string
	BaseBranch   *string
	MaxDiffChars *int
	Algorithm    *int
}

// Resolved is the fully-resolved configuration every command consumes.
type Resolved struct {
	APIKey       string
	Model        string
	MaxTokens    int
	Temperature  float64
	BaseURL      string
	BaseBranch   string
	MaxDiffChars int
	Algorithm    int
}

// IsClaude reports whether the resolved base URL targets the Anthropic API.
func (r *Resolved) IsClaude() bool {
	return strings.Contains(r.BaseURL, "anthropic.com")
}

// IsGemini reports whether the resolved base URL targets the Gemini API.
func (r *Resolved) IsGemini() bool {
	return strings.Contains(r.BaseURL, "generativelanguage.googleapis.com")
}

func (r *Resolved) isGroq() bool {
	return strings.Contains(r.BaseURL, "api.groq.com")
}

// DefaultModel returns the provider-appropriate default model for the
// resolved base URL.
func (r *Resolved) DefaultModel() string {
	switch {
	case r.IsClaude():
		return "claude-sonnet-4-5-20250929"
	case r.IsGemini():
		return "gemini-2.5-flash"
	default:
		return "gpt-5-chat-latest"
	}
}

// envAPIKey returns the provider-appropriate API key from the environment.
func (r *Resolved) envAPIKey() string {
	switch {
	case r.IsClaude():
		return os.Getenv("ANTHROPIC_API_KEY")
	case r.isGroq():
		if k := os.Getenv("GROQ_API_KEY"); k != "" {
			return k
		}
		return os.Getenv("OPENAI_API_KEY")
	case r.IsGemini():
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

// Resolve merges CLI overrides, the environment, and the config file into a
// Resolved config. defaultBranch supplies the repository's default branch
// when neither the CLI nor the file sets one; it is only invoked on demand.
func Resolve(ov Overrides, file *Config, defaultBranch func() string) *Resolved {
	if file == nil {
		file = &Config{}
	}

	r := &Resolved{}

	// Base URL first: the provider drives model and API-key defaults.
	switch {
	case ov.Provider != nil && ProviderToURL(*ov.Provider) != "":
		r.BaseURL = ProviderToURL(*ov.Provider)
	case ov.BaseURL != nil:
		r.BaseURL = *ov.BaseURL
	case file.BaseURL != nil:
		r.BaseURL = *file.BaseURL
	case file.Provider != nil && ProviderToURL(*file.Provider) != "":
		r.BaseURL = ProviderToURL(*file.Provider)
	default:
		r.BaseURL = ProviderOpenAI
	}

	r.APIKey = firstString(ov.APIKey, r.envAPIKey(), file.APIKey, "")
	r.Model = firstString(ov.Model, "", file.Model, r.DefaultModel())
	r.MaxTokens = firstInt(ov.MaxTokens, file.MaxTokens, DefaultMaxTokens)
	r.Temperature = firstFloat(ov.Temperature, file.Temperature, DefaultTemperature)
	r.MaxDiffChars = firstInt(ov.MaxDiffChars, file.MaxDiffChars, DefaultMaxDiffChars)
	r.Algorithm = firstInt(ov.Algorithm, file.Algorithm, 2)

	switch {
	case ov.BaseBranch != nil:
		r.BaseBranch = *ov.BaseBranch
	case file.BaseBranch != nil:
		r.BaseBranch = *file.BaseBranch
	default:
		r.BaseBranch = defaultBranch()
	}

	return r
}

func firstString(cli *string, env string, file *string, def string) string {
	if cli != nil {
		return *cli
	}
	if env != "" {
		return env
	}
	if file != nil {
		return *file
	}
	return def
}

func firstInt(cli, file *int, def int) int {
	if cli != nil {
		return *cli
	}
	if file != nil {
		return *file
	}
	return def
}

func firstFloat(cli, file *float64, def float64) float64 {
	if cli != nil {
		return *cli
	}
	if file != nil {
		return *file
	}
	return def
}
