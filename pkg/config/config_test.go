// Package config provides configuration resolution tests
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProviderToURL(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"openai", ProviderOpenAI},
		{"claude", ProviderClaude},
		{"anthropic", ProviderClaude},
		{"gemini", ProviderGemini},
		{"google", ProviderGemini},
		{"groq", ProviderGroq},
		{"ollama", ProviderOllama},
		{"local", ProviderOllama},
		{"OpenAI", ProviderOpenAI},
		{"unknown", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ProviderToURL(tt.provider); got != tt.want {
			t.Errorf("ProviderToURL(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func clearAPIKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "GROQ_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestResolveDefaults(t *testing.T) {
	clearAPIKeyEnv(t)

	r := Resolve(Overrides{}, &Config{}, func() string { return "main" })

	if r.BaseURL != ProviderOpenAI {
		t.Errorf("BaseURL = %q, want openai default", r.BaseURL)
	}
	if r.Model != "gpt-5-chat-latest" {
		t.Errorf("Model = %q, want gpt-5-chat-latest", r.Model)
	}
	if r.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d, want %d", r.MaxTokens, DefaultMaxTokens)
	}
	if r.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want %v", r.Temperature, DefaultTemperature)
	}
	if r.MaxDiffChars != DefaultMaxDiffChars {
		t.Errorf("MaxDiffChars = %d, want %d", r.MaxDiffChars, DefaultMaxDiffChars)
	}
	if r.BaseBranch != "main" {
		t.Errorf("BaseBranch = %q, want main (from callback)", r.BaseBranch)
	}
	if r.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", r.APIKey)
	}
}

func TestResolveProviderDrivesModelAndKey(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	provider := "claude"
	r := Resolve(Overrides{Provider: &provider}, &Config{}, func() string { return "main" })

	if r.BaseURL != ProviderClaude {
		t.Errorf("BaseURL = %q, want claude URL", r.BaseURL)
	}
	if r.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("Model = %q, want claude default", r.Model)
	}
	if r.APIKey != "sk-ant-test" {
		t.Errorf("APIKey = %q, want env value", r.APIKey)
	}
	if !r.IsClaude() {
		t.Error("IsClaude() = false, want true")
	}
}

func TestResolvePrecedence(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "env-key")

	fileKey := "file-key"
	fileModel := "file-model"
	fileTokens := 100
	file := &Config{APIKey: &fileKey, Model: &fileModel, MaxTokens: &fileTokens}

	// CLI beats env beats file.
	cliKey := "cli-key"
	r := Resolve(Overrides{APIKey: &cliKey}, file, func() string { return "main" })
	if r.APIKey != "cli-key" {
		t.Errorf("APIKey = %q, want CLI value", r.APIKey)
	}

	// Without CLI, env wins over file.
	r = Resolve(Overrides{}, file, func() string { return "main" })
	if r.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env value", r.APIKey)
	}
	if r.Model != "file-model" {
		t.Errorf("Model = %q, want file value", r.Model)
	}
	if r.MaxTokens != 100 {
		t.Errorf("MaxTokens = %d, want file value 100", r.MaxTokens)
	}

	// Without env, file wins.
	clearAPIKeyEnv(t)
	r = Resolve(Overrides{}, file, func() string { return "main" })
	if r.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file value", r.APIKey)
	}
}

func TestResolveGroqFallsBackToOpenAIKey(t *testing.T) {
	clearAPIKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "openai-key")

	provider := "groq"
	r := Resolve(Overrides{Provider: &provider}, &Config{}, func() string { return "main" })
	if r.APIKey != "openai-key" {
		t.Errorf("APIKey = %q, want OPENAI_API_KEY fallback", r.APIKey)
	}

	t.Setenv("GROQ_API_KEY", "groq-key")
	r = Resolve(Overrides{Provider: &provider}, &Config{}, func() string { return "main" })
	if r.APIKey != "groq-key" {
		t.Errorf("APIKey = %q, want GROQ_API_KEY", r.APIKey)
	}
}

func TestResolveFileProviderDrivesBaseURL(t *testing.T) {
	clearAPIKeyEnv(t)

	provider := "gemini"
	r := Resolve(Overrides{}, &Config{Provider: &provider}, func() string { return "main" })
	if r.BaseURL != ProviderGemini {
		t.Errorf("BaseURL = %q, want gemini URL from file provider", r.BaseURL)
	}
	if r.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini default", r.Model)
	}

	// An explicit base_url in the file wins over the provider name.
	url := "http://proxy.internal:8080/v1"
	r = Resolve(Overrides{}, &Config{Provider: &provider, BaseURL: &url}, func() string { return "main" })
	if r.BaseURL != url {
		t.Errorf("BaseURL = %q, want explicit file base_url", r.BaseURL)
	}

	// An unknown provider name falls through to the default.
	bad := "nonsense"
	r = Resolve(Overrides{}, &Config{Provider: &bad}, func() string { return "main" })
	if r.BaseURL != ProviderOpenAI {
		t.Errorf("BaseURL = %q, want openai default for unknown provider", r.BaseURL)
	}
}

func TestResolveBaseBranchSkipsCallbackWhenSet(t *testing.T) {
	clearAPIKeyEnv(t)
	branch := "develop"
	called := false
	r := Resolve(Overrides{BaseBranch: &branch}, &Config{}, func() string {
		called = true
		return "main"
	})
	if r.BaseBranch != "develop" {
		t.Errorf("BaseBranch = %q, want develop", r.BaseBranch)
	}
	if called {
		t.Error("default branch callback should not run when the flag is set")
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	model := "gpt-4o"
	tokens := 2048
	temp := 0.7
	branch := "develop"
	cfg := &Config{Model: &model, MaxTokens: &tokens, Temperature: &temp, BaseBranch: &branch}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ConfigFilename)); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got := Load()
	if got.Model == nil || *got.Model != "gpt-4o" {
		t.Errorf("Model = %v, want gpt-4o", got.Model)
	}
	if got.MaxTokens == nil || *got.MaxTokens != 2048 {
		t.Errorf("MaxTokens = %v, want 2048", got.MaxTokens)
	}
	if got.Temperature == nil || *got.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", got.Temperature)
	}
	if got.APIKey != nil {
		t.Errorf("APIKey = %v, want nil for unset field", got.APIKey)
	}
}

func TestLoadMissingFileYieldsEmptyConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	got := Load()
	if got == nil {
		t.Fatal("Load() = nil")
	}
	if got.Model != nil || got.APIKey != nil {
		t.Errorf("Load() on missing file = %+v, want empty config", got)
	}
}
