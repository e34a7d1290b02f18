package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/config"
	"github.com/gitshape-ai/gitshape/pkg/gitx"
)

// modelsCmd shows the configured model and the per-provider defaults.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show the configured model and provider defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		fmt.Printf("Base URL:   %s\n", cfg.BaseURL)
		fmt.Printf("Model:      %s\n\n", cfg.Model)

		fmt.Println("Provider defaults:")
		fmt.Printf("  openai  %-28s %s\n", "gpt-5-chat-latest", config.ProviderOpenAI)
		fmt.Printf("  claude  %-28s %s\n", "claude-sonnet-4-5-20250929", config.ProviderClaude)
		fmt.Printf("  gemini  %-28s %s\n", "gemini-2.5-flash", config.ProviderGemini)
		fmt.Printf("  groq    %-28s %s\n", "(set with --model)", config.ProviderGroq)
		fmt.Printf("  ollama  %-28s %s\n", "(set with --model)", config.ProviderOllama)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
