package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/config"
)

// configCmd manages the ~/.gitshape.yaml file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		cfg := config.Load()

		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("api_key:        %s\n", maskKey(cfg.APIKey))
		fmt.Printf("model:          %s\n", orDefault(strVal(cfg.Model), "(default)"))
		fmt.Printf("max_tokens:     %s\n", orDefault(intVal(cfg.MaxTokens), fmt.Sprintf("(default: %d)", config.DefaultMaxTokens)))
		fmt.Printf("temperature:    %s\n", orDefault(floatVal(cfg.Temperature), fmt.Sprintf("(default: %g)", config.DefaultTemperature)))
		fmt.Printf("base_url:       %s\n", orDefault(strVal(cfg.BaseURL), "(default: "+config.ProviderOpenAI+")"))
		fmt.Printf("provider:       %s\n", orDefault(strVal(cfg.Provider), "(not set)"))
		fmt.Printf("base_branch:    %s\n", orDefault(strVal(cfg.BaseBranch), "(not set)"))
		fmt.Printf("max_diff_chars: %s\n", orDefault(intVal(cfg.MaxDiffChars), fmt.Sprintf("(default: %d)", config.DefaultMaxDiffChars)))
		fmt.Printf("algorithm:      %s\n", orDefault(intVal(cfg.Algorithm), "(default: 2)"))

		fmt.Println("\nPriority: CLI args > env var > config file > defaults")
		return nil
	},
}

// configSetCmd writes the global flags given on the command line into the
// config file, leaving everything else untouched.
var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the given global flags to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		ov := overridesFromFlags(cmd)

		changed := false
		if ov.APIKey != nil {
			cfg.APIKey = ov.APIKey
			changed = true
		}
		if ov.Model != nil {
			cfg.Model = ov.Model
			changed = true
		}
		if ov.MaxTokens != nil {
			cfg.MaxTokens = ov.MaxTokens
			changed = true
		}
		if ov.Temperature != nil {
			cfg.Temperature = ov.Temperature
			changed = true
		}
		if ov.Provider != nil {
			if config.ProviderToURL(*ov.Provider) == "" {
				return fmt.Errorf("unknown provider: %s", *ov.Provider)
			}
			cfg.Provider = ov.Provider
			changed = true
		} else if ov.BaseURL != nil {
			cfg.BaseURL = ov.BaseURL
			changed = true
		}
		if ov.BaseBranch != nil {
			cfg.BaseBranch = ov.BaseBranch
			changed = true
		}
		if ov.MaxDiffChars != nil {
			cfg.MaxDiffChars = ov.MaxDiffChars
			changed = true
		}
		if ov.Algorithm != nil {
			cfg.Algorithm = ov.Algorithm
			changed = true
		}

		if !changed {
			return fmt.Errorf("nothing to save; pass global flags like --model or --provider")
		}
		if err := cfg.Save(); err != nil {
			return err
		}

		path, _ := config.Path()
		fmt.Printf("Config saved to: %s\n", path)
		return nil
	},
}

func maskKey(key *string) string {
	if key == nil || *key == "" {
		return "(env or --api-key)"
	}
	k := *key
	if len(k) > 8 {
		k = k[:8]
	}
	return k + "..."
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}

func floatVal(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%g", *p)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
