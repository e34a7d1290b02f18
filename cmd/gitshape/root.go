// Package main provides the gitshape CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/config"
	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/logging"
	"github.com/gitshape-ai/gitshape/pkg/provider"
	"github.com/gitshape-ai/gitshape/pkg/shaper"
	"github.com/gitshape-ai/gitshape/pkg/version"
)

// Global flags, shared by every command. Zero values mean "not given";
// flagChanged distinguishes an explicit zero from an omitted flag.
var (
	flagAPIKey      string
	flagModel       string
	flagMaxTokens   int
	flagTemperature float64
	flagBaseURL     string
	flagProvider    string
	flagBaseBranch  string
	flagMaxChars    int
	flagAlg         int
	flagVerbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitshape",
	Short: "Shape git diffs for language models",
	Long: `gitshape turns git diffs into bounded, high-signal input for language
models and uses it to generate commit messages, PR descriptions,
changelogs, and change explanations.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAPIKey, "api-key", "", "API key (overrides env and config file)")
	pf.StringVar(&flagModel, "model", "", "model name (overrides config file)")
	pf.IntVar(&flagMaxTokens, "max-tokens", 0, "max response tokens")
	pf.Float64Var(&flagTemperature, "temperature", 0, "sampling temperature")
	pf.StringVar(&flagBaseURL, "base-url", "", "API base URL")
	pf.StringVar(&flagProvider, "provider", "", "provider shortcut: openai, claude, gemini, groq, ollama")
	pf.StringVar(&flagBaseBranch, "base-branch", "", "base branch for range comparisons")
	pf.IntVar(&flagMaxChars, "max-chars", 0, "diff character budget")
	pf.IntVar(&flagAlg, "alg", 0, "diff algorithm: 1=full, 2=files, 3=hunks, 4=semantic")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// appLogger builds the logger for this invocation.
func appLogger() logging.Logger {
	if flagVerbose {
		return logging.NewVerboseLogger()
	}
	return logging.NewDefaultLogger()
}

// overridesFromFlags converts explicitly-set global flags into config
// overrides.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var ov config.Overrides
	f := cmd.Flags()
	if f.Changed("api-key") {
		ov.APIKey = &flagAPIKey
	}
	if f.Changed("model") {
		ov.Model = &flagModel
	}
	if f.Changed("max-tokens") {
		ov.MaxTokens = &flagMaxTokens
	}
	if f.Changed("temperature") {
		ov.Temperature = &flagTemperature
	}
	if f.Changed("base-url") {
		ov.BaseURL = &flagBaseURL
	}
	if f.Changed("provider") {
		ov.Provider = &flagProvider
	}
	if f.Changed("base-branch") {
		ov.BaseBranch = &flagBaseBranch
	}
	if f.Changed("max-chars") {
		ov.MaxDiffChars = &flagMaxChars
	}
	if f.Changed("alg") {
		ov.Algorithm = &flagAlg
	}
	return ov
}

// resolveConfig loads .env, the config file, and flag overrides into the
// effective configuration for this invocation.
func resolveConfig(cmd *cobra.Command, git *gitx.Runner) *config.Resolved {
	config.LoadDotenv()
	file := config.Load()
	return config.Resolve(overridesFromFlags(cmd), file, func() string {
		return git.DefaultBranch(cmd.Context())
	})
}

// newClient builds the provider client for the resolved config.
func newClient(cfg *config.Resolved) (provider.Client, error) {
	return provider.New(cfg, appLogger())
}

// shapeDiff runs the configured shaping algorithm over a raw diff. Stats go
// to stderr so stdout stays clean for piping; silent suppresses them.
func shapeDiff(raw string, cfg *config.Resolved, silent bool) string {
	alg := shaper.AlgorithmFromNum(cfg.Algorithm)
	shaped, stats := shaper.Shape(raw, "", cfg.MaxDiffChars, alg, false)
	if !silent {
		fmt.Fprintln(os.Stderr, stats.Display())
	}
	return shaped
}

// rangeDisplay renders a human-readable description of a commit selection.
func rangeDisplay(from, to, since, until, fallback string) string {
	switch {
	case from != "" && to != "":
		return from + ".." + to
	case from != "":
		return from + "..HEAD"
	case to != "":
		return ".." + to
	case since != "" && until != "":
		return "--since " + since + " --until " + until
	case since != "":
		return "--since " + since
	case until != "":
		return "--until " + until
	default:
		return fallback
	}
}
