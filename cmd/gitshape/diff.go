package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/shaper"
	"github.com/gitshape-ai/gitshape/pkg/tokens"
)

var (
	diffStaged    bool
	diffStats     bool
	diffStatsOnly bool
	diffCompare   bool
)

// diffCmd shows the shaped diff without calling a provider, for inspecting
// exactly what a model would receive.
var diffCmd = &cobra.Command{
	Use:   "diff [target]",
	Short: "Show the shaped diff that would be sent to the model",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		target := ""
		if len(args) > 0 {
			target = args[0]
		}

		raw, err := git.Diff(ctx, target, diffStaged, maxInt)
		if err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			fmt.Println("No changes to show.")
			return nil
		}

		algGiven := cmd.Flags().Changed("alg")

		var stat string
		if diffStats || algGiven || diffCompare {
			stat, err = git.DiffStat(ctx, target, diffStaged)
			if err != nil {
				return err
			}
		}

		if diffCompare {
			fmt.Println("================================================================")
			fmt.Println("                     ALGORITHM COMPARISON                      ")
			fmt.Println("================================================================")
			fmt.Println()

			for n := 1; n <= 4; n++ {
				out, stats := shaper.Shape(raw, stat, cfg.MaxDiffChars, shaper.AlgorithmFromNum(n), true)
				fmt.Println(stats.Display())
				if !diffStatsOnly {
					fmt.Println(out)
				}
			}

			fmt.Println("Algorithms:")
			fmt.Println("  --alg 1  Full: complete git diff (ignores --max-chars)")
			fmt.Println("  --alg 2  Files: selective files, ranked by priority (default)")
			fmt.Println("  --alg 3  Hunks: selective hunks, ranked by importance")
			fmt.Println("  --alg 4  Semantic: JSON IR with scored hunks")
			return nil
		}

		if algGiven {
			out, stats := shaper.Shape(raw, stat, cfg.MaxDiffChars, shaper.AlgorithmFromNum(cfg.Algorithm), false)
			fmt.Printf("%s\n", stats.Display())
			if counter := tokens.NewCounter(""); counter.Exact() {
				fmt.Printf("exact tokens (cl100k_base): %d\n", counter.Count(out))
			}
			fmt.Println()
			if !diffStatsOnly {
				fmt.Println(out)
			}
			return nil
		}

		// No --alg: raw diff, optionally with stats, hard-cut at the budget.
		if stat != "" {
			fmt.Printf("=== diff --stat ===\n%s\n\n", stat)
		}
		if !diffStatsOnly {
			if len(raw) > cfg.MaxDiffChars {
				fmt.Println(gitx.TruncateDiff(raw, cfg.MaxDiffChars))
				fmt.Printf("\n[... truncated at %d chars ...]\n", cfg.MaxDiffChars)
			} else {
				fmt.Println(raw)
			}
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffStaged, "staged", false, "diff the index instead of the working tree")
	diffCmd.Flags().BoolVar(&diffStats, "stats", false, "include git diff --stat output")
	diffCmd.Flags().BoolVar(&diffStatsOnly, "stats-only", false, "show only the stats box")
	diffCmd.Flags().BoolVar(&diffCompare, "compare", false, "run all four algorithms side by side")

	rootCmd.AddCommand(diffCmd)
}
