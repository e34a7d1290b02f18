package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/prompts"
)

var (
	explainFrom   string
	explainTo     string
	explainSince  string
	explainUntil  string
	explainStaged bool
)

// explainCmd summarizes changes for non-technical readers.
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain changes in plain language",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		display := rangeDisplay(explainFrom, explainTo, explainSince, explainUntil, "working tree vs HEAD")

		var diff, stats string
		if explainStaged {
			fmt.Println("Explaining staged changes...")
			fmt.Println()
			raw, err := git.Diff(ctx, "", true, maxInt)
			if err != nil {
				return err
			}
			diff = shapeDiff(raw, cfg, false)
			stats, err = git.DiffStat(ctx, "", true)
			if err != nil {
				return err
			}
		} else {
			effectiveFrom := explainFrom
			if effectiveFrom == "" && (explainSince != "" || explainUntil != "") {
				commits, err := git.CommitLog(ctx, gitx.LogOptions{Since: explainSince, Until: explainUntil})
				if err != nil {
					return err
				}
				if len(commits) > 0 {
					effectiveFrom = commits[len(commits)-1].Hash
				}
				fmt.Printf("Explaining changes for %s (%d commits)...\n\n", display, len(commits))
			} else {
				fmt.Printf("Explaining changes for %s...\n\n", display)
			}

			target := git.BuildDiffTarget(ctx, effectiveFrom, explainTo, cfg.BaseBranch)
			raw, err := git.Diff(ctx, target, false, maxInt)
			if err != nil {
				return err
			}
			diff = shapeDiff(raw, cfg, false)
			stats, err = git.DiffStat(ctx, target, false)
			if err != nil {
				return err
			}
		}

		if strings.TrimSpace(diff) == "" {
			fmt.Println("No changes detected.")
			return nil
		}

		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		out, err := client.Chat(ctx, prompts.ExplainSystem, prompts.Render(prompts.ExplainUser, map[string]string{
			"stats": stats,
			"diff":  diff,
		}))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	explainCmd.Flags().StringVar(&explainFrom, "from", "", "start ref")
	explainCmd.Flags().StringVar(&explainTo, "to", "", "end ref (defaults to HEAD)")
	explainCmd.Flags().StringVar(&explainSince, "since", "", "include commits after this date")
	explainCmd.Flags().StringVar(&explainUntil, "until", "", "include commits before this date")
	explainCmd.Flags().BoolVar(&explainStaged, "staged", false, "explain staged changes")

	rootCmd.AddCommand(explainCmd)
}
