package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/prompts"
)

var (
	prFrom   string
	prTo     string
	prStaged bool
)

// prCmd generates a pull request description from the branch's commits and
// diff against the base branch.
var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Generate a pull request description",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		branch := prTo
		if branch == "" {
			branch = git.CurrentBranch(ctx)
		}
		targetBase := prFrom
		if targetBase == "" {
			targetBase = cfg.BaseBranch
		}
		fmt.Printf("PR: %s -> %s\n\n", branch, targetBase)

		var diff, stats, commitsText string
		if prStaged {
			raw, err := git.Diff(ctx, "", true, maxInt)
			if err != nil {
				return err
			}
			diff = shapeDiff(raw, cfg, false)
			stats, err = git.DiffStat(ctx, "", true)
			if err != nil {
				return err
			}
			commitsText = "(staged changes)"
		} else {
			diffTarget := git.BuildDiffTarget(ctx, prFrom, prTo, cfg.BaseBranch)
			rng := git.BuildRange(ctx, prFrom, prTo, cfg.BaseBranch)

			commits, err := git.CommitLog(ctx, gitx.LogOptions{Limit: 20, Range: rng})
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(commits))
			for _, c := range commits {
				lines = append(lines, "- "+c.Message)
			}
			commitsText = strings.Join(lines, "\n")
			if commitsText == "" {
				commitsText = "(no commits)"
			}

			raw, err := git.Diff(ctx, diffTarget, false, maxInt)
			if err != nil {
				return err
			}
			diff = shapeDiff(raw, cfg, false)
			stats, err = git.DiffStat(ctx, diffTarget, false)
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
		out, err := client.Chat(ctx, prompts.PRSystem, prompts.Render(prompts.PRUser, map[string]string{
			"branch":  branch,
			"commits": commitsText,
			"stats":   stats,
			"diff":    diff,
		}))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	prCmd.Flags().StringVar(&prFrom, "from", "", "base ref (defaults to the base branch)")
	prCmd.Flags().StringVar(&prTo, "to", "", "head ref (defaults to the current branch)")
	prCmd.Flags().BoolVar(&prStaged, "staged", false, "describe staged changes instead of a branch")

	rootCmd.AddCommand(prCmd)
}
