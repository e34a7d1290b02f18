package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/prompts"
)

var (
	changelogFrom  string
	changelogTo    string
	changelogSince string
	changelogUntil string
	changelogLimit int
)

// changelogCmd generates release notes from a commit range.
var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate release notes from a commit range",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		limit := changelogLimit
		if limit == 0 && changelogFrom == "" {
			limit = 50
		}

		end := changelogTo
		if end == "" {
			end = "HEAD"
		}
		var rng string
		if changelogFrom != "" {
			rng = changelogFrom + ".." + end
		}

		display := rangeDisplay(changelogFrom, changelogTo, changelogSince, changelogUntil, "recent (last 50 commits)")
		fmt.Printf("Changelog for %s...\n\n", display)

		commits, err := git.CommitLog(ctx, gitx.LogOptions{
			Limit: limit,
			Since: changelogSince,
			Until: changelogUntil,
			Range: rng,
		})
		if err != nil {
			return err
		}
		if len(commits) == 0 {
			fmt.Println("No commits found.")
			return nil
		}
		fmt.Printf("Found %d commits.\n\n", len(commits))

		lines := make([]string, 0, len(commits))
		for _, c := range commits {
			h := c.Hash
			if len(h) > 8 {
				h = h[:8]
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", h, c.Message))
		}

		// Combined diff for the range; the oldest commit's parent serves as
		// the base when no explicit from ref was given.
		var diff string
		base := changelogFrom
		if base == "" {
			base = commits[len(commits)-1].Hash + "^"
		}
		if raw, err := git.Diff(ctx, base+".."+end, false, maxInt); err == nil && strings.TrimSpace(raw) != "" {
			diff = shapeDiff(raw, cfg, false)
		}

		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		out, err := client.Chat(ctx, prompts.ChangelogSystem, prompts.Render(prompts.ChangelogUser, map[string]string{
			"range":   display,
			"count":   strconv.Itoa(len(commits)),
			"commits": strings.Join(lines, "\n"),
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
	changelogCmd.Flags().StringVar(&changelogFrom, "from", "", "start ref")
	changelogCmd.Flags().StringVar(&changelogTo, "to", "", "end ref (defaults to HEAD)")
	changelogCmd.Flags().StringVar(&changelogSince, "since", "", "include commits after this date")
	changelogCmd.Flags().StringVar(&changelogUntil, "until", "", "include commits before this date")
	changelogCmd.Flags().IntVarP(&changelogLimit, "limit", "n", 0, "max commits to include")

	rootCmd.AddCommand(changelogCmd)
}
