package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/prompts"
)

var (
	bumpFrom    string
	bumpTo      string
	bumpCurrent string
)

// bumpCmd recommends a semantic version bump from the changes since the
// last tag.
var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Recommend a semantic version bump",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		current := bumpCurrent
		if current == "" {
			current = git.CurrentVersion(ctx)
		}
		fmt.Printf("Version analysis (current: %s)...\n\n", current)

		target := git.BuildDiffTarget(ctx, bumpFrom, bumpTo, cfg.BaseBranch)
		raw, err := git.Diff(ctx, target, false, maxInt)
		if err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			fmt.Println("No changes detected.")
			return nil
		}

		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		diff := shapeDiff(raw, cfg, false)
		out, err := client.Chat(ctx, prompts.BumpSystem, prompts.Render(prompts.BumpUser, map[string]string{
			"version": current,
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
	bumpCmd.Flags().StringVar(&bumpFrom, "from", "", "base ref (defaults to the base branch or latest tag)")
	bumpCmd.Flags().StringVar(&bumpTo, "to", "", "head ref (defaults to HEAD)")
	bumpCmd.Flags().StringVar(&bumpCurrent, "current", "", "current version (defaults to the latest tag)")

	rootCmd.AddCommand(bumpCmd)
}
