package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/prompts"
)

var (
	historyFrom  string
	historyTo    string
	historySince string
	historyUntil string
	historyLimit int
	historyDelay int
)

// historyCmd suggests improved commit messages for past commits. It only
// prints suggestions; history is never rewritten.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Suggest better messages for past commits",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		limit := historyLimit
		if limit == 0 && historyFrom == "" {
			limit = 50
		}

		end := historyTo
		if end == "" {
			end = "HEAD"
		}
		var rng string
		if historyFrom != "" {
			rng = historyFrom + ".." + end
		}

		display := rangeDisplay(historyFrom, historyTo, historySince, historyUntil, "recent")
		fmt.Printf("Fetching commits (%s)...\n", display)

		commits, err := git.CommitLog(ctx, gitx.LogOptions{
			Limit: limit,
			Since: historySince,
			Until: historyUntil,
			Range: rng,
		})
		if err != nil {
			return err
		}
		if len(commits) == 0 {
			fmt.Println("No commits found.")
			return nil
		}
		fmt.Printf("Processing %d commits...\n\n", len(commits))

		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		for i, c := range commits {
			fmt.Printf("[%d/%d] %s | %s | %-15s | %s\n",
				i+1, len(commits), clip(c.Hash, 8), clip(c.Date, 10), clip(c.Author, 15), clip(c.Message, 40))

			raw, err := git.CommitDiff(ctx, c.Hash, maxInt)
			if err != nil || strings.TrimSpace(raw) == "" {
				fmt.Println("  - No diff")
				continue
			}

			diff := shapeDiff(raw, cfg, true)
			msg, err := client.Chat(ctx, prompts.HistorySystem, prompts.Render(prompts.HistoryUser, map[string]string{
				"original_message": c.Message,
				"diff":             diff,
			}))
			if err != nil {
				fmt.Printf("  x %v\n", err)
				continue
			}

			for j, l := range strings.Split(msg, "\n") {
				if strings.TrimSpace(l) == "" {
					continue
				}
				if j == 0 {
					fmt.Println("  - " + l)
				} else {
					fmt.Println("    " + l)
				}
			}

			if i < len(commits)-1 && historyDelay > 0 {
				time.Sleep(time.Duration(historyDelay) * time.Millisecond)
			}
		}
		return nil
	},
}

// clip bounds s to n bytes, backing up to a rune boundary so multi-byte
// author names are never split mid-character.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func init() {
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "start ref")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "end ref (defaults to HEAD)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "include commits after this date")
	historyCmd.Flags().StringVar(&historyUntil, "until", "", "include commits before this date")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "max commits to process")
	historyCmd.Flags().IntVar(&historyDelay, "delay", 500, "delay between requests in milliseconds")

	rootCmd.AddCommand(historyCmd)
}
