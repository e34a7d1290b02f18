package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
	"github.com/gitshape-ai/gitshape/pkg/prompts"
)

var (
	commitPush    bool
	commitAll     bool
	commitNoTag   bool
	commitWriteTo string
	commitSilent  bool
)

// commitCmd generates a commit message from the pending changes and commits
// interactively unless --write-to or --silent is given.
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Generate a commit message and commit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		git := gitx.NewRunner("")
		cfg := resolveConfig(cmd, git)

		staged, _ := git.Run(ctx, "diff", "--cached")
		unstaged, _ := git.Run(ctx, "diff")

		var raw strings.Builder
		if strings.TrimSpace(staged) != "" {
			raw.WriteString(staged)
		}
		if strings.TrimSpace(unstaged) != "" {
			if raw.Len() > 0 {
				raw.WriteByte('\n')
			}
			raw.WriteString(unstaged)
		}
		if strings.TrimSpace(raw.String()) == "" {
			if !commitSilent {
				fmt.Println("Nothing to commit.")
			}
			return nil
		}

		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		diff := shapeDiff(raw.String(), cfg, commitSilent)
		userPrompt := prompts.Render(prompts.CommitUser, map[string]string{"diff": diff})

		// Hook mode: write the message and stop.
		if commitWriteTo != "" {
			msg, err := client.Chat(ctx, prompts.CommitSystem, userPrompt)
			if err != nil {
				return err
			}
			return os.WriteFile(commitWriteTo, []byte(strings.TrimSpace(msg)+"\n"), 0o644)
		}

		reader := bufio.NewReader(os.Stdin)
		var message string
		for {
			msg, err := client.Chat(ctx, prompts.CommitSystem, userPrompt)
			if err != nil {
				return err
			}
			if commitSilent {
				message = msg
				break
			}

			fmt.Printf("\n%s\n\n", msg)
			fmt.Println(strings.Repeat("=", 50))
			fmt.Println("  [Enter] Accept | [g] Regenerate | [e] Edit | [other] Cancel")
			fmt.Println(strings.Repeat("=", 50))
			fmt.Print("> ")

			input, _ := reader.ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(input)) {
			case "":
				message = msg
			case "g":
				fmt.Println("Regenerating...")
				continue
			case "e":
				fmt.Print("New message: ")
				edited, _ := reader.ReadString('\n')
				if strings.TrimSpace(edited) == "" {
					message = msg
				} else {
					message = strings.TrimSpace(edited)
				}
			default:
				fmt.Println("Canceled.")
				return nil
			}
			break
		}

		if commitAll {
			if !commitSilent {
				fmt.Println("Staging all...")
			}
			if _, err := git.Run(ctx, "add", "-A"); err != nil {
				return err
			}
		}

		if !commitSilent {
			fmt.Println("Committing...")
		}
		if !commitNoTag {
			message = fmt.Sprintf("%s [AI:%s]", message, client.Model())
		}

		commitArgs := []string{"commit", "-m", message}
		if commitAll {
			commitArgs = []string{"commit", "-am", message}
		}
		out, err := git.Run(ctx, commitArgs...)
		if !commitSilent {
			fmt.Print(out)
		}
		if err != nil {
			if !commitSilent {
				fmt.Println("Commit failed.")
			}
			return err
		}

		if commitPush {
			if !commitSilent {
				fmt.Println("Pushing...")
			}
			out, err := git.Run(ctx, "push")
			if !commitSilent {
				fmt.Print(out)
			}
			return err
		}
		return nil
	},
}

// stagedCmd prints a commit message for the staged changes.
var stagedCmd = &cobra.Command{
	Use:   "staged",
	Short: "Generate a commit message for staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMessageFor(cmd, true)
	},
}

// unstagedCmd prints a commit message for the unstaged changes.
var unstagedCmd = &cobra.Command{
	Use:   "unstaged",
	Short: "Generate a commit message for unstaged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMessageFor(cmd, false)
	},
}

func printMessageFor(cmd *cobra.Command, staged bool) error {
	ctx := cmd.Context()
	git := gitx.NewRunner("")
	cfg := resolveConfig(cmd, git)

	raw, err := git.Diff(ctx, "", staged, maxInt)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		if staged {
			return fmt.Errorf("no staged changes")
		}
		return fmt.Errorf("no unstaged changes")
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	diff := shapeDiff(raw, cfg, false)
	msg, err := client.Chat(ctx, prompts.CommitSystem,
		prompts.Render(prompts.CommitUser, map[string]string{"diff": diff}))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// maxInt disables truncation at the git layer; the shaper owns the budget.
const maxInt = int(^uint(0) >> 1)

func init() {
	commitCmd.Flags().BoolVarP(&commitPush, "push", "p", false, "push after committing")
	commitCmd.Flags().BoolVarP(&commitAll, "all", "a", false, "stage all changes before committing")
	commitCmd.Flags().BoolVar(&commitNoTag, "no-tag", false, "omit the [AI:model] suffix")
	commitCmd.Flags().StringVar(&commitWriteTo, "write-to", "", "write the message to a file instead of committing")
	commitCmd.Flags().BoolVar(&commitSilent, "silent", false, "suppress all output")

	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(stagedCmd)
	rootCmd.AddCommand(unstagedCmd)
}
