package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/gitx"
)

// hookScript is the prepare-commit-msg hook. It runs on Linux, macOS, and
// Windows via Git Bash, and steps aside whenever the user supplies a
// message themselves.
const hookScript = `#!/bin/sh
# gitshape-hook: Auto-generated by gitshape

# Skip if gitshape is not in PATH
if ! command -v gitshape >/dev/null 2>&1; then
    exit 0
fi

COMMIT_MSG_FILE=$1
COMMIT_SOURCE=$2

# Skip if the user provided a message via -m, -F, or if it's a merge/squash
if [ -n "$COMMIT_SOURCE" ]; then
    exit 0
fi

# Run gitshape to generate the message into the git commit file
gitshape commit --write-to "$COMMIT_MSG_FILE" --silent
`

// hookCmd manages the prepare-commit-msg hook.
var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the prepare-commit-msg hook",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the prepare-commit-msg hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := hookPath(cmd)
		if err != nil {
			return err
		}

		if existing, err := os.ReadFile(path); err == nil {
			if strings.Contains(string(existing), "gitshape-hook") {
				fmt.Println("gitshape hook is already installed.")
				return nil
			}
			return fmt.Errorf("a prepare-commit-msg hook already exists at %s; back it up or delete it first", path)
		}

		if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
			return err
		}
		fmt.Printf("Hook installed at %s\n", path)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the prepare-commit-msg hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := hookPath(cmd)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Println("No hook found to uninstall.")
			return nil
		}
		if !strings.Contains(string(content), "gitshape-hook") {
			fmt.Println("The existing hook was not created by gitshape. Manual removal required.")
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		fmt.Println("Hook uninstalled successfully.")
		return nil
	},
}

func hookPath(cmd *cobra.Command) (string, error) {
	git := gitx.NewRunner("")
	gitDir, err := git.GitDir(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("could not locate .git directory; are you in a git repo?")
	}
	return filepath.Join(gitDir, "hooks", "prepare-commit-msg"), nil
}

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	rootCmd.AddCommand(hookCmd)
}
