package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitshape-ai/gitshape/pkg/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Printf("gitshape version: %s\n", info["version"])
		fmt.Printf("  build date: %s\n", info["buildDate"])
		fmt.Printf("  git commit: %s\n", info["gitCommit"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
