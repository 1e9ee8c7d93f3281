package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "holdsync",
	Short: "A bot that reconciles sync-hold labels on GitHub issues",
	Long: `Holdsync keeps the sync-hold label on a repository's open issues in
line with the published distro sync status. It fetches a YAML document
mapping each distro to its in-sync-hold state, then adds or removes the
hold label on every open issue tagged with a distro label.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
