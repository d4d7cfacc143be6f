package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/opus-fetch/internal/opus"
)

var planCmd = &cobra.Command{
	Use:   "plan [urls...]",
	Short: "Show where each archive would be stored",
	Long: `Plan prints "<url> -> <destination>" for every archive without creating
directories or downloading anything.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("home", "", "directory the OPUS tree is rooted in (default: user home)")
	addSourcesFlag(planCmd)

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	urls, err := resolveURLs(cmd, args)
	if err != nil {
		return err
	}
	home, err := resolveHome(cmd)
	if err != nil {
		return err
	}
	for _, task := range opus.Plan(urls, home) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", task.SourceURL, task.DestPath)
	}
	return nil
}
