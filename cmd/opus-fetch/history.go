package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/opus-fetch/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent fetch attempts from a ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := stringSetting(cmd, "ledger")
		if path == "" {
			return fmt.Errorf("provide --ledger or set ledger in the config file")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := ledger.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		attempts, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, a := range attempts {
			status := "ok"
			if !a.OK() {
				status = "failed: " + a.Error
			}
			fmt.Fprintf(w, "%s  %-5s %s -> %s (%v) %s\n",
				a.Started.Local().Format(time.DateTime), a.Backend, a.URL, a.DestPath,
				a.Duration.Round(time.Millisecond), status)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("ledger", "", "SQLite ledger file written by fetch --ledger")
	historyCmd.Flags().Int("limit", 20, "maximum number of attempts to show")

	rootCmd.AddCommand(historyCmd)
}
