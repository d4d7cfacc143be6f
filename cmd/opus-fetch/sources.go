package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/opus-fetch/internal/sources"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources [urls...]",
	Short: "Print the archive URLs a fetch would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, err := resolveURLs(cmd, args)
		if err != nil {
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return nil
	},
}

func init() {
	addSourcesFlag(sourcesCmd)
	rootCmd.AddCommand(sourcesCmd)
}

func addSourcesFlag(cmd *cobra.Command) {
	cmd.Flags().String("sources", "", "YAML file with a urls: list (default: built-in English-Thai list)")
}

// resolveURLs picks the URL list: positional arguments, then --sources,
// then the "urls" config key, then the built-in default.
func resolveURLs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return sources.Clean(args), nil
	}
	if path, _ := cmd.Flags().GetString("sources"); path != "" {
		return sources.Load(path)
	}
	if viper.IsSet("urls") {
		return sources.Clean(viper.GetStringSlice("urls")), nil
	}
	return sources.Default(), nil
}

// resolveHome returns the --home flag, the "home" config key, or the
// invoking user's home directory, in that order.
func resolveHome(cmd *cobra.Command) (string, error) {
	if home, _ := cmd.Flags().GetString("home"); home != "" {
		return home, nil
	}
	if home := viper.GetString("home"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return home, nil
}
