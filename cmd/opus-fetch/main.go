// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the opus-fetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the opus-fetch CLI.
var rootCmd = &cobra.Command{
	Use:   "opus-fetch",
	Short: "Download OPUS parallel-text corpus archives",
	Long: `opus-fetch downloads OPUS corpus archives into a local tree derived from
each archive URL:

  <home>/OPUS/<corpus><version>/<format>/<filename>

The URL list defaults to the built-in English-Thai corpora and can be
replaced with positional arguments, a --sources file, or the "urls" key of
the config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./opus-fetch.yaml or ~/.config/opus-fetch/opus-fetch.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("opus-fetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "opus-fetch"))
		}
	}

	viper.SetEnvPrefix("OPUS_FETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
