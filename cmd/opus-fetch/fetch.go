package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/opus-fetch/internal/fetch"
	"github.com/pdiddy/opus-fetch/internal/ledger"
	"github.com/pdiddy/opus-fetch/pkg/types"
)

const defaultUserAgent = "opus-fetch/0.1"

var fetchCmd = &cobra.Command{
	Use:   "fetch [urls...]",
	Short: "Download corpus archives into <home>/OPUS",
	Long: `Fetch processes each archive URL in order: it creates
<home>/OPUS/<corpus><version>/<format> and downloads the archive into it.
Existing files are overwritten and duplicate URLs are downloaded again.

A directory that cannot be created stops the run. Download failures do not:
they are ignored unless --strict is set, in which case every URL is still
attempted and the command fails afterwards.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("home", "", "directory the OPUS tree is rooted in (default: user home)")
	fetchCmd.Flags().String("downloader", "wget", "download backend: wget, curl, or http")
	fetchCmd.Flags().Bool("strict", false, "fail after the run if any download failed")
	fetchCmd.Flags().Duration("timeout", 0, "per-request timeout for the http backend (default: none)")
	fetchCmd.Flags().String("ledger", "", "SQLite file recording each fetch attempt (default: disabled)")
	fetchCmd.Flags().Bool("shell-mkdir", false, "create directories with mkdir -p instead of in-process")
	addSourcesFlag(fetchCmd)

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	urls, err := resolveURLs(cmd, args)
	if err != nil {
		return err
	}
	home, err := resolveHome(cmd)
	if err != nil {
		return err
	}

	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   durationSetting(cmd, "timeout"),
			UserAgent: userAgent,
		},
		Home:       home,
		Backend:    types.DownloaderBackend(stringSetting(cmd, "downloader")),
		Strict:     boolSetting(cmd, "strict"),
		LedgerPath: stringSetting(cmd, "ledger"),
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fs := afero.NewOsFs()

	d, err := fetch.NewDownloader(cfg, fs, out, errOut)
	if err != nil {
		return err
	}

	if cfg.LedgerPath != "" {
		store, err := ledger.Open(cfg.LedgerPath)
		if err != nil {
			return err
		}
		defer store.Close()
		d = ledger.Recording(d, store, string(cfg.Backend), errOut)
	}

	var dirs fetch.DirectoryCreator = fetch.NewFSDirectoryCreator(fs)
	if boolSetting(cmd, "shell-mkdir") {
		dirs = fetch.NewMkdir(errOut)
	}

	f := fetch.New(d, dirs, out)
	f.Strict = cfg.Strict
	if err := f.Run(cmd.Context(), urls, cfg.Home); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	return nil
}

// The setting helpers prefer an explicitly set flag, then the config key of
// the same name (dashes become underscores), then the flag default.

func stringSetting(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(configKey(name)) {
		return viper.GetString(configKey(name))
	}
	return v
}

func boolSetting(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(configKey(name)) {
		return viper.GetBool(configKey(name))
	}
	return v
}

func durationSetting(cmd *cobra.Command, name string) time.Duration {
	v, _ := cmd.Flags().GetDuration(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(configKey(name)) {
		return viper.GetDuration(configKey(name))
	}
	return v
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}
