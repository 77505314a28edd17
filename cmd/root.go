package cmd

import (
	"fmt"
	"os"

	"github.com/RealityNet/teleparser/internal"
	"github.com/RealityNet/teleparser/internal/tl"
	"github.com/spf13/cobra"
)

var (
	verbosity  int
	appVersion string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teleparser",
	Short: "Extract and decode Telegram cache4.db evidence",
	Long: `A forensic CLI tool for Telegram's Android cache database (cache4.db).

teleparser decodes the proprietary serialized blobs stored inside the cache
tables and writes one human-readable artifact per table plus a cross-table
chronological timeline. Decoding is strict on purpose: a blob whose shape is
not described by the selected app version's schema stops the run instead of
producing plausible-looking output.

Quick Start:
  teleparser parse cache4.db ./out         # Extract all tables + timeline
  teleparser blob message.bin              # Decode a single raw blob
  teleparser inspect cache4.db             # Per-table row/blob overview

Supported app versions: ` + tl.Version550 + `, ` + tl.Version562 + `.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbosity(verbosity)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Verbosity level, -v to -vvv")
	rootCmd.PersistentFlags().StringVar(&appVersion, "app-version", tl.Version562, "Telegram app version the cache was written by")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
