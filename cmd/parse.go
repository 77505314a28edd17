package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/RealityNet/teleparser/internal"
	"github.com/spf13/cobra"
)

var keepGoing bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <cache4.db> <outdir>",
	Short: "Extract all tables and build the timeline",
	Long: `Parse a cache4.db file: decode the blob columns of every supported
table and write one text artifact per table plus timeline.csv into the
output directory (which must already exist).

By default any decode failure aborts the run: an incomplete extraction is
reported rather than silently published. With --keep-going (or -v and
above) failing rows are logged with full context and skipped, which is
useful when surveying a cache written by an unsupported app build.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, outdir := args[0], args[1]

		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("input file %s is not accessible: %w", input, err)
		}

		cfg := internal.RunConfig{
			InputPath:  input,
			OutputDir:  outdir,
			AppVersion: appVersion,
			Strict:     !keepGoing && verbosity == 0,
		}
		result, err := internal.Run(context.Background(), cfg)
		if err != nil {
			return err
		}

		skipped := 0
		for _, r := range result.Results {
			skipped += r.Skipped
		}
		if skipped > 0 {
			internal.LogWarn("%d row(s) skipped; extend the schema tables or retry with the right --app-version", skipped)
		}
		fmt.Printf("Parsed %d table(s), %d timeline entries, output in %s\n",
			len(result.Results), len(result.Timeline), outdir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Log decode failures and continue with the next row")
}
