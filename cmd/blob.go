package cmd

import (
	"fmt"
	"os"

	"github.com/RealityNet/teleparser/internal/export"
	"github.com/RealityNet/teleparser/internal/tl"
	"github.com/spf13/cobra"
)

var blobFormat string

// blobCmd represents the blob command
var blobCmd = &cobra.Command{
	Use:   "blob <file>",
	Short: "Decode a single raw blob file",
	Long: `Decode one blob (a raw byte dump of a single column value, e.g. carved
from messages.data) and print the decoded tree. Useful for triaging a
decode failure or extending the schema tables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read blob file: %w", err)
		}

		dec, err := tl.NewDecoder(tl.Default(), appVersion)
		if err != nil {
			return err
		}
		tree, err := dec.DecodeBlob(buf)
		if err != nil {
			return fmt.Errorf("decode under version %s failed: %w", appVersion, err)
		}

		exporter, err := export.NewTreeExporter(blobFormat)
		if err != nil {
			return err
		}
		return exporter.Export(tree, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(blobCmd)
	blobCmd.Flags().StringVarP(&blobFormat, "format", "f", "text", "Output format (text, json, yaml)")
}
