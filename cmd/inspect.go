package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/RealityNet/teleparser/internal"
)

var (
	// Styles
	inspectTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	inspectCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <cache4.db>",
	Short: "Show a per-table overview of the cache database",
	Long: `Print one line per supported table: row count, key column and the blob
columns that a parse run would decode. No blob is decoded; this is a quick
read-only survey of what the database holds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := internal.OpenDatabase(args[0])
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Println(inspectTitleStyle.Render("Tables in " + args[0]))

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Table", "Rows", "Key", "Blob columns"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)

		var total int64
		for _, spec := range internal.TableSpecs {
			count, err := internal.TableRowCount(db, spec.Name)
			if err != nil {
				// Older caches miss some tables (e.g. user_settings).
				internal.LogWarn("table %s not readable: %v", spec.Name, err)
				table.Append([]string{spec.Name, "-", spec.Key, blobColumnList(spec)})
				continue
			}
			total += count
			table.Append([]string{spec.Name, strconv.FormatInt(count, 10), spec.Key, blobColumnList(spec)})
		}
		table.Render()

		fmt.Println(inspectCountStyle.Render(fmt.Sprintf("%d row(s) total", total)))
		return nil
	},
}

func blobColumnList(spec internal.TableSpec) string {
	if len(spec.Blobs) == 0 {
		return "-"
	}
	names := make([]string, 0, len(spec.Blobs))
	for _, bc := range spec.Blobs {
		name := bc.Name
		if bc.Optional {
			name += " (optional)"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
