package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/RealityNet/teleparser/internal/export"
	"github.com/RealityNet/teleparser/internal/tl"
)

// RunConfig configures one extraction run.
type RunConfig struct {
	InputPath  string
	OutputDir  string
	AppVersion string
	// Strict stops the whole run at the first decode failure. Survey mode
	// logs failures with full context and keeps going.
	Strict bool
}

// RunResult holds everything a run produced, keyed by table name.
type RunResult struct {
	Results  map[string]*TableResult
	Timeline []TimelineEntry
}

// Run extracts all nine tables, writes one text artifact per table plus
// timeline.csv into the output directory, and returns the in-memory
// results. Tables are decoded concurrently; per-row decoding is pure and
// shares only the read-only schema registry.
func Run(ctx context.Context, cfg RunConfig) (*RunResult, error) {
	info, err := os.Stat(cfg.OutputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("output directory %s does not exist", cfg.OutputDir)
	}

	db, err := OpenDatabase(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	dec, err := tl.NewDecoder(tl.Default(), cfg.AppVersion)
	if err != nil {
		return nil, err
	}

	results := make([]*TableResult, len(TableSpecs))
	g, _ := errgroup.WithContext(ctx)
	for i := range TableSpecs {
		g.Go(func() error {
			r, err := ExtractTable(db, TableSpecs[i], dec, cfg.Strict)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]*TableResult, len(results))
	for _, r := range results {
		byName[r.Table] = r
	}
	users := UserIndex(byName["users"])

	for _, r := range results {
		path := filepath.Join(cfg.OutputDir, "table_"+r.Table+".txt")
		if err := writeArtifact(path, func(f *os.File) error {
			return export.WriteTableBlocks(f, tableView(r, users))
		}); err != nil {
			return nil, err
		}
		LogInfo("wrote %s (%d rows, %d skipped)", path, len(r.Rows), r.Skipped)
	}

	timeline := BuildTimeline(byName)
	timelinePath := filepath.Join(cfg.OutputDir, "timeline.csv")
	if err := writeArtifact(timelinePath, func(f *os.File) error {
		return export.WriteTimelineCSV(f, timelineView(timeline))
	}); err != nil {
		return nil, err
	}
	LogInfo("wrote %s (%d entries)", timelinePath, len(timeline))

	return &RunResult{Results: byName, Timeline: timeline}, nil
}

func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}
	if err := write(f); err != nil {
		f.Close()
		return &OutputError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}

// tableView adapts a TableResult to the renderer's input shape.
func tableView(r *TableResult, users map[string]string) export.Table {
	t := export.Table{Name: r.Table}
	spec := TableSpecFor(r.Table)
	for _, row := range r.Rows {
		block := export.Block{KeyName: spec.Key, Key: row.Key}
		for _, col := range row.Plain {
			value := col.Value
			if isDateColumn(r.Table, col.Name) {
				if epoch, ok := row.PlainInt(col.Name); ok && epoch > 0 {
					value = export.FormatEpoch(epoch)
				}
			}
			block.Plain = append(block.Plain, export.NamedValue{Name: col.Name, Value: value})
		}
		// Tables keyed or annotated by a user id get the identity line.
		if users != nil && r.Table != "users" && r.Table != "chats" && r.Table != "dialogs" {
			if ref := userRefKey(row); ref != "" {
				if who, ok := users[ref]; ok {
					block.UserRef = "From [users] -> " + who
				} else {
					block.UserRef = "User uid missing in [users]"
				}
			}
		}
		if r.Table == "users" {
			block.UserRef = UserIdentity(row)
		}
		for _, bc := range spec.Blobs {
			if tree := row.Trees[bc.Name]; tree != nil {
				block.Trees = append(block.Trees, export.NamedTree{Name: bc.Name, Tree: tree})
			}
		}
		t.Blocks = append(t.Blocks, block)
	}
	return t
}

// isDateColumn marks the plain columns carrying UNIX timestamps, which the
// per-table blocks annotate with the human-readable time.
func isDateColumn(table, column string) bool {
	switch column {
	case "date", "key_date":
		return true
	case "status":
		return table == "users"
	}
	return false
}

// userRefKey picks the user id a row should be cross-referenced by.
func userRefKey(row *RowRecord) string {
	switch row.Table {
	case "contacts", "user_settings":
		return row.Key
	case "media_v2", "messages":
		if uid, ok := row.PlainInt("uid"); ok && uid > 0 {
			return fmt.Sprintf("%d", uid)
		}
	}
	return ""
}

func timelineView(entries []TimelineEntry) []export.TimelineRow {
	rows := make([]export.TimelineRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, export.TimelineRow{
			Timestamp:   e.Timestamp,
			Table:       e.Table,
			Description: e.Description,
			RowKey:      e.RowKey,
		})
	}
	return rows
}
