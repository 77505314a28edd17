package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// TimelineRow is one entry of the chronological report.
type TimelineRow struct {
	Timestamp   int64
	Table       string
	Description string
	RowKey      string
}

// WriteTimelineCSV writes the timeline with a fixed column order. The
// timestamp is rendered as UTC ISO 8601; callers are expected to have
// sorted the rows already.
func WriteTimelineCSV(w io.Writer, rows []TimelineRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "table", "description", "row_key"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			formatTimestamp(row.Timestamp),
			row.Table,
			row.Description,
			row.RowKey,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatTimestamp(epoch int64) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02T15:04:05")
}

// FormatEpoch renders a UNIX timestamp for display next to its raw value,
// the way per-table blocks annotate date columns.
func FormatEpoch(epoch int64) string {
	if epoch == 0 {
		return strconv.FormatInt(epoch, 10)
	}
	return strconv.FormatInt(epoch, 10) + " [" + formatTimestamp(epoch) + "]"
}
