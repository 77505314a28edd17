package internal

import (
	"database/sql"
	"fmt"

	"github.com/RealityNet/teleparser/internal/tl"
)

// BlobColumn names a column holding a serialized object. Optional columns
// may be NULL (or, for enc_chats, non-bytes) without failing the row.
type BlobColumn struct {
	Name     string
	Optional bool
}

// TableSpec describes one cache table: its key column, the plain columns
// passed through to output, and the blob columns sent to the decoder.
type TableSpec struct {
	Name  string
	Key   string
	Plain []string
	Blobs []BlobColumn
}

// TableSpecs lists the nine cache4.db tables this tool extracts, in the
// order their artifacts are written.
var TableSpecs = []TableSpec{
	{
		Name:  "chats",
		Key:   "uid",
		Plain: []string{"name"},
		Blobs: []BlobColumn{{Name: "data"}},
	},
	{
		Name:  "contacts",
		Key:   "uid",
		Plain: []string{"mutual"},
	},
	{
		Name: "dialogs",
		Key:  "did",
		Plain: []string{
			"date", "unread_count", "last_mid", "inbox_max", "outbox_max",
			"last_mid_i", "unread_count_i", "pts", "date_i", "pinned", "flags",
		},
	},
	{
		Name: "enc_chats",
		Key:  "uid",
		Plain: []string{
			"user", "name", "g", "authkey", "ttl", "layer", "seq_in",
			"seq_out", "use_count", "exchange_id", "key_date", "fprint",
			"fauthkey", "khash", "in_seq_no", "admin_id", "mtproto_seq",
		},
		// Some handsets store a non-blob here; the row is kept without a tree.
		Blobs: []BlobColumn{{Name: "data", Optional: true}},
	},
	{
		Name:  "media_v2",
		Key:   "mid",
		Plain: []string{"uid", "date", "type"},
		Blobs: []BlobColumn{{Name: "data"}},
	},
	{
		Name: "messages",
		Key:  "mid",
		Plain: []string{
			"uid", "read_state", "send_state", "date", "out", "ttl",
			"media", "imp", "mention",
		},
		Blobs: []BlobColumn{{Name: "data"}, {Name: "replydata", Optional: true}},
	},
	{
		Name:  "sent_files_v2",
		Key:   "uid",
		Plain: []string{"type", "parent"},
		Blobs: []BlobColumn{{Name: "data"}},
	},
	{
		Name:  "users",
		Key:   "uid",
		Plain: []string{"name", "status"},
		Blobs: []BlobColumn{{Name: "data"}},
	},
	{
		Name:  "user_settings",
		Key:   "uid",
		Plain: []string{"pinned"},
		Blobs: []BlobColumn{{Name: "info"}},
	},
}

// TableSpecFor returns the table's spec by name, or nil.
func TableSpecFor(name string) *TableSpec {
	for i := range TableSpecs {
		if TableSpecs[i].Name == name {
			return &TableSpecs[i]
		}
	}
	return nil
}

// PlainColumn is one pass-through column value.
type PlainColumn struct {
	Name  string
	Value interface{}
}

// RowRecord pairs a row's plain columns with the decoded trees of its blob
// columns. Records are immutable once built.
type RowRecord struct {
	Table string
	Key   string
	Plain []PlainColumn
	Trees map[string]*tl.Object
}

// PlainInt returns a plain column's value as an int64 when it is numeric.
func (r *RowRecord) PlainInt(name string) (int64, bool) {
	for _, c := range r.Plain {
		if c.Name == name {
			switch v := c.Value.(type) {
			case int64:
				return v, true
			case int:
				return int64(v), true
			}
		}
	}
	return 0, false
}

// TableResult is the outcome of extracting one table. Skipped counts rows
// dropped in survey mode; in strict mode extraction stops at the first
// failure instead.
type TableResult struct {
	Table   string
	Rows    []*RowRecord
	Skipped int
}

// ExtractTable reads every row of one table and decodes its blob columns.
// In strict mode the first failing row aborts the table with a TableError;
// otherwise failures are logged with full context and the row is skipped.
func ExtractTable(db *sql.DB, spec TableSpec, dec *tl.Decoder, strict bool) (*TableResult, error) {
	raw, err := QueryTableRows(db, spec.Name)
	if err != nil {
		return nil, err
	}

	result := &TableResult{Table: spec.Name}
	for i := range raw {
		record, err := ExtractRow(&raw[i], spec, dec)
		if err != nil {
			if strict {
				return nil, err
			}
			result.Skipped++
			LogError("skipping row: %v", err)
			continue
		}
		LogInfo("parsed %s row %s", spec.Name, record.Key)
		result.Rows = append(result.Rows, record)
	}
	return result, nil
}

// ExtractRow builds one RowRecord from a raw row, decoding each configured
// blob column. A required blob that is NULL or empty fails the row.
func ExtractRow(raw *RawRow, spec TableSpec, dec *tl.Decoder) (*RowRecord, error) {
	record := &RowRecord{
		Table: spec.Name,
		Key:   columnString(raw.Values[spec.Key]),
		Plain: make([]PlainColumn, 0, len(spec.Plain)),
	}
	for _, name := range spec.Plain {
		record.Plain = append(record.Plain, PlainColumn{Name: name, Value: raw.Values[name]})
	}

	for _, bc := range spec.Blobs {
		buf, ok := raw.Values[bc.Name].([]byte)
		if !ok || len(buf) == 0 {
			if bc.Optional {
				LogDebug("%s row %s: column %s has no blob", spec.Name, record.Key, bc.Name)
				continue
			}
			return nil, &TableError{
				Table:  spec.Name,
				RowKey: record.Key,
				Column: bc.Name,
				Err:    &tl.NullBlobError{Column: bc.Name},
			}
		}
		tree, err := dec.DecodeBlob(buf)
		if err != nil {
			return nil, &TableError{Table: spec.Name, RowKey: record.Key, Column: bc.Name, Err: err}
		}
		if record.Trees == nil {
			record.Trees = make(map[string]*tl.Object, len(spec.Blobs))
		}
		record.Trees[bc.Name] = tree
	}
	return record, nil
}

func columnString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
