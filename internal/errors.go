package internal

import "fmt"

// TableError carries the context of a failed row extraction: which table,
// row and column the failure belongs to. The wrapped error (usually one of
// the tl package's decode errors) names the failure kind and byte offset.
type TableError struct {
	Table  string
	RowKey string
	Column string
	Err    error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %s row %s column %s: %v", e.Table, e.RowKey, e.Column, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// OutputError represents errors writing an output artifact
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output error %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
