package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens a SQLite database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// RawRow is one relational row as delivered by the database: column names in
// select order and a value per column. Blob columns arrive as []byte.
type RawRow struct {
	Columns []string
	Values  map[string]interface{}
}

// QueryTableRows reads every row of a table in primary-key order.
func QueryTableRows(db *sql.DB, table string) ([]RawRow, error) {
	rows, err := db.Query("SELECT * FROM " + table + " ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("query %s failed: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns for %s failed: %w", table, err)
	}

	var out []RawRow
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s failed: %w", table, err)
		}

		row := RawRow{Columns: columns, Values: make(map[string]interface{}, len(columns))}
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				// The driver reuses scan buffers between rows.
				cp := make([]byte, len(b))
				copy(cp, b)
				values[i] = cp
			}
			row.Values[col] = values[i]
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return out, nil
}

// TableRowCount returns the number of rows in a table.
func TableRowCount(db *sql.DB, table string) (int64, error) {
	var n int64
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s failed: %w", table, err)
	}
	return n, nil
}
