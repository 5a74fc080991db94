// Package sqlitex loads parsed tables into SQLite database files.
package sqlitex

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	_ "modernc.org/sqlite"
)

const driverSqlite = "sqlite"

// Export writes a table into a SQLite database file. The destination table
// is created from the sanitized header names with affinities derived from
// the inferred column kinds and replaced if it already exists. All rows go
// in a single transaction; empty values in non-text columns become NULL.
func Export(ctx context.Context, t *tabular.Table, filePath, tableName string) error {
	if tableName == "" {
		tableName = t.Name
		if tableName == "" {
			tableName = "data"
		}
	}
	tableName = sanitizeIdentifier(tableName)

	db, err := sql.Open(driverSqlite, filePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	cols := columnNames(t.Header)
	kinds := t.ColumnKinds()

	if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %q", tableName)); err != nil {
		return fmt.Errorf("failed to drop existing table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL(tableName, cols, kinds)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL(tableName, cols))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for _, row := range t.Rows {
		for i := range cols {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			switch {
			case val == "" && kinds[i] != tabular.KindText:
				args[i] = nil
			case kinds[i] == tabular.KindBoolean:
				if strings.EqualFold(val, "true") {
					args[i] = 1
				} else {
					args[i] = 0
				}
			default:
				args[i] = val
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func createTableSQL(table string, cols []string, kinds []tabular.ColumnKind) string {
	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = fmt.Sprintf("%q %s", col, affinity(kinds[i]))
	}
	return fmt.Sprintf("CREATE TABLE %q (%s)", table, strings.Join(defs, ", "))
}

func insertSQL(table string, cols []string) string {
	quoted := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = fmt.Sprintf("%q", col)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(marks, ", "))
}

func affinity(kind tabular.ColumnKind) string {
	switch kind {
	case tabular.KindInteger, tabular.KindBoolean:
		return "INTEGER"
	case tabular.KindReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// columnNames sanitizes header fields into unique SQLite column names.
func columnNames(header tabular.Row) []string {
	names := make([]string, len(header))
	used := make(map[string]int)

	for i, field := range header {
		name := sanitizeIdentifier(field)
		if name == "" {
			name = fmt.Sprintf("col_%d", i+1)
		}
		if used[name] > 0 {
			base := name
			n := used[base]
			for {
				n++
				name = fmt.Sprintf("%s_%d", base, n)
				if used[name] == 0 {
					used[base] = n
					break
				}
			}
		}
		used[name]++
		names[i] = name
	}
	return names
}

// sanitizeIdentifier lowercases an identifier and replaces anything outside
// [a-z0-9_] with underscores.
func sanitizeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
