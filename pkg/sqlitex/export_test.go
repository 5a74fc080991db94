package sqlitex

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	table := &tabular.Table{
		Name:   "people",
		Header: tabular.Row{"Name", "Age", "Active"},
		Rows: []tabular.Row{
			{"alice", "30", "true"},
			{"bob", "", "false"},
		},
	}

	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, Export(context.Background(), table, path, ""))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM people").Scan(&count))
	assert.Equal(t, 2, count)

	var name string
	var age sql.NullInt64
	var active int
	require.NoError(t, db.QueryRow(
		"SELECT name, age, active FROM people WHERE name = 'bob'").Scan(&name, &age, &active))
	assert.Equal(t, "bob", name)
	assert.False(t, age.Valid, "empty integer value should be NULL")
	assert.Equal(t, 0, active)
}

func TestExportReplacesExisting(t *testing.T) {
	table := &tabular.Table{
		Header: tabular.Row{"a"},
		Rows:   []tabular.Row{{"1"}},
	}

	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, Export(context.Background(), table, path, "t"))
	require.NoError(t, Export(context.Background(), table, path, "t"))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "t"`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestColumnNames(t *testing.T) {
	tests := []struct {
		name     string
		header   tabular.Row
		expected []string
	}{
		{
			name:     "Lowercase and underscores",
			header:   tabular.Row{"First Name", "E-Mail", "created.at"},
			expected: []string{"first_name", "e_mail", "created_at"},
		},
		{
			name:     "Duplicates get suffixes",
			header:   tabular.Row{"id", "id", "id"},
			expected: []string{"id", "id_2", "id_3"},
		},
		{
			name:     "Unusable names fall back to position",
			header:   tabular.Row{"", "!!!"},
			expected: []string{"col_1", "col_2"},
		},
		{
			name:     "Suffix skips names already taken",
			header:   tabular.Row{"a", "a_2", "a"},
			expected: []string{"a", "a_2", "a_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, columnNames(tt.header))
		})
	}
}
