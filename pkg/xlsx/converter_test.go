package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestToXLSX(t *testing.T) {
	table := &tabular.Table{
		Name:   "people",
		Header: tabular.Row{"name", "age"},
		Rows: []tabular.Row{
			{"alice", "30"},
			{"bob", ""},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, ToXLSX(table, path, ""))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "people", f.GetSheetName(0))

	rows, err := f.GetRows("people")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "age"}, rows[0])
	assert.Equal(t, []string{"alice", "30"}, rows[1])
	assert.Equal(t, "bob", rows[2][0])
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		col      int
		expected string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
	}
	for _, tt := range tests {
		if got := columnName(tt.col); got != tt.expected {
			t.Errorf("columnName(%d) = %q, want %q", tt.col, got, tt.expected)
		}
	}
}
