package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{",", ','},
		{"comma", ','},
		{";", ';'},
		{"semicolon", ';'},
		{"tab", '\t'},
		{"\\t", '\t'},
		{"|", '|'},
		{"pipe", '|'},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDelimiter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseDelimiter("::")
	assert.Error(t, err)
}

func TestParseRowRange(t *testing.T) {
	start, end, err := parseRowRange("100-150")
	require.NoError(t, err)
	assert.Equal(t, 100, start)
	assert.Equal(t, 150, end)

	start, end, err = parseRowRange("")
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	_, _, err = parseRowRange("100")
	assert.Error(t, err)

	_, _, err = parseRowRange("a-b")
	assert.Error(t, err)
}

func TestDetermineOutputFile(t *testing.T) {
	assert.Equal(t, "out.html", determineOutputFile("out.html", "data.csv", "html"))
	assert.Equal(t, "data.html", determineOutputFile("", "data.csv", "html"))
	assert.Equal(t, "data.xlsx", determineOutputFile("", "data.csv.gz", "xlsx"))
	assert.Equal(t, "/tmp/x.db", determineOutputFile("", "/tmp/x.txt", "db"))
}

func TestLoadTableGzip(t *testing.T) {
	content := "name,city\nalice,Berlin\nbob,Paris\n"
	dir := t.TempDir()

	plainPath := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(plainPath, []byte(content), 0o644))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	gzPath := filepath.Join(dir, "people.csv.gz")
	require.NoError(t, os.WriteFile(gzPath, buf.Bytes(), 0o644))

	plainTable, plainRaw, err := loadTable(plainPath, 0)
	require.NoError(t, err)

	gzTable, gzRaw, err := loadTable(gzPath, 0)
	require.NoError(t, err)

	assert.Equal(t, plainTable, gzTable, "gzipped input must parse identically")
	assert.Equal(t, plainRaw, gzRaw, "checksum input must be the decompressed bytes")
	assert.Equal(t, "people", gzTable.Name)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, _, err := loadTable(filepath.Join(t.TempDir(), "nope.csv"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, tabular.ErrInputNotFound)
}

func TestBuildConvertOptions(t *testing.T) {
	str := func(v string) *string { return &v }
	num := func(v int) *int { return &v }
	boolean := func(v bool) *bool { return &v }

	newFlags := func() *Flags {
		return &Flags{
			ToXLSX: str(""), ToSQLite: str(""), ToCSV: str(""),
			Config: str(""), Output: str(""), Title: str(""),
			Delimiter: str(""), OutDelimiter: str(""), Sheet: str(""),
			Table: str(""), Theme: str(""), Limit: num(0), Row: str(""),
			OpenBrowser: boolean(false), Hash: boolean(false),
		}
	}

	t.Run("Config defaults apply when flags are unset", func(t *testing.T) {
		cfg := &Config{Defaults: DefaultsConfig{
			Title: "Sales", Theme: "dark", Delimiter: ";", Limit: 5, Hash: true,
		}}

		opts, err := buildConvertOptions(newFlags(), cfg)
		require.NoError(t, err)
		assert.Equal(t, "Sales", opts.Title)
		assert.Equal(t, "dark", opts.Theme)
		assert.Equal(t, ';', opts.Delimiter)
		assert.Equal(t, 5, opts.Limit)
		assert.True(t, opts.Hash)
		assert.Equal(t, rune(0), opts.OutComma, "unset output delimiter stays zero so the writer falls back to comma")
	})

	t.Run("Flags win over config", func(t *testing.T) {
		flags := newFlags()
		*flags.Title = "Override"
		*flags.Delimiter = "pipe"
		*flags.OutDelimiter = ";"
		*flags.Row = "10-20"

		cfg := &Config{Defaults: DefaultsConfig{Title: "Sales", Delimiter: ","}}

		opts, err := buildConvertOptions(flags, cfg)
		require.NoError(t, err)
		assert.Equal(t, "Override", opts.Title)
		assert.Equal(t, '|', opts.Delimiter)
		assert.Equal(t, ';', opts.OutComma)
		assert.Equal(t, 10, opts.RowStart)
		assert.Equal(t, 20, opts.RowEnd)
	})

	t.Run("Bad config delimiter is an error", func(t *testing.T) {
		cfg := &Config{Defaults: DefaultsConfig{Delimiter: "::"}}
		_, err := buildConvertOptions(newFlags(), cfg)
		assert.Error(t, err)
	})
}

func TestApplyRowWindow(t *testing.T) {
	table := &tabular.Table{
		Header: tabular.Row{"n"},
		Rows: []tabular.Row{
			{"1"}, {"2"}, {"3"}, {"4"}, {"5"},
		},
	}

	tests := []struct {
		name string
		opts ConvertOptions
		want []tabular.Row
	}{
		{
			name: "No window keeps everything",
			opts: ConvertOptions{},
			want: []tabular.Row{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}},
		},
		{
			name: "Positive limit keeps first N",
			opts: ConvertOptions{Limit: 2},
			want: []tabular.Row{{"1"}, {"2"}},
		},
		{
			name: "Negative limit keeps last N",
			opts: ConvertOptions{Limit: -2},
			want: []tabular.Row{{"4"}, {"5"}},
		},
		{
			name: "Row range is 1-indexed inclusive",
			opts: ConvertOptions{RowStart: 2, RowEnd: 4},
			want: []tabular.Row{{"2"}, {"3"}, {"4"}},
		},
		{
			name: "Range combined with limit",
			opts: ConvertOptions{RowStart: 2, RowEnd: 5, Limit: 2},
			want: []tabular.Row{{"2"}, {"3"}},
		},
		{
			name: "Out of bounds range is clamped",
			opts: ConvertOptions{RowStart: 4, RowEnd: 99},
			want: []tabular.Row{{"4"}, {"5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyRowWindow(table, tt.opts)
			assert.Equal(t, tt.want, got.Rows)
			assert.Len(t, table.Rows, 5, "input table must not change")
		})
	}
}
