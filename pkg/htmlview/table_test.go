package htmlview

import (
	"strings"
	"testing"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/stretchr/testify/assert"
)

func testTable() *tabular.Table {
	return &tabular.Table{
		Name:      "people",
		Delimiter: ',',
		Header:    tabular.Row{"name", "age", "active"},
		Rows: []tabular.Row{
			{"alice", "30", "true"},
			{"bob", "25", "false"},
		},
	}
}

func TestRenderTableEscapesContent(t *testing.T) {
	table := &tabular.Table{
		Header: tabular.Row{"payload"},
		Rows:   []tabular.Row{{`<script>alert("x")</script>`}},
	}

	out := RenderTable(table, "data-table")

	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
}

func TestRenderTableColumnOrder(t *testing.T) {
	out := RenderTable(testTable(), "data-table")

	name := strings.Index(out, "name")
	age := strings.Index(out, "age")
	active := strings.Index(out, "active")
	if !(name < age && age < active) {
		t.Errorf("header order not preserved: name=%d age=%d active=%d", name, age, active)
	}
}

func TestRenderTableKindClasses(t *testing.T) {
	out := RenderTable(testTable(), "data-table")

	assert.Contains(t, out, `<td class="num-val">30</td>`)
	assert.Contains(t, out, `class="bool-true"`)
	assert.Contains(t, out, `class="bool-false"`)
}

func TestRenderTableNoData(t *testing.T) {
	table := &tabular.Table{Header: tabular.Row{"a", "b", "c"}}
	out := RenderTable(table, "data-table")

	assert.Contains(t, out, `class="no-data"`)
	assert.Contains(t, out, `colspan="4"`)
	assert.Contains(t, out, "no data")
}

func TestRenderTableEmptyCell(t *testing.T) {
	table := &tabular.Table{
		Header: tabular.Row{"a", "b"},
		Rows:   []tabular.Row{{"1", ""}},
	}
	out := RenderTable(table, "data-table")
	assert.Contains(t, out, `<td class="null-val"></td>`)
}

func TestDelimiterLabel(t *testing.T) {
	tests := []struct {
		delim    rune
		expected string
	}{
		{',', "comma"},
		{';', "semicolon"},
		{'\t', "tab"},
		{'|', "pipe"},
		{'#', "#"},
	}
	for _, tt := range tests {
		if got := DelimiterLabel(tt.delim); got != tt.expected {
			t.Errorf("DelimiterLabel(%q) = %q, want %q", tt.delim, got, tt.expected)
		}
	}
}
