package htmlview

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/stretchr/testify/assert"
)

func TestRenderPageDeterministic(t *testing.T) {
	opts := PageOptions{
		Title:       "People",
		SourceName:  "people.csv",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Delimiter:   ',',
	}
	first := RenderPage(testTable(), opts)
	second := RenderPage(testTable(), opts)
	assert.Equal(t, first, second)
}

func TestRenderPageSelfContained(t *testing.T) {
	out := RenderPage(testTable(), PageOptions{Title: "People"})

	assert.NotContains(t, out, "http://")
	assert.NotContains(t, out, "https://")
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, "<script>")
}

func TestRenderPageMetadata(t *testing.T) {
	opts := PageOptions{
		Title:       "People",
		SourceName:  "people.csv",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Delimiter:   ';',
		Checksum:    "xxh3:9f2c66ab01dd94e3",
	}
	out := RenderPage(testTable(), opts)

	assert.Contains(t, out, "people.csv")
	assert.Contains(t, out, "semicolon")
	assert.Contains(t, out, "xxh3:9f2c66ab01dd94e3")
	assert.Contains(t, out, "2025-06-01T12:00:00Z")
	assert.Contains(t, out, "<title>People</title>")
}

func TestRenderPageDefaultsTitle(t *testing.T) {
	out := RenderPage(testTable(), PageOptions{})
	assert.Contains(t, out, "<title>Data Table</title>")
}

func TestRenderPageTheme(t *testing.T) {
	light := RenderPage(testTable(), PageOptions{})
	dark := RenderPage(testTable(), PageOptions{Theme: "dark"})

	assert.Contains(t, light, `<body data-theme="light">`)
	assert.Contains(t, dark, `<body data-theme="dark">`)
}

func TestRenderPageFilterDropdowns(t *testing.T) {
	out := RenderPage(testTable(), PageOptions{})

	// every column of the small fixture is filterable
	assert.Contains(t, out, `id="filter-0"`)
	assert.Contains(t, out, `data-column="2"`)
	assert.Contains(t, out, `<option value="alice">alice</option>`)
}

func TestRenderPageSkipsWideDropdowns(t *testing.T) {
	table := &tabular.Table{Header: tabular.Row{"id"}}
	for i := 0; i < maxFilterOptions+5; i++ {
		table.Rows = append(table.Rows, tabular.Row{strconv.Itoa(i)})
	}

	out := RenderPage(table, PageOptions{})
	assert.NotContains(t, out, `class="filter-select"`)
}

func TestRenderPageEscapesTitle(t *testing.T) {
	out := RenderPage(testTable(), PageOptions{Title: `<img src=x>`})
	assert.NotContains(t, out, "<img")
	assert.True(t, strings.Contains(out, "&lt;img src=x&gt;"))
}
