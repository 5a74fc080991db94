package htmlview

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
)

// maxFilterOptions caps the distinct-value dropdowns. Columns with more
// distinct values than this get no dropdown; the global search still covers
// them.
const maxFilterOptions = 30

// PageOptions holds presentation metadata for a standalone HTML page.
type PageOptions struct {
	Title       string    // page title; falls back to "Data Table"
	SourceName  string    // input file name shown in the metadata card
	GeneratedAt time.Time // zero value omits the timestamp
	Delimiter   rune      // delimiter the source was parsed with
	Checksum    string    // optional source checksum, e.g. "xxh3:9f2c66ab01dd94e3"
	Theme       string    // initial theme: "light" (default) or "dark"
}

// RenderPage renders a complete, self-contained HTML document for a table:
// embedded CSS and JS, no external requests. The page carries a global
// search box, per-column filter dropdowns, a light/dark theme toggle
// persisted to localStorage, and client-side CSV export of the visible rows.
func RenderPage(t *tabular.Table, opts PageOptions) string {
	title := opts.Title
	if title == "" {
		title = "Data Table"
	}
	theme := opts.Theme
	if theme != "dark" {
		theme = "light"
	}

	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(`</title>
`)
	b.WriteString(pageCSS())
	b.WriteString(`</head>
<body data-theme="` + theme + `">
<div class="container">
`)

	// --- Header card ---
	b.WriteString(`<div class="header-card">`)
	b.WriteString(`<div class="header-top">`)
	b.WriteString(`<span class="page-title">` + html.EscapeString(title) + `</span>`)
	b.WriteString(`<button class="theme-toggle" id="theme-toggle" title="Toggle theme">&#9681;</button>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="meta-grid">`)
	if opts.SourceName != "" {
		writeMetaItem(&b, "Source", opts.SourceName)
	}
	if !opts.GeneratedAt.IsZero() {
		writeMetaItem(&b, "Generated", opts.GeneratedAt.Format(time.RFC3339))
	}
	if opts.Delimiter != 0 {
		writeMetaItem(&b, "Delimiter", DelimiterLabel(opts.Delimiter))
	}
	if opts.Checksum != "" {
		writeMetaItem(&b, "Checksum", opts.Checksum)
	}
	b.WriteString(`</div>`)
	b.WriteString(`</div>`) // header-card

	// --- Stats cards ---
	b.WriteString(`<div class="stats-row">`)
	writeStatsCard(&b, "total-rows", strconv.Itoa(t.RowCount()), "Total Rows")
	writeStatsCard(&b, "", strconv.Itoa(t.ColumnCount()), "Columns")
	writeStatsCard(&b, "filtered-rows", strconv.Itoa(t.RowCount()), "Filtered Rows")
	b.WriteString(`</div>`)

	// --- Controls ---
	b.WriteString(`<div class="controls">`)
	b.WriteString(`<div class="search-row">`)
	b.WriteString(`<div class="control-group grow">`)
	b.WriteString(`<label class="control-label" for="search-input">Search</label>`)
	b.WriteString(`<input type="text" class="search-input" id="search-input" placeholder="Search across all columns...">`)
	b.WriteString(`</div>`)
	b.WriteString(`<button class="btn btn-ghost" id="reset-btn">Reset</button>`)
	b.WriteString(`<button class="btn btn-primary" id="export-btn">Export CSV</button>`)
	b.WriteString(`</div>`)
	writeFilterRow(&b, t)
	b.WriteString(`</div>`) // controls

	// --- Data table ---
	b.WriteString(`<div class="table-card"><div class="table-wrapper">`)
	WriteTable(&b, t, "data-table")
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="footer">csv2html</div>`)
	b.WriteString(`</div>
`)
	b.WriteString(pageJS())
	b.WriteString(`</body>
</html>
`)

	return b.String()
}

// writeFilterRow emits one dropdown per filterable column. Columns whose
// distinct value count exceeds maxFilterOptions are skipped.
func writeFilterRow(b *strings.Builder, t *tabular.Table) {
	type filter struct {
		col    int
		name   string
		values []string
	}

	var filters []filter
	for col, name := range t.Header {
		values := distinctValues(t.Rows, col)
		if values == nil {
			continue
		}
		filters = append(filters, filter{col: col, name: name, values: values})
	}
	if len(filters) == 0 {
		return
	}

	b.WriteString(`<div class="filter-row">`)
	for _, f := range filters {
		b.WriteString(`<div class="control-group">`)
		id := "filter-" + strconv.Itoa(f.col)
		b.WriteString(`<label class="control-label" for="` + id + `">` + html.EscapeString(f.name) + `</label>`)
		b.WriteString(fmt.Sprintf(`<select class="filter-select" id="%s" data-column="%d">`, id, f.col))
		b.WriteString(`<option value="">All</option>`)
		for _, v := range f.values {
			b.WriteString(`<option value="` + html.EscapeString(v) + `">` + html.EscapeString(v) + `</option>`)
		}
		b.WriteString(`</select>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

// distinctValues returns the sorted distinct non-empty values of a column,
// or nil when the column has none or too many to be useful as a dropdown.
func distinctValues(rows []tabular.Row, col int) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		seen[row[col]] = struct{}{}
		if len(seen) > maxFilterOptions {
			return nil
		}
	}
	if len(seen) == 0 {
		return nil
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func writeMetaItem(b *strings.Builder, label, value string) {
	b.WriteString(`<div class="meta-item">`)
	b.WriteString(`<span class="meta-label">` + html.EscapeString(label) + `</span>`)
	b.WriteString(`<span class="meta-value">` + html.EscapeString(value) + `</span>`)
	b.WriteString(`</div>`)
}

func writeStatsCard(b *strings.Builder, id, number, label string) {
	b.WriteString(`<div class="stats-card">`)
	if id != "" {
		b.WriteString(`<div class="stats-number" id="` + id + `">`)
	} else {
		b.WriteString(`<div class="stats-number">`)
	}
	b.WriteString(html.EscapeString(number))
	b.WriteString(`</div><div class="stats-label">` + html.EscapeString(label) + `</div>`)
	b.WriteString(`</div>`)
}
