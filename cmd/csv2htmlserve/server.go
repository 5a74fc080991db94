package main

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/krystianbajno/csv2html/pkg/htmlview"
)

// ─────────────────────────────────────────────────────────────────────────────
// Data model
// ─────────────────────────────────────────────────────────────────────────────

// Dataset is one loaded source file
type Dataset struct {
	Name  string
	Title string
	Path  string
	Table *tabular.Table
}

// Server is the csv2htmlserve HTTP server
type Server struct {
	cfg       *ServeConfig
	datasets  map[string]*Dataset
	order     []string // display order in the UI
	startedAt time.Time
}

// ─────────────────────────────────────────────────────────────────────────────
// Startup: load all sources
// ─────────────────────────────────────────────────────────────────────────────

func newServer(cfg *ServeConfig) (*Server, error) {
	srv := &Server{
		cfg:       cfg,
		datasets:  make(map[string]*Dataset),
		startedAt: time.Now(),
	}

	fmt.Printf("csv2htmlserve: loading %d source(s)...\n", len(cfg.Sources))

	for _, src := range cfg.Sources {
		table, err := loadSource(src)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}

		fmt.Printf("  [%s] %s — %d rows, %d columns\n",
			htmlview.DelimiterLabel(table.Delimiter), src.Name,
			table.RowCount(), table.ColumnCount())

		srv.datasets[src.Name] = &Dataset{
			Name:  src.Name,
			Title: src.Title,
			Path:  src.Path,
			Table: table,
		}
		srv.order = append(srv.order, src.Name)
	}

	return srv, nil
}

// loadSource reads, decodes, and parses one configured file.
func loadSource(src SourceConfig) (*tabular.Table, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabular.ErrInputNotFound, err)
	}

	if strings.HasSuffix(src.Path, ".gz") {
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decompress: %w", err)
		}
		data, err = io.ReadAll(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decompress: %w", err)
		}
	}

	text, err := tabular.Decode(data)
	if err != nil {
		return nil, err
	}

	delim := tabular.Detect(text)
	if src.Delimiter != "" {
		delim, _ = parseDelimiter(src.Delimiter)
	}

	table, err := tabular.NewParser().Parse(text, delim)
	if err != nil {
		return nil, err
	}
	table.Name = src.Name

	return table, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// HTTP server
// ─────────────────────────────────────────────────────────────────────────────

func runServer(cfg *ServeConfig) error {
	srv, err := newServer(cfg)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleIndex)
	mux.HandleFunc("/data/", srv.handleData)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\ncsv2htmlserve ready → http://localhost%s\n", addr)
	fmt.Printf("  %d source(s)\n", len(srv.datasets))

	return http.ListenAndServe(addr, mux)
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.renderIndex(w)
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/data/")
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	ds, ok := s.datasets[name]
	if !ok {
		http.Error(w, "dataset not found: "+name, http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	search := q.Get("q")
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	rows := filterRows(ds.Table.Rows, search)
	matched := len(rows)
	rows = windowRows(rows, limit, offset)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.renderData(w, ds, rows, matched, search, limit, offset)
}

// filterRows keeps rows where any field contains the search string,
// case-insensitive. An empty search keeps everything.
func filterRows(rows []tabular.Row, search string) []tabular.Row {
	if search == "" {
		return rows
	}
	needle := strings.ToLower(search)
	matched := make([]tabular.Row, 0, len(rows))
	for _, row := range rows {
		for _, val := range row {
			if strings.Contains(strings.ToLower(val), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// windowRows applies offset and limit to the filtered rows.
func windowRows(rows []tabular.Row, limit, offset int) []tabular.Row {
	if offset > 0 {
		if offset > len(rows) {
			offset = len(rows)
		}
		rows = rows[offset:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

// ─────────────────────────────────────────────────────────────────────────────
// HTML rendering — index page
// ─────────────────────────────────────────────────────────────────────────────

func (s *Server) renderIndex(w http.ResponseWriter) {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>` + html.EscapeString(s.cfg.Server.Name) + `</title>
` + commonCSS() + `
<style>
  .grid { display:grid; grid-template-columns:repeat(auto-fill,minmax(300px,1fr)); gap:16px; }
  .card-link { text-decoration:none; color:inherit; display:block; }
  .src-card {
    background:#1e293b; border:1px solid #334155; border-radius:12px;
    padding:20px; transition:border-color .15s, transform .1s;
    cursor:pointer;
  }
  .src-card:hover { border-color:#3b82f6; transform:translateY(-1px); }
  .card-top { display:flex; align-items:center; gap:12px; margin-bottom:12px; }
  .card-icon {
    width:36px; height:36px; border-radius:8px; display:flex; align-items:center;
    justify-content:center; font-size:17px; flex-shrink:0;
    background:#1a3a2a;
  }
  .card-name { font-size:16px; font-weight:700; color:#f1f5f9; }
  .card-meta { display:flex; gap:8px; flex-wrap:wrap; margin-top:8px; }
  .tag {
    font-size:11px; font-weight:600; padding:2px 8px; border-radius:10px;
    background:#1e293b; color:#94a3b8; border:1px solid #334155;
  }
  .tag-rows { color:#34d399; border-color:#1a3a2a; background:#0d2019; }
  .tag-type { color:#60a5fa; border-color:#1e3a5f; background:#0d1f3c; }
  .card-desc { font-size:12px; color:#64748b; margin-top:8px; font-style:italic; }
</style>
</head>
<body>
<div class="container">
`)
	writeNavbar(&b, s.cfg.Server.Name, "")

	// Stats row
	b.WriteString(`<div class="meta-grid" style="margin-bottom:24px;">`)
	writeMetaItem(&b, "Sources", strconv.Itoa(len(s.datasets)))
	writeMetaItem(&b, "Started", s.startedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="grid">`)
	for _, name := range s.order {
		writeSourceCard(&b, s.datasets[name])
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="footer">csv2html serve</div>`)
	b.WriteString(`</div></body></html>`)

	fmt.Fprint(w, b.String())
}

func writeSourceCard(b *strings.Builder, d *Dataset) {
	b.WriteString(`<a class="card-link" href="/data/` + html.EscapeString(d.Name) + `">`)
	b.WriteString(`<div class="src-card">`)
	b.WriteString(`<div class="card-top">`)
	b.WriteString(`<div class="card-icon">&#x1F4C4;</div>`)
	b.WriteString(`<span class="card-name">` + html.EscapeString(d.Name) + `</span>`)
	b.WriteString(`</div>`)
	b.WriteString(`<div class="card-meta">`)
	b.WriteString(`<span class="tag tag-type">` + htmlview.DelimiterLabel(d.Table.Delimiter) + `</span>`)
	b.WriteString(`<span class="tag tag-rows">` + strconv.Itoa(d.Table.RowCount()) + ` rows</span>`)
	b.WriteString(`<span class="tag">` + strconv.Itoa(d.Table.ColumnCount()) + ` columns</span>`)
	b.WriteString(`</div>`)
	if d.Title != "" {
		b.WriteString(`<div class="card-desc">` + html.EscapeString(d.Title) + `</div>`)
	}
	b.WriteString(`</div></a>`)
}

// ─────────────────────────────────────────────────────────────────────────────
// HTML rendering — data page
// ─────────────────────────────────────────────────────────────────────────────

func (s *Server) renderData(
	w http.ResponseWriter,
	ds *Dataset,
	rows []tabular.Row,
	matched int,
	search string,
	limit, offset int,
) {
	totalRows := ds.Table.RowCount()

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>` + html.EscapeString(ds.Name) + ` — ` + html.EscapeString(s.cfg.Server.Name) + `</title>
` + commonCSS() + `
<style>
  .filter-bar {
    background:#1e293b; border:1px solid #334155; border-radius:12px;
    padding:16px 20px; margin-bottom:20px;
    display:flex; gap:12px; flex-wrap:wrap; align-items:flex-end;
  }
  .filter-group { display:flex; flex-direction:column; gap:4px; flex:1; min-width:180px; }
  .filter-label { font-size:11px; font-weight:600; color:#64748b; text-transform:uppercase; letter-spacing:.05em; }
  .filter-input {
    background:#0f172a; border:1px solid #334155; border-radius:6px;
    color:#e2e8f0; padding:7px 10px; font-size:13px; font-family:monospace;
    outline:none; transition:border-color .15s;
  }
  .filter-input:focus { border-color:#3b82f6; }
  .filter-input.narrow { max-width:90px; }
  .btn {
    padding:8px 18px; border-radius:6px; font-size:13px; font-weight:600;
    cursor:pointer; border:none; transition:opacity .15s;
  }
  .btn:hover { opacity:.85; }
  .btn-primary { background:#2563eb; color:#fff; }
  .btn-ghost   { background:#1e293b; color:#94a3b8; border:1px solid #334155; }
  .data-wrapper { overflow-x:auto; }
  .data-table { width:100%; border-collapse:collapse; font-size:13px; }
  .data-table th {
    padding:10px 14px; text-align:left;
    font-size:11px; font-weight:600; color:#475569;
    text-transform:uppercase; letter-spacing:.04em;
    border-bottom:2px solid #334155; background:#0f172a;
    white-space:nowrap; position:sticky; top:0; z-index:10;
  }
  .data-table td {
    padding:8px 14px; border-bottom:1px solid #1e293b;
    font-family:monospace; color:#cbd5e1;
    max-width:320px; overflow:hidden; text-overflow:ellipsis; white-space:nowrap;
  }
  .data-table tr:hover td { background:#1e2d42; }
  .data-table tr:nth-child(even) td { background:#18222f; }
  .data-table tr:nth-child(even):hover td { background:#1e2d42; }
  .null-val  { color:#475569; font-style:italic; }
  .num-val   { color:#60a5fa; }
  .bool-true { color:#34d399; }
  .bool-false{ color:#f87171; }
  .row-num   { color:#475569; text-align:right; user-select:none; font-size:11px; }
  .no-data   { text-align:center; color:#475569; font-style:italic; padding:24px; }
</style>
</head>
<body>
<div class="container">
`)

	writeNavbar(&b, s.cfg.Server.Name, ds.Name)

	// Header card
	b.WriteString(`<div class="header-card">`)
	b.WriteString(`<div class="header-top">`)
	b.WriteString(`<span class="table-name">` + html.EscapeString(ds.Name) + `</span>`)
	b.WriteString(`<span class="badge badge-reference">` +
		strings.ToUpper(htmlview.DelimiterLabel(ds.Table.Delimiter)) + `</span>`)
	b.WriteString(`</div>`)
	b.WriteString(`<div class="meta-grid">`)
	writeMetaItem(&b, "Source file", ds.Path)
	writeMetaItem(&b, "Total rows", strconv.Itoa(totalRows))
	writeMetaItem(&b, "Columns", strconv.Itoa(ds.Table.ColumnCount()))
	if ds.Title != "" {
		writeMetaItem(&b, "Title", ds.Title)
	}
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)

	// Filter bar
	b.WriteString(`<form method="GET" action="/data/` + html.EscapeString(ds.Name) + `" class="filter-bar">`)
	b.WriteString(`<div class="filter-group">`)
	b.WriteString(`<label class="filter-label">Search</label>`)
	b.WriteString(`<input class="filter-input" name="q" placeholder="substring match across all columns"`)
	if search != "" {
		b.WriteString(` value="` + html.EscapeString(search) + `"`)
	}
	b.WriteString(`>`)
	b.WriteString(`</div>`)
	b.WriteString(`<div class="filter-group" style="max-width:90px;">`)
	b.WriteString(`<label class="filter-label">Limit</label>`)
	limitVal := ""
	if limit > 0 {
		limitVal = strconv.Itoa(limit)
	}
	b.WriteString(`<input class="filter-input narrow" name="limit" type="number" min="0" placeholder="all" value="` + limitVal + `">`)
	b.WriteString(`</div>`)
	b.WriteString(`<div class="filter-group" style="max-width:90px;">`)
	b.WriteString(`<label class="filter-label">Offset</label>`)
	offsetVal := ""
	if offset > 0 {
		offsetVal = strconv.Itoa(offset)
	}
	b.WriteString(`<input class="filter-input narrow" name="offset" type="number" min="0" placeholder="0" value="` + offsetVal + `">`)
	b.WriteString(`</div>`)
	b.WriteString(`<div style="display:flex;gap:8px;align-self:flex-end;">`)
	b.WriteString(`<button class="btn btn-primary" type="submit">Filter</button>`)
	b.WriteString(`<a class="btn btn-ghost" href="/data/` + html.EscapeString(ds.Name) + `">Clear</a>`)
	b.WriteString(`</div>`)
	b.WriteString(`</form>`)

	// Data card
	b.WriteString(`<div class="card">`)
	if len(rows) < totalRows {
		b.WriteString(fmt.Sprintf(`<div class="card-header">Data <span class="pill">%d of %d rows</span></div>`,
			len(rows), totalRows))
	} else {
		b.WriteString(fmt.Sprintf(`<div class="card-header">Data <span class="pill">%d rows</span></div>`, len(rows)))
	}

	view := *ds.Table
	view.Rows = rows
	b.WriteString(`<div class="data-wrapper">`)
	htmlview.WriteTable(&b, &view, "data-table")
	b.WriteString(`</div>`)

	// Stats bar
	b.WriteString(fmt.Sprintf(`<div class="stats-bar">
  <span><strong>%d</strong> rows shown</span>
  <span><strong>%d</strong> matched</span>
  <span><strong>%d</strong> columns</span>
</div>`, len(rows), matched, ds.Table.ColumnCount()))

	b.WriteString(`</div>`)
	b.WriteString(`<div class="footer"><a href="/">← back</a></div>`)
	b.WriteString(`</div></body></html>`)

	fmt.Fprint(w, b.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared HTML helpers
// ─────────────────────────────────────────────────────────────────────────────

func commonCSS() string {
	return `<style>
  * { box-sizing:border-box; margin:0; padding:0; }
  body { font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif; background:#0f1117; color:#e2e8f0; min-height:100vh; padding:24px; }
  .container { max-width:1600px; margin:0 auto; }
  .navbar {
    display:flex; align-items:center; gap:12px; margin-bottom:24px;
    padding-bottom:16px; border-bottom:1px solid #1e293b;
  }
  .nav-title { font-size:18px; font-weight:700; color:#f1f5f9; }
  .nav-sep   { color:#334155; }
  .nav-sub   { font-size:16px; color:#94a3b8; font-weight:500; }
  .nav-home  { color:#60a5fa; text-decoration:none; font-weight:700; }
  .nav-home:hover { color:#93c5fd; }
  .badge { display:inline-flex; align-items:center; gap:6px; padding:4px 10px; border-radius:20px; font-size:12px; font-weight:600; }
  .badge-reference { background:#1e3a5f; color:#60a5fa; }
  .header-card { background:linear-gradient(135deg,#1e293b 0%,#0f172a 100%); border:1px solid #334155; border-radius:12px; padding:24px 28px; margin-bottom:20px; }
  .header-top  { display:flex; align-items:center; gap:16px; flex-wrap:wrap; margin-bottom:16px; }
  .table-name  { font-size:26px; font-weight:700; color:#f1f5f9; }
  .meta-grid   { display:grid; grid-template-columns:repeat(auto-fill,minmax(200px,1fr)); gap:12px; }
  .meta-item   { display:flex; flex-direction:column; gap:2px; }
  .meta-label  { font-size:11px; font-weight:600; color:#64748b; text-transform:uppercase; letter-spacing:.05em; }
  .meta-value  { font-size:13px; color:#cbd5e1; font-family:monospace; word-break:break-all; }
  .card        { background:#1e293b; border:1px solid #334155; border-radius:12px; margin-bottom:20px; overflow:hidden; }
  .card-header { padding:14px 20px; border-bottom:1px solid #334155; font-size:14px; font-weight:600; color:#94a3b8; display:flex; align-items:center; gap:10px; background:#0f172a; }
  .pill        { background:#334155; color:#94a3b8; padding:2px 8px; border-radius:10px; font-size:11px; font-weight:600; }
  .stats-bar   { display:flex; gap:24px; flex-wrap:wrap; padding:12px 20px; background:#0f172a; border-top:1px solid #334155; font-size:12px; color:#64748b; }
  .stats-bar span { display:flex; align-items:center; gap:6px; }
  .stats-bar strong { color:#94a3b8; }
  .footer      { text-align:center; padding:20px; font-size:11px; color:#334155; }
  .footer a    { color:#475569; text-decoration:none; }
</style>`
}

func writeNavbar(b *strings.Builder, serverName, datasetName string) {
	b.WriteString(`<div class="navbar">`)
	b.WriteString(`<a class="nav-home" href="/">` + html.EscapeString(serverName) + `</a>`)
	if datasetName != "" {
		b.WriteString(`<span class="nav-sep">/</span>`)
		b.WriteString(`<span class="nav-sub">` + html.EscapeString(datasetName) + `</span>`)
	}
	b.WriteString(`</div>`)
}

func writeMetaItem(b *strings.Builder, label, value string) {
	b.WriteString(`<div class="meta-item">`)
	b.WriteString(`<span class="meta-label">` + html.EscapeString(label) + `</span>`)
	b.WriteString(`<span class="meta-value">` + html.EscapeString(value) + `</span>`)
	b.WriteString(`</div>`)
}
