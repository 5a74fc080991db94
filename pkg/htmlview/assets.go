package htmlview

// pageCSS returns the embedded stylesheet. Light and dark palettes are CSS
// variables switched by the body's data-theme attribute.
func pageCSS() string {
	return `<style>
  :root {
    --bg: #f8fafc; --bg-card: #ffffff; --bg-inset: #f1f5f9;
    --text: #1e293b; --text-dim: #64748b; --text-faint: #94a3b8;
    --border: #e2e8f0; --accent: #2563eb; --accent-soft: rgba(37,99,235,.08);
    --num: #1d4ed8; --ok: #059669; --bad: #dc2626;
  }
  [data-theme="dark"] {
    --bg: #0f1117; --bg-card: #1e293b; --bg-inset: #0f172a;
    --text: #e2e8f0; --text-dim: #94a3b8; --text-faint: #64748b;
    --border: #334155; --accent: #3b82f6; --accent-soft: rgba(59,130,246,.12);
    --num: #60a5fa; --ok: #34d399; --bad: #f87171;
  }
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: var(--bg); color: var(--text); min-height: 100vh; padding: 24px;
    transition: background .2s, color .2s;
  }
  .container { max-width: 1600px; margin: 0 auto; }
  .header-card {
    background: var(--bg-card); border: 1px solid var(--border); border-radius: 12px;
    padding: 24px 28px; margin-bottom: 20px;
  }
  .header-top { display: flex; align-items: center; justify-content: space-between; gap: 16px; margin-bottom: 16px; }
  .page-title { font-size: 26px; font-weight: 700; }
  .theme-toggle {
    background: var(--bg-inset); border: 1px solid var(--border); border-radius: 8px;
    color: var(--text-dim); font-size: 16px; padding: 6px 12px; cursor: pointer;
  }
  .theme-toggle:hover { color: var(--accent); }
  .meta-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 12px; }
  .meta-item { display: flex; flex-direction: column; gap: 2px; }
  .meta-label { font-size: 11px; font-weight: 600; color: var(--text-faint); text-transform: uppercase; letter-spacing: .05em; }
  .meta-value { font-size: 13px; color: var(--text-dim); font-family: monospace; word-break: break-all; }
  .stats-row { display: flex; gap: 16px; flex-wrap: wrap; margin-bottom: 20px; }
  .stats-card {
    background: var(--bg-card); border: 1px solid var(--border); border-radius: 12px;
    padding: 18px 24px; text-align: center; min-width: 160px; flex: 1;
  }
  .stats-number { font-size: 28px; font-weight: 700; color: var(--accent); }
  .stats-label { font-size: 11px; font-weight: 600; color: var(--text-faint); text-transform: uppercase; letter-spacing: .05em; margin-top: 4px; }
  .controls {
    background: var(--bg-card); border: 1px solid var(--border); border-radius: 12px;
    padding: 20px; margin-bottom: 20px;
  }
  .search-row { display: flex; gap: 12px; align-items: flex-end; flex-wrap: wrap; }
  .control-group { display: flex; flex-direction: column; gap: 4px; min-width: 160px; }
  .control-group.grow { flex: 1; }
  .control-label { font-size: 11px; font-weight: 600; color: var(--text-faint); text-transform: uppercase; letter-spacing: .05em; }
  .search-input, .filter-select {
    background: var(--bg-inset); border: 1px solid var(--border); border-radius: 6px;
    color: var(--text); padding: 8px 12px; font-size: 14px; outline: none;
  }
  .search-input:focus, .filter-select:focus { border-color: var(--accent); }
  .btn {
    padding: 9px 18px; border-radius: 6px; font-size: 13px; font-weight: 600;
    cursor: pointer; border: none;
  }
  .btn-primary { background: var(--accent); color: #fff; }
  .btn-ghost { background: var(--bg-inset); color: var(--text-dim); border: 1px solid var(--border); }
  .btn:hover { opacity: .85; }
  .filter-row {
    display: flex; gap: 12px; flex-wrap: wrap; margin-top: 16px;
    padding-top: 16px; border-top: 1px solid var(--border);
  }
  .table-card {
    background: var(--bg-card); border: 1px solid var(--border); border-radius: 12px;
    overflow: hidden; margin-bottom: 20px;
  }
  .table-wrapper { overflow-x: auto; }
  .data-table { width: 100%; border-collapse: collapse; font-size: 13px; }
  .data-table th {
    padding: 10px 14px; text-align: left; font-size: 11px; font-weight: 600;
    color: var(--text-faint); text-transform: uppercase; letter-spacing: .04em;
    border-bottom: 2px solid var(--border); background: var(--bg-inset);
    white-space: nowrap; position: sticky; top: 0; z-index: 10;
  }
  .data-table th small { font-weight: 400; text-transform: none; color: var(--text-faint); }
  .data-table td {
    padding: 8px 14px; border-bottom: 1px solid var(--border);
    max-width: 360px; overflow: hidden; text-overflow: ellipsis; white-space: nowrap;
  }
  .data-table tr:hover td { background: var(--accent-soft); }
  .num-val { color: var(--num); font-family: monospace; text-align: right; }
  .bool-true { color: var(--ok); }
  .bool-false { color: var(--bad); }
  .null-val { color: var(--text-faint); }
  .row-num { color: var(--text-faint); text-align: right; user-select: none; font-size: 11px; }
  .no-data td { text-align: center; color: var(--text-faint); font-style: italic; padding: 24px; }
  .footer { text-align: center; padding: 16px; font-size: 11px; color: var(--text-faint); }
  @media (max-width: 600px) {
    body { padding: 12px; }
    .page-title { font-size: 20px; }
  }
</style>
`
}

// pageJS returns the embedded behavior script: theme toggle persisted to
// localStorage, global search, per-column dropdown filters, live row stats,
// and export of the currently visible rows as CSV.
func pageJS() string {
	return `<script>
(function () {
  var body = document.body;
  var toggle = document.getElementById('theme-toggle');
  var saved = localStorage.getItem('csv2html-theme');
  if (saved) { body.setAttribute('data-theme', saved); }
  toggle.addEventListener('click', function () {
    var next = body.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
    body.setAttribute('data-theme', next);
    localStorage.setItem('csv2html-theme', next);
  });

  var table = document.getElementById('data-table');
  var rows = Array.prototype.slice.call(table.querySelectorAll('tbody tr:not(.no-data)'));
  var searchInput = document.getElementById('search-input');
  var selects = Array.prototype.slice.call(document.querySelectorAll('.filter-select'));
  var filteredCount = document.getElementById('filtered-rows');

  function cellText(row, col) {
    // +1 skips the row-number cell
    var cell = row.cells[col + 1];
    return cell ? cell.textContent.trim() : '';
  }

  function applyFilters() {
    var term = searchInput.value.toLowerCase();
    var visible = 0;
    rows.forEach(function (row) {
      var show = true;
      selects.forEach(function (sel) {
        if (show && sel.value !== '') {
          show = cellText(row, parseInt(sel.getAttribute('data-column'), 10)) === sel.value;
        }
      });
      if (show && term !== '') {
        show = Array.prototype.slice.call(row.cells, 1).some(function (cell) {
          return cell.textContent.toLowerCase().indexOf(term) !== -1;
        });
      }
      row.style.display = show ? '' : 'none';
      if (show) { visible++; }
    });
    filteredCount.textContent = visible;
  }

  searchInput.addEventListener('input', applyFilters);
  selects.forEach(function (sel) { sel.addEventListener('change', applyFilters); });

  document.getElementById('reset-btn').addEventListener('click', function () {
    searchInput.value = '';
    selects.forEach(function (sel) { sel.value = ''; });
    applyFilters();
  });

  document.getElementById('export-btn').addEventListener('click', function () {
    var quote = function (v) { return '"' + v.replace(/"/g, '""') + '"'; };
    var headers = Array.prototype.slice.call(table.querySelectorAll('thead th'), 1)
      .map(function (th) { return quote(th.childNodes[0].textContent); });
    var lines = [headers.join(',')];
    rows.forEach(function (row) {
      if (row.style.display === 'none') { return; }
      var cells = Array.prototype.slice.call(row.cells, 1)
        .map(function (cell) { return quote(cell.textContent); });
      lines.push(cells.join(','));
    });
    var blob = new Blob([lines.join('\n')], { type: 'text/csv;charset=utf-8;' });
    var link = document.createElement('a');
    link.href = URL.createObjectURL(blob);
    link.download = 'exported_data.csv';
    document.body.appendChild(link);
    link.click();
    document.body.removeChild(link);
  });
})();
</script>
`
}
