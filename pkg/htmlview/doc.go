// Package htmlview renders parsed tables as HTML: a bare <table> fragment
// via RenderTable, or a complete self-contained document via RenderPage with
// embedded styling, search, per-column filters, and a persisted theme toggle.
// All cell content is escaped; rendering is a pure function of the table and
// options, so identical input yields byte-identical output.
package htmlview
