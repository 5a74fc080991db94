package htmlview

import (
	"fmt"
	"html"
	"strings"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
)

// RenderTable renders a parsed table as an HTML <table> fragment. Every cell
// value is escaped before insertion; column order follows the header row.
// A table with zero data rows gets an explicit "no data" indicator row.
func RenderTable(t *tabular.Table, tableID string) string {
	var b strings.Builder
	WriteTable(&b, t, tableID)
	return b.String()
}

// WriteTable writes the table fragment into b. Cells are classed by the
// inferred column kind so numbers right-align and booleans get colored.
func WriteTable(b *strings.Builder, t *tabular.Table, tableID string) {
	kinds := t.ColumnKinds()

	b.WriteString(`<table class="data-table" id="` + html.EscapeString(tableID) + `">`)

	b.WriteString(`<thead><tr>`)
	b.WriteString(`<th class="row-num">#</th>`)
	for i, name := range t.Header {
		b.WriteString(fmt.Sprintf(`<th>%s<br><small>%s</small></th>`,
			html.EscapeString(name), kinds[i].String()))
	}
	b.WriteString(`</tr></thead><tbody>`)

	if len(t.Rows) == 0 {
		b.WriteString(fmt.Sprintf(`<tr class="no-data"><td colspan="%d">no data</td></tr>`,
			len(t.Header)+1))
	}

	for i, row := range t.Rows {
		b.WriteString(`<tr>`)
		b.WriteString(fmt.Sprintf(`<td class="row-num">%d</td>`, i+1))
		for col, val := range row {
			writeCell(b, val, kinds[col])
		}
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
}

func writeCell(b *strings.Builder, val string, kind tabular.ColumnKind) {
	if val == "" {
		b.WriteString(`<td class="null-val"></td>`)
		return
	}

	switch kind {
	case tabular.KindInteger, tabular.KindReal:
		b.WriteString(`<td class="num-val">` + html.EscapeString(val) + `</td>`)
	case tabular.KindBoolean:
		cls := "bool-false"
		if strings.EqualFold(val, "true") {
			cls = "bool-true"
		}
		b.WriteString(`<td><span class="` + cls + `">` + html.EscapeString(val) + `</span></td>`)
	default:
		b.WriteString(`<td>` + html.EscapeString(val) + `</td>`)
	}
}

// DelimiterLabel returns a human-readable name for a delimiter rune,
// used in page metadata.
func DelimiterLabel(r rune) string {
	switch r {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return string(r)
	}
}
