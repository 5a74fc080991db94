package tabular

import "strings"

// Parser turns delimited text into a Table.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits text into rows and fields using the given delimiter and
// returns a normalized Table: the first record becomes the header, short data
// rows are right-padded with empty strings and long rows are truncated to the
// header width. Blank lines are skipped. Returns ErrEmptyInput when the text
// holds no records.
func (p *Parser) Parse(text string, delim rune) (*Table, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	records := p.scan(text, delim)
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := Row(records[0])
	width := len(header)

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, width)
		for i := 0; i < width && i < len(rec); i++ {
			row[i] = rec[i]
		}
		rows = append(rows, row)
	}

	return &Table{Delimiter: delim, Header: header, Rows: rows}, nil
}

// scan performs a single pass over the text, honoring quoting rules:
// a field starting with `"` may contain delimiters and newlines, and `""`
// escapes a literal quote. Quoted content is preserved verbatim; unquoted
// fields are trimmed of surrounding whitespace. An unterminated quote at end
// of input folds the remainder into the final field.
func (p *Parser) scan(text string, delim rune) [][]string {
	var records [][]string
	var fields []string
	var cur strings.Builder
	quoted := false   // current field contains a quoted section
	inQuotes := false // currently inside a quoted section

	finishField := func() {
		v := cur.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}
		fields = append(fields, v)
		cur.Reset()
		quoted = false
	}
	finishRecord := func() {
		finishField()
		if len(fields) == 1 && fields[0] == "" {
			// blank line
			fields = nil
			return
		}
		records = append(records, fields)
		fields = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]

		if inQuotes {
			if r == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			cur.WriteRune(r)
			i++
			continue
		}

		switch {
		case r == '"' && !quoted && strings.TrimSpace(cur.String()) == "":
			// Opening quote; leading whitespace before it is dropped.
			cur.Reset()
			quoted = true
			inQuotes = true
			i++
		case r == delim:
			finishField()
			i++
		case r == '\n':
			finishRecord()
			i++
		case r == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			finishRecord()
			i++
		default:
			cur.WriteRune(r)
			i++
		}
	}

	if cur.Len() > 0 || len(fields) > 0 || quoted || inQuotes {
		finishRecord()
	}

	return records
}
