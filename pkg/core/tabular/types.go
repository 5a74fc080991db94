package tabular

import (
	"errors"
	"strconv"
	"strings"
)

// Error kinds reported by the conversion pipeline. Everything else is
// normalized silently: ragged rows are padded or truncated and malformed
// quoting is recovered, never rejected.
var (
	// ErrInputNotFound indicates the input file is missing or unreadable.
	ErrInputNotFound = errors.New("input file not found")
	// ErrEmptyInput indicates the input contains no data after trimming.
	ErrEmptyInput = errors.New("input is empty")
	// ErrEncoding indicates the input bytes could not be decoded to text.
	ErrEncoding = errors.New("input encoding is invalid")
)

// Row is an ordered sequence of field values for one line of input.
type Row []string

// Table holds one parsed document: a header row plus data rows.
// After parsing every row has exactly len(Header) fields.
type Table struct {
	Name      string // source name, usually the input file stem
	Delimiter rune   // delimiter the document was parsed with
	Header    Row
	Rows      []Row
}

// ColumnCount returns the number of columns, taken from the header.
func (t *Table) ColumnCount() int {
	return len(t.Header)
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnKind classifies the values of one column for display purposes.
// Inference is cosmetic: all values remain strings.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindReal
	KindBoolean
)

// String returns a lowercase label for the kind, used in column headers.
func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// ColumnKinds infers a kind per column from the data rows. Empty values are
// treated as nulls and do not influence the result; a column whose non-empty
// values all parse as integers is KindInteger, all as floats KindReal, all
// as true/false KindBoolean, anything else KindText. A column with no
// non-empty values is KindText.
func (t *Table) ColumnKinds() []ColumnKind {
	kinds := make([]ColumnKind, len(t.Header))
	for col := range t.Header {
		kinds[col] = inferKind(t.Rows, col)
	}
	return kinds
}

func inferKind(rows []Row, col int) ColumnKind {
	seen := false
	isInt, isReal, isBool := true, true, true

	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		seen = true
		v := row[col]

		if isInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				isInt = false
			}
		}
		if isReal {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				isReal = false
			}
		}
		if isBool {
			if !strings.EqualFold(v, "true") && !strings.EqualFold(v, "false") {
				isBool = false
			}
		}
		if !isInt && !isReal && !isBool {
			return KindText
		}
	}

	switch {
	case !seen:
		return KindText
	case isInt:
		return KindInteger
	case isReal:
		return KindReal
	case isBool:
		return KindBoolean
	default:
		return KindText
	}
}
