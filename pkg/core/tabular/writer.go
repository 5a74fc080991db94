package tabular

import (
	"bufio"
	"io"
	"strings"
)

// Writer re-emits a normalized table as delimited text with RFC 4180 style
// quoting: fields containing the delimiter, a quote, CR or LF are wrapped in
// double quotes, with internal quotes doubled.
type Writer struct {
	dst *bufio.Writer

	// Comma is the output field delimiter. Default is ','.
	Comma rune
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		dst:   bufio.NewWriter(w),
		Comma: ',',
	}
}

// WriteTable writes the header row followed by every data row.
// Call Flush afterwards to push buffered output to the destination.
func (w *Writer) WriteTable(t *Table) error {
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Write emits a single record terminated with '\n'.
func (w *Writer) Write(record Row) error {
	delim := w.Comma
	if delim == 0 {
		delim = ','
	}

	for i, field := range record {
		if i > 0 {
			if _, err := w.dst.WriteRune(delim); err != nil {
				return err
			}
		}
		if err := w.writeField(field, delim); err != nil {
			return err
		}
	}
	return w.dst.WriteByte('\n')
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.dst.Flush()
}

func (w *Writer) writeField(field string, delim rune) error {
	if !fieldNeedsQuote(field, delim) {
		_, err := w.dst.WriteString(field)
		return err
	}

	if err := w.dst.WriteByte('"'); err != nil {
		return err
	}
	if _, err := w.dst.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
		return err
	}
	return w.dst.WriteByte('"')
}

func fieldNeedsQuote(field string, delim rune) bool {
	return strings.ContainsAny(field, "\"\r\n") || strings.ContainsRune(field, delim)
}
