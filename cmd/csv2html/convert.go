package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/xxh3"

	"github.com/krystianbajno/csv2html/pkg/core/tabular"
	"github.com/krystianbajno/csv2html/pkg/htmlview"
	"github.com/krystianbajno/csv2html/pkg/sqlitex"
	"github.com/krystianbajno/csv2html/pkg/xlsx"
)

// ConvertOptions holds options shared by all conversion targets
type ConvertOptions struct {
	InputFile  string
	OutputFile string // if empty, auto-generated next to input file
	Title      string
	Delimiter  rune   // 0 = auto-detect
	Theme      string // initial HTML theme
	Limit      int    // max rows to render (0 = all)
	RowStart   int    // first row to render, 1-indexed (0 = from beginning)
	RowEnd     int    // last row to render, 1-indexed inclusive (0 = to end)
	Hash       bool   // embed source checksum in HTML metadata
	OutComma   rune   // output delimiter for CSV re-export
	SheetName  string // sheet name for XLSX
	TableName  string // table name for SQLite
	OpenBrowser bool
}

// ConvertToHTML converts a delimited text file to a standalone HTML page.
func ConvertToHTML(opts ConvertOptions) error {
	table, raw, err := loadTable(opts.InputFile, opts.Delimiter)
	if err != nil {
		return err
	}

	outputFile := determineOutputFile(opts.OutputFile, opts.InputFile, "html")

	pageOpts := htmlview.PageOptions{
		Title:       opts.Title,
		SourceName:  filepath.Base(opts.InputFile),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Delimiter:   table.Delimiter,
		Theme:       opts.Theme,
	}
	if pageOpts.Title == "" {
		pageOpts.Title = "Data from " + table.Name
	}
	if opts.Hash {
		pageOpts.Checksum = fmt.Sprintf("xxh3:%016x", xxh3.Hash(raw))
	}

	totalRows := table.RowCount()
	rendered := applyRowWindow(table, opts)

	content := htmlview.RenderPage(rendered, pageOpts)
	if err := os.WriteFile(outputFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	fmt.Printf("HTML table: %s\n", outputFile)
	fmt.Printf("  Delimiter: %s\n", htmlview.DelimiterLabel(table.Delimiter))
	fmt.Printf("  Columns:   %d\n", table.ColumnCount())
	if rendered.RowCount() < totalRows {
		fmt.Printf("  Rows:      %d / %d\n", rendered.RowCount(), totalRows)
	} else {
		fmt.Printf("  Rows:      %d\n", totalRows)
	}

	if opts.OpenBrowser {
		openInBrowser(outputFile)
	}

	return nil
}

// ConvertToXLSX converts a delimited text file to an Excel workbook.
func ConvertToXLSX(opts ConvertOptions) error {
	table, _, err := loadTable(opts.InputFile, opts.Delimiter)
	if err != nil {
		return err
	}

	outputFile := determineOutputFile(opts.OutputFile, opts.InputFile, "xlsx")
	if err := xlsx.ToXLSX(table, outputFile, opts.SheetName); err != nil {
		return fmt.Errorf("failed to write XLSX file: %w", err)
	}

	fmt.Printf("XLSX file: %s\n", outputFile)
	fmt.Printf("  Columns: %d\n", table.ColumnCount())
	fmt.Printf("  Rows:    %d\n", table.RowCount())
	return nil
}

// ConvertToSQLite loads a delimited text file into a SQLite database.
func ConvertToSQLite(opts ConvertOptions) error {
	table, _, err := loadTable(opts.InputFile, opts.Delimiter)
	if err != nil {
		return err
	}

	outputFile := determineOutputFile(opts.OutputFile, opts.InputFile, "db")
	if err := sqlitex.Export(context.Background(), table, outputFile, opts.TableName); err != nil {
		return fmt.Errorf("failed to export to SQLite: %w", err)
	}

	fmt.Printf("SQLite database: %s\n", outputFile)
	fmt.Printf("  Columns: %d\n", table.ColumnCount())
	fmt.Printf("  Rows:    %d\n", table.RowCount())
	return nil
}

// ConvertToCSV re-emits a delimited text file as normalized CSV with the
// chosen output delimiter.
func ConvertToCSV(opts ConvertOptions) error {
	table, _, err := loadTable(opts.InputFile, opts.Delimiter)
	if err != nil {
		return err
	}

	outputFile := determineOutputFile(opts.OutputFile, opts.InputFile, "normalized.csv")

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := tabular.NewWriter(f)
	if opts.OutComma != 0 {
		w.Comma = opts.OutComma
	}
	if err := w.WriteTable(table); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	fmt.Printf("Normalized CSV: %s\n", outputFile)
	fmt.Printf("  Rows: %d\n", table.RowCount())
	return nil
}

// loadTable reads, decodes, and parses an input file. Inputs ending in .gz
// are decompressed transparently. Returns the parsed table and the raw input
// bytes (after decompression) for checksumming.
func loadTable(inputFile string, delim rune) (*tabular.Table, []byte, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", tabular.ErrInputNotFound, err)
	}

	if strings.HasSuffix(inputFile, ".gz") {
		data, err = gunzip(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decompress input: %w", err)
		}
	}

	text, err := tabular.Decode(data)
	if err != nil {
		return nil, nil, err
	}

	if delim == 0 {
		delim = tabular.Detect(text)
	}

	table, err := tabular.NewParser().Parse(text, delim)
	if err != nil {
		return nil, nil, err
	}
	table.Name = inputStem(inputFile)

	return table, data, nil
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// applyRowWindow applies --row and --limit to the table rows, mirroring the
// 1-indexed inclusive range semantics. A negative limit keeps the last N
// rows, like tail -n. Returns a shallow copy; the input table is unchanged.
func applyRowWindow(t *tabular.Table, opts ConvertOptions) *tabular.Table {
	total := len(t.Rows)
	start, end := 0, total

	if opts.RowStart > 0 {
		start = opts.RowStart - 1
		if start > total {
			start = total
		}
	}
	if opts.RowEnd > 0 {
		end = opts.RowEnd
		if end > total {
			end = total
		}
	}
	if end < start {
		end = start
	}

	if opts.Limit > 0 {
		if end-start > opts.Limit {
			end = start + opts.Limit
		}
	} else if opts.Limit < 0 {
		wanted := -opts.Limit
		if end-start > wanted {
			start = end - wanted
		}
	}

	windowed := *t
	windowed.Rows = t.Rows[start:end]
	return &windowed
}

// parseRowRange parses a "start-end" row range like "100-150".
func parseRowRange(s string) (start, end int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid row range %q (expected start-end)", s)
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &start); err != nil {
		return 0, 0, fmt.Errorf("invalid row range start %q", parts[0])
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &end); err != nil {
		return 0, 0, fmt.Errorf("invalid row range end %q", parts[1])
	}
	return start, end, nil
}

// determineOutputFile determines the output file name: an explicit --output
// wins, otherwise the input name with its extension swapped.
func determineOutputFile(output, inputFile, ext string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(inputFile, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + ext
}

// inputStem returns the input file name without directory or extension.
func inputStem(inputFile string) string {
	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// openInBrowser attempts to open a file in the default system browser
func openInBrowser(filePath string) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}
	url := "file://" + absPath

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("  (could not open browser: %v)\n", err)
		fmt.Printf("  Open manually: %s\n", url)
	}
}
