package main

import "flag"

// Flags holds all command-line flags
type Flags struct {
	// Alternative export targets (default: positional input converts to HTML)
	ToXLSX   *string
	ToSQLite *string
	ToCSV    *string

	// Options
	Config       *string
	Output       *string
	Title        *string
	Delimiter    *string // input delimiter override, bypasses detection
	OutDelimiter *string // output delimiter for --to-csv
	Sheet        *string
	Table        *string
	Theme        *string
	Limit        *int
	Row          *string // row range for HTML output, e.g. "100-150"
	OpenBrowser  *bool
	Hash         *bool

	// Config Creation
	CreateConfig *bool

	// Misc
	Version   *bool
	Help      *bool
	ShortHelp *bool
}

// ParseFlags defines and parses all command-line flags
func ParseFlags() *Flags {
	f := &Flags{}

	// Alternative export targets
	f.ToXLSX = flag.String("to-xlsx", "", "Convert delimited file to XLSX (input file path)")
	f.ToSQLite = flag.String("to-sqlite", "", "Load delimited file into a SQLite database (input file path)")
	f.ToCSV = flag.String("to-csv", "", "Re-emit delimited file as normalized CSV (input file path)")

	// Options
	f.Config = flag.String("config", "", "Configuration file path (optional)")
	f.Output = flag.String("output", "", "Output file path (default: input name with new extension)")
	f.Title = flag.String("title", "", "Custom title for the HTML page")
	f.Delimiter = flag.String("delimiter", "", "Input delimiter override: ',' ';' 'tab' 'pipe' (default: auto-detect)")
	f.OutDelimiter = flag.String("out-delimiter", "", "Output delimiter for --to-csv (default ',')")
	f.Sheet = flag.String("sheet", "", "Excel sheet name for --to-xlsx (default: input file stem)")
	f.Table = flag.String("table", "", "Table name for --to-sqlite (default: input file stem)")
	f.Theme = flag.String("theme", "", "Initial HTML theme: light or dark (default: light)")
	f.Limit = flag.Int("limit", 0, "Max rows in HTML output: positive = first N, negative = last N (0 = all)")
	f.Row = flag.String("row", "", "Row range for HTML output, e.g. 100-150")
	f.OpenBrowser = flag.Bool("open", false, "Open generated HTML file in default browser")
	f.Hash = flag.Bool("hash", false, "Embed an XXH3 checksum of the source file in the HTML metadata")

	// Config Creation
	f.CreateConfig = flag.Bool("create-config", false, "Create a sample config file")

	// Misc
	f.Version = flag.Bool("version", false, "Show version information")
	f.Help = flag.Bool("help", false, "Show detailed help with examples")
	f.ShortHelp = flag.Bool("h", false, "Show brief help")

	flag.Parse()

	return f
}
