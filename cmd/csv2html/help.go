package main

import "fmt"

const version = "1.2.0"

// PrintVersion displays version information
func PrintVersion() {
	fmt.Printf("csv2html v%s\n", version)
	fmt.Println("Delimited text to browsable HTML converter")
}

// PrintShortHelp displays brief usage information
func PrintShortHelp() {
	fmt.Println("csv2html - delimited text to browsable HTML converter")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  csv2html [options] <input-file>")
	fmt.Println("  csv2html --to-xlsx <input-file> [options]")
	fmt.Println("  csv2html --to-sqlite <input-file> [options]")
	fmt.Println("  csv2html --to-csv <input-file> [options]")
	fmt.Println()
	fmt.Println("Use --help for detailed help with examples")
}

// PrintHelp displays detailed usage information with examples
func PrintHelp() {
	fmt.Println("csv2html - delimited text to browsable HTML converter")
	fmt.Println()
	fmt.Println("Reads CSV and other delimited text files (comma, semicolon, tab or")
	fmt.Println("pipe separated, detected automatically) and produces a standalone")
	fmt.Println("HTML page with search, filtering and a dark mode. Can also")
	fmt.Println("export to XLSX, SQLite and normalized CSV.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  csv2html [options] <input-file>")
	fmt.Println()
	fmt.Println("EXPORT TARGETS:")
	fmt.Println("  (default)               Convert to a standalone HTML page")
	fmt.Println("  --to-xlsx <file>        Convert to an Excel workbook")
	fmt.Println("  --to-sqlite <file>      Load into a SQLite database")
	fmt.Println("  --to-csv <file>         Re-emit as normalized CSV")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --output <file>         Output file path (default: input name with new extension)")
	fmt.Println("  --title <text>          Custom title for the HTML page")
	fmt.Println("  --delimiter <d>         Input delimiter override: ',' ';' 'tab' 'pipe'")
	fmt.Println("  --out-delimiter <d>     Output delimiter for --to-csv (default ',')")
	fmt.Println("  --sheet <name>          Excel sheet name for --to-xlsx")
	fmt.Println("  --table <name>          Table name for --to-sqlite")
	fmt.Println("  --theme <t>             Initial HTML theme: light or dark")
	fmt.Println("  --limit <n>             Max rows in HTML output (negative: last N rows)")
	fmt.Println("  --row <a-b>             Row range for HTML output, e.g. 100-150")
	fmt.Println("  --open                  Open the generated HTML in the default browser")
	fmt.Println("  --hash                  Embed an XXH3 checksum of the source in the HTML")
	fmt.Println("  --config <file>         Configuration file with defaults")
	fmt.Println("  --create-config         Create a sample config file (csv2html.yaml)")
	fmt.Println("  --version               Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Convert a CSV file to HTML and open it")
	fmt.Println("  csv2html --open data.csv")
	fmt.Println()
	fmt.Println("  # Semicolon-separated input, dark theme, custom title")
	fmt.Println("  csv2html --delimiter ';' --theme dark --title \"Sales Q3\" sales.txt")
	fmt.Println()
	fmt.Println("  # First 500 rows only, with a source checksum")
	fmt.Println("  csv2html --limit 500 --hash big-export.csv.gz")
	fmt.Println()
	fmt.Println("  # Export to Excel with a named sheet")
	fmt.Println("  csv2html --to-xlsx data.csv --sheet Report")
	fmt.Println()
	fmt.Println("  # Load into SQLite for ad-hoc queries")
	fmt.Println("  csv2html --to-sqlite data.csv --table measurements")
	fmt.Println()
	fmt.Println("  # Normalize a pipe-separated file into plain CSV")
	fmt.Println("  csv2html --to-csv legacy.txt --output clean.csv")
	fmt.Println()
	fmt.Println("INPUT FORMAT:")
	fmt.Println("  The first row is treated as the header. The delimiter is detected")
	fmt.Println("  from the first 10 lines unless overridden. Inputs ending in .gz")
	fmt.Println("  are decompressed transparently. Non-UTF-8 input falls back to")
	fmt.Println("  Windows-1252 decoding.")
}
