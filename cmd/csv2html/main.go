package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	// Parse flags
	flags := ParseFlags()

	// Handle version
	if *flags.Version {
		PrintVersion()
		os.Exit(0)
	}

	// Handle help
	if *flags.Help {
		PrintHelp()
		os.Exit(0)
	}
	if *flags.ShortHelp {
		PrintShortHelp()
		os.Exit(0)
	}

	// Handle config creation
	if *flags.CreateConfig {
		createConfigTemplate()
		return
	}

	// Load configuration
	config, err := LoadConfig(*flags.Config)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	opts, err := buildConvertOptions(flags, config)
	if err != nil {
		fatal("Invalid options: %v", err)
	}

	// Route commands
	var cmdErr error

	if *flags.ToXLSX != "" {
		opts.InputFile = *flags.ToXLSX
		cmdErr = ConvertToXLSX(opts)
	} else if *flags.ToSQLite != "" {
		opts.InputFile = *flags.ToSQLite
		cmdErr = ConvertToSQLite(opts)
	} else if *flags.ToCSV != "" {
		opts.InputFile = *flags.ToCSV
		cmdErr = ConvertToCSV(opts)
	} else if flag.NArg() > 0 {
		opts.InputFile = flag.Arg(0)
		cmdErr = ConvertToHTML(opts)
	} else {
		PrintShortHelp()
		os.Exit(1)
	}

	if cmdErr != nil {
		fatal("Command failed: %v", cmdErr)
	}
}

// buildConvertOptions merges config file defaults with command-line flags.
// Flags win over config values.
func buildConvertOptions(flags *Flags, config *Config) (ConvertOptions, error) {
	opts := ConvertOptions{
		OutputFile:  *flags.Output,
		Title:       *flags.Title,
		Theme:       *flags.Theme,
		Limit:       *flags.Limit,
		Hash:        *flags.Hash,
		SheetName:   *flags.Sheet,
		TableName:   *flags.Table,
		OpenBrowser: *flags.OpenBrowser,
	}

	if opts.Title == "" {
		opts.Title = config.Defaults.Title
	}
	if opts.Theme == "" {
		opts.Theme = config.Defaults.Theme
	}
	if opts.Limit == 0 {
		opts.Limit = config.Defaults.Limit
	}
	if !opts.Hash {
		opts.Hash = config.Defaults.Hash
	}

	delimFlag := *flags.Delimiter
	if delimFlag == "" {
		delimFlag = config.Defaults.Delimiter
	}
	if delimFlag != "" {
		d, err := parseDelimiter(delimFlag)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = d
	}

	if *flags.OutDelimiter != "" {
		d, err := parseDelimiter(*flags.OutDelimiter)
		if err != nil {
			return opts, err
		}
		opts.OutComma = d
	}

	start, end, err := parseRowRange(*flags.Row)
	if err != nil {
		return opts, err
	}
	opts.RowStart = start
	opts.RowEnd = end

	return opts, nil
}

// parseDelimiter maps a delimiter spelling to its rune. Named forms exist
// because a literal tab is awkward to pass on a command line.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab", "\\t":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	}
	return 0, fmt.Errorf("unsupported delimiter %q (use ',' ';' 'tab' or 'pipe')", s)
}

// createConfigTemplate creates a sample configuration file
func createConfigTemplate() {
	config := CreateSampleConfig()

	if err := SaveConfig("csv2html.yaml", config); err != nil {
		fatal("Failed to save config: %v", err)
	}

	fmt.Println("✓ Created sample config: csv2html.yaml")
	fmt.Println("Edit the defaults and run:")
	fmt.Println("  csv2html --config csv2html.yaml data.csv")
}

// fatal prints error and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
