package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: compatlist [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a compatibility list file to an HTML table.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Write HTML to a file (default: stdout)")
	fmt.Fprintln(w, "      --pdf <path>          Also render a PDF (requires Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Page title")
	fmt.Fprintln(w, "      --heading <s>         Heading above the table")
	fmt.Fprintln(w, "      --description <s>     Paragraph under the heading")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table:")
	fmt.Fprintln(w, "      --index               Numbered quick-jump index of titles")
	fmt.Fprintln(w, "      --markdown            Render cell text as Markdown")
	fmt.Fprintln(w, "      --placeholder <html>  Content of missing cells (default: &nbsp;)")
	fmt.Fprintln(w, "      --img-width <n>       Thumbnail width for !img (default: 64)")
	fmt.Fprintln(w, "      --img-height <n>      Thumbnail height for !img (default: 48)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (PDF):")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show counts and timing")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  COMPATLIST_CONFIG         Config file (overridden by --config)")
	fmt.Fprintln(w, "  COMPATLIST_STYLE          Style name or path")
	fmt.Fprintln(w, "  COMPATLIST_TIMEOUT        PDF generation timeout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general, 2 usage/config, 3 I/O, 4 browser, 5 malformed markup")
}
