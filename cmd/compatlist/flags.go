package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that affect every run.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds page text flags.
type documentFlags struct {
	title       string
	heading     string
	description string
}

// tableFlags holds table layout flags.
type tableFlags struct {
	index       bool
	markdown    bool
	placeholder string
	imgWidth    int
	imgHeight   int
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	style     string // name or CSS file path
	assetPath string // custom asset directory
	noStyle   bool
}

// cliFlags holds all command-line flags.
type cliFlags struct {
	common   commonFlags
	output   string
	pdf      string
	timeout  string
	document documentFlags
	table    tableFlags
	page     pageFlags
	assets   assetFlags
	version  bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show counts and timing")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.heading, "heading", "", "heading above the table")
	fs.StringVar(&f.description, "description", "", "paragraph under the heading")
}

func addTableFlags(fs *flag.FlagSet, f *tableFlags) {
	fs.BoolVar(&f.index, "index", false, "add a numbered quick-jump index of titles")
	fs.BoolVar(&f.markdown, "markdown", false, "render cell text as Markdown")
	fs.StringVar(&f.placeholder, "placeholder", "", "HTML for missing cells (default &nbsp;)")
	fs.IntVar(&f.imgWidth, "img-width", 0, "thumbnail width in pixels (default 64)")
	fs.IntVar(&f.imgHeight, "img-height", 0, "thumbnail height in pixels (default 48)")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "PDF page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "PDF orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "PDF margin in inches (0.25-3.0)")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("compatlist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write HTML to a file instead of stdout")
	fs.StringVar(&f.pdf, "pdf", "", "also render a PDF to this path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addTableFlags(fs, &f.table)
	addPageFlags(fs, &f.page)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
