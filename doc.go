// Package compatlist turns compatibility list markup into an HTML table,
// and optionally a PDF.
//
// # Quick Start
//
//	conv, err := compatlist.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, compatlist.Input{Source: src})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.HTML)
//
// # Markup
//
// The input is line oriented. Every line keeps its newline, which becomes
// part of the cell text it lands in.
//
//	# comment
//	<Super Mario 64=http://example.com/sm64>
//	[Video::Status]
//	Works
//	[Audio]
//	Crackles in menus
//	!img shots/sm64.png
//
// A line starting with '<' opens an entry, titled by the text up to the last
// '>'. A "name=url" title is rendered as a link. A line starting with '['
// selects a column for the following lines, named by the text up to the last
// ']'. A "major::minor" name groups the column under a spanning header.
// The "!img" directive appends linked thumbnails; other text is appended
// verbatim. Lines before any entry or column header are ignored.
//
// A missing closing bracket is reported as a *FormatError, which matches
// ErrMalformedMarkup.
//
// # Layers
//
// Parse builds a Table. BuildDocument lays the table out as header and body
// rows, filling missing cells with a placeholder. HTMLWriter serializes the
// Document through an html/template. Converter wires these together with
// front matter, styles, Markdown cells and PDF printing.
//
// # PDF
//
// PDF output uses headless Chrome through go-rod, which downloads Chromium
// on first use unless ROD_BROWSER_BIN points to an installed browser.
// Relative image paths resolve against Input.SourceDir.
package compatlist
