package compatlist

import (
	"html/template"
	"strconv"
)

// Rendering defaults.
const (
	DefaultPlaceholder = "&nbsp;"
	DefaultPageTitle   = "Compatibility List"
	DefaultHeading     = "Compatibility List"
	titleHeader        = "Title"
	anchorPrefix       = "entry-"
)

// RenderOptions controls how a Table becomes a Document.
type RenderOptions struct {
	PageTitle   string // <title> text (default: DefaultPageTitle)
	Heading     string // heading above the table (default: DefaultHeading)
	Description string // optional paragraph under the heading
	Placeholder string // HTML for missing cells (default: DefaultPlaceholder)
	Index       bool   // emit a quick-jump index and per-row anchors
}

// Document is the presentation model of a compatibility table.
// Fields typed template.HTML carry markup authored in the source file.
type Document struct {
	PageTitle   string
	Heading     string
	Description string
	Index       []IndexItem
	Header      [][]HeaderCell
	Rows        []Row
}

// IndexItem links to one row of the table.
type IndexItem struct {
	Anchor string
	Label  template.HTML
}

// HeaderCell is one <th>. ColSpan is 0 for a plain cell.
type HeaderCell struct {
	Text    string
	ColSpan int
}

// Row is one entry of the table.
type Row struct {
	Anchor string // empty unless the index is enabled
	Title  template.HTML
	Cells  []Cell
}

// Cell is one <td>. ColSpan is 0 for a plain cell.
type Cell struct {
	Content template.HTML
	ColSpan int
	Missing bool
}

// BuildDocument lays out t as header rows and body rows.
// Missing cells become placeholders; it never fails.
func BuildDocument(t *Table, opts RenderOptions) *Document {
	opts = opts.withDefaults()

	doc := &Document{
		PageTitle:   opts.PageTitle,
		Heading:     opts.Heading,
		Description: opts.Description,
		Header:      buildHeader(t.Columns),
		Rows:        make([]Row, 0, len(t.Entries)),
	}

	for i, e := range t.Entries {
		row := Row{
			Title: template.HTML(e.Title), // #nosec G203 -- title markup comes from the source file
			Cells: buildCells(t.Columns, e, opts.Placeholder),
		}
		if opts.Index {
			row.Anchor = anchorPrefix + strconv.Itoa(i+1)
			doc.Index = append(doc.Index, IndexItem{
				Anchor: row.Anchor,
				Label:  template.HTML(e.Name), // #nosec G203 -- see above
			})
		}
		doc.Rows = append(doc.Rows, row)
	}

	return doc
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.PageTitle == "" {
		o.PageTitle = DefaultPageTitle
	}
	if o.Heading == "" {
		o.Heading = DefaultHeading
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	return o
}

// buildHeader returns the major row and the minor row.
func buildHeader(columns []Column) [][]HeaderCell {
	majors := []HeaderCell{{Text: titleHeader}}
	minors := []HeaderCell{{}}

	for _, c := range columns {
		if c.IsGrouped() {
			majors = append(majors, HeaderCell{Text: c.Name, ColSpan: c.Span()})
			for _, m := range c.Minors {
				minors = append(minors, HeaderCell{Text: m})
			}
			continue
		}
		majors = append(majors, HeaderCell{Text: c.Name})
		minors = append(minors, HeaderCell{})
	}

	return [][]HeaderCell{majors, minors}
}

func buildCells(columns []Column, e Entry, placeholder string) []Cell {
	var cells []Cell
	for _, c := range columns {
		if !c.IsGrouped() {
			cells = append(cells, lookupCell(e, c.Name, placeholder))
			continue
		}

		// A cell under the bare major spans every minor.
		if content, ok := e.Cell(c.Name); ok {
			cells = append(cells, Cell{Content: template.HTML(content), ColSpan: c.Span()}) // #nosec G203
			continue
		}
		for _, m := range c.Minors {
			cells = append(cells, lookupCell(e, CellKey(c.Name, m), placeholder))
		}
	}
	return cells
}

func lookupCell(e Entry, key, placeholder string) Cell {
	content, ok := e.Cell(key)
	if !ok {
		return Cell{Content: template.HTML(placeholder), Missing: true} // #nosec G203
	}
	return Cell{Content: template.HTML(content)} // #nosec G203
}
