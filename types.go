package compatlist

import "strings"

// KeySeparator joins a grouped column's major and minor names into a cell key.
const KeySeparator = "::"

// ColumnKind tags a Column as simple or grouped.
type ColumnKind int

const (
	// Simple is a single named data field.
	Simple ColumnKind = iota
	// Grouped is a major name spanning an ordered set of minor sub-columns.
	Grouped
)

// String returns the kind name.
func (k ColumnKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Grouped:
		return "grouped"
	default:
		return "unknown"
	}
}

// Column describes one column of the table schema.
// For Grouped columns, Name is the major name and Minors lists the
// sub-columns in first-seen order, without duplicates.
type Column struct {
	Kind   ColumnKind
	Name   string
	Minors []string
}

// SimpleColumn returns a Simple column descriptor.
func SimpleColumn(name string) Column {
	return Column{Kind: Simple, Name: name}
}

// GroupedColumn returns a Grouped column descriptor.
func GroupedColumn(major string, minors ...string) Column {
	return Column{Kind: Grouped, Name: major, Minors: minors}
}

// Key returns the column's identity key.
func (c Column) Key() string {
	return c.Name
}

// IsGrouped reports whether the column has minor sub-columns.
func (c Column) IsGrouped() bool {
	return c.Kind == Grouped
}

// Span returns the number of table cells the column occupies.
func (c Column) Span() int {
	if c.Kind == Grouped {
		return len(c.Minors)
	}
	return 1
}

// hasMinor reports whether minor is already listed.
func (c Column) hasMinor(minor string) bool {
	for _, m := range c.Minors {
		if m == minor {
			return true
		}
	}
	return false
}

// CellKey returns the fully-qualified cell key for a grouped sub-column.
func CellKey(major, minor string) string {
	return major + KeySeparator + minor
}

// SplitKey splits a cell key on the first KeySeparator.
// ok is false for simple keys.
func SplitKey(key string) (major, minor string, ok bool) {
	return strings.Cut(key, KeySeparator)
}

// Entry is one titled row of the table.
type Entry struct {
	Title string            // HTML shown in the title cell
	Name  string            // visible text of the title
	URL   string            // link target from "name=url" titles, or empty
	Cells map[string]string // cell content by column key
	Keys  []string          // cell keys in first-seen order
}

// Cell returns the content stored under key.
func (e Entry) Cell(key string) (string, bool) {
	v, ok := e.Cells[key]
	return v, ok
}

// CellOr returns the content stored under key, or fallback when absent.
func (e Entry) CellOr(key, fallback string) string {
	if v, ok := e.Cells[key]; ok {
		return v
	}
	return fallback
}

// Table is the normalized model produced by the parser.
type Table struct {
	Columns []Column
	Entries []Entry
}

// Column returns the descriptor with the given identity key.
func (t *Table) Column(key string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Key() == key {
			return c, true
		}
	}
	return Column{}, false
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.Entries)
}

// MapCells returns a copy of the table with fn applied to every cell.
// The receiver is not modified. The first error aborts the copy.
func (t *Table) MapCells(fn func(key, content string) (string, error)) (*Table, error) {
	out := &Table{
		Columns: make([]Column, len(t.Columns)),
		Entries: make([]Entry, len(t.Entries)),
	}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Kind: c.Kind, Name: c.Name, Minors: append([]string(nil), c.Minors...)}
	}
	for i, e := range t.Entries {
		cells := make(map[string]string, len(e.Cells))
		for _, key := range e.Keys {
			v, err := fn(key, e.Cells[key])
			if err != nil {
				return nil, err
			}
			cells[key] = v
		}
		out.Entries[i] = Entry{
			Title: e.Title,
			Name:  e.Name,
			URL:   e.URL,
			Cells: cells,
			Keys:  append([]string(nil), e.Keys...),
		}
	}
	return out, nil
}
