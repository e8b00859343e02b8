package compatlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line prefixes recognized by the markup grammar.
const (
	commentPrefix   = '#'
	entryPrefix     = '<'
	columnPrefix    = '['
	directivePrefix = '!'

	imageDirective = "!img"
)

// Parser turns compatibility markup into a Table.
// The zero value uses the default thumbnail size.
type Parser struct {
	ImageWidth  int
	ImageHeight int
}

// Parse parses lines with the default Parser.
// Each line should keep its trailing newline; it becomes part of cell text.
func Parse(lines []string) (*Table, error) {
	var p Parser
	return p.Parse(lines)
}

// ParseReader reads r line by line and parses it with the default Parser.
func ParseReader(r io.Reader) (*Table, error) {
	var p Parser
	return p.ParseReader(r)
}

// ParseReader reads all lines from r, keeping newlines, and parses them.
func (p *Parser) ParseReader(r io.Reader) (*Table, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(lines)
}

// Parse builds a Table from lines in a single pass.
// Returns a *FormatError for a title or column header with no closing bracket.
func (p *Parser) Parse(lines []string) (*Table, error) {
	st := &parseState{
		imgWidth:  p.ImageWidth,
		imgHeight: p.ImageHeight,
	}
	if st.imgWidth <= 0 {
		st.imgWidth = DefaultImageWidth
	}
	if st.imgHeight <= 0 {
		st.imgHeight = DefaultImageHeight
	}

	for i, line := range lines {
		if err := st.feed(i+1, line); err != nil {
			return nil, err
		}
	}
	return st.finish(), nil
}

// ReadLines splits r into lines, each keeping its trailing newline.
// A final line without a newline is returned as is.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading markup: %w", err)
		}
	}
}

// entryBuilder accumulates one entry's cells.
type entryBuilder struct {
	title string
	name  string
	url   string
	keys  []string
	cells map[string]*strings.Builder
}

// cell returns the builder for key, creating it on first use.
func (e *entryBuilder) cell(key string) *strings.Builder {
	if b, ok := e.cells[key]; ok {
		return b
	}
	b := &strings.Builder{}
	e.cells[key] = b
	e.keys = append(e.keys, key)
	return b
}

func (e *entryBuilder) build() Entry {
	cells := make(map[string]string, len(e.cells))
	for key, b := range e.cells {
		cells[key] = b.String()
	}
	return Entry{
		Title: e.title,
		Name:  e.name,
		URL:   e.url,
		Cells: cells,
		Keys:  e.keys,
	}
}

// parseState holds the parser's position between lines.
type parseState struct {
	imgWidth  int
	imgHeight int

	columns []Column
	index   map[string]int // identity key -> position in columns
	entries []*entryBuilder

	current *entryBuilder
	column  *strings.Builder // nil when no column header is active
}

func (s *parseState) feed(lineNo int, line string) error {
	if line == "" {
		return nil
	}

	switch line[0] {
	case commentPrefix:
		return nil
	case entryPrefix:
		return s.openEntry(lineNo, line)
	}

	if s.current == nil {
		return nil
	}

	if line[0] == columnPrefix {
		return s.openColumn(lineNo, line)
	}

	if s.column == nil {
		return nil
	}

	if line[0] == directivePrefix {
		s.directive(line)
		return nil
	}

	s.column.WriteString(line)
	return nil
}

func (s *parseState) openEntry(lineNo int, line string) error {
	end := strings.LastIndexByte(line, '>')
	if end < 1 {
		return &FormatError{Line: lineNo, Text: trimNewline(line), Reason: "unterminated title, missing '>'"}
	}

	title, name, url := splitTitle(line[1:end])
	s.current = &entryBuilder{
		title: title,
		name:  name,
		url:   url,
		cells: make(map[string]*strings.Builder),
	}
	s.entries = append(s.entries, s.current)
	s.column = nil
	return nil
}

func (s *parseState) openColumn(lineNo int, line string) error {
	end := strings.LastIndexByte(line, ']')
	if end < 1 {
		return &FormatError{Line: lineNo, Text: trimNewline(line), Reason: "unterminated column header, missing ']'"}
	}

	key := line[1:end]
	// A repeated header starts the cell over; the key keeps its first position.
	s.column = s.current.cell(key)
	s.column.Reset()
	s.declare(key)
	return nil
}

// declare records key in the schema.
func (s *parseState) declare(key string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}

	major, minor, grouped := SplitKey(key)
	if !grouped {
		// A bare key that names an existing grouped column is a merged cell
		// for that group, not a new column.
		if _, ok := s.index[key]; !ok {
			s.index[key] = len(s.columns)
			s.columns = append(s.columns, SimpleColumn(key))
		}
		return
	}

	pos, ok := s.index[major]
	if !ok {
		s.index[major] = len(s.columns)
		s.columns = append(s.columns, GroupedColumn(major, minor))
		return
	}

	col := &s.columns[pos]
	if col.Kind == Simple {
		// Keep the column's position; earlier bare-key cells render merged.
		col.Kind = Grouped
	}
	if !col.hasMinor(minor) {
		col.Minors = append(col.Minors, minor)
	}
}

// directive handles a '!' line. Only !img is recognized.
func (s *parseState) directive(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != imageDirective {
		return
	}
	for _, src := range fields[1:] {
		s.column.WriteString(imageLink(src, s.imgWidth, s.imgHeight))
	}
}

func (s *parseState) finish() *Table {
	t := &Table{
		Columns: s.columns,
		Entries: make([]Entry, 0, len(s.entries)),
	}
	if t.Columns == nil {
		t.Columns = []Column{}
	}
	for _, e := range s.entries {
		t.Entries = append(t.Entries, e.build())
	}
	return t
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}
