package compatlist

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// lines splits s into lines that keep their trailing newline.
func lines(s string) []string {
	return strings.SplitAfter(s, "\n")
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
	}{
		{"nil", nil},
		{"empty lines", []string{"", ""}},
		{"comments only", lines("# header\n# another\n")},
		{"text without entry", lines("free text\n[Video]\nWorks\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if table.Columns == nil || len(table.Columns) != 0 {
				t.Errorf("Columns = %#v, want empty non-nil", table.Columns)
			}
			if table.Entries == nil || table.Len() != 0 {
				t.Errorf("Entries = %#v, want empty non-nil", table.Entries)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	input := lines(`<Title1>
[Video::Status]
Works
<Title2>
[Video::Status]
Broken
[Audio]
Fine
`)

	table, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantColumns := []Column{GroupedColumn("Video", "Status"), SimpleColumn("Audio")}
	if !reflect.DeepEqual(table.Columns, wantColumns) {
		t.Errorf("Columns = %#v, want %#v", table.Columns, wantColumns)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	first, second := table.Entries[0], table.Entries[1]
	if first.Title != "Title1" || second.Title != "Title2" {
		t.Errorf("titles = %q, %q", first.Title, second.Title)
	}
	if want := map[string]string{"Video::Status": "Works\n"}; !reflect.DeepEqual(first.Cells, want) {
		t.Errorf("Title1 cells = %#v, want %#v", first.Cells, want)
	}
	if want := map[string]string{"Video::Status": "Broken\n", "Audio": "Fine\n"}; !reflect.DeepEqual(second.Cells, want) {
		t.Errorf("Title2 cells = %#v, want %#v", second.Cells, want)
	}
	if want := []string{"Video::Status", "Audio"}; !reflect.DeepEqual(second.Keys, want) {
		t.Errorf("Title2 keys = %v, want %v", second.Keys, want)
	}

	doc := BuildDocument(table, RenderOptions{})
	audio := doc.Rows[0].Cells[1]
	if !audio.Missing || audio.Content != DefaultPlaceholder {
		t.Errorf("Title1 Audio cell = %+v, want placeholder", audio)
	}
}

func TestParse_MinorsUniqueInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	input := lines(`<A>
[Video::Status]
[Video::Speed]
[Video::Status]
<B>
[Video::Notes]
[Video::Speed]
[Video::Status]
`)

	table, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Column{GroupedColumn("Video", "Status", "Speed", "Notes")}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("Columns = %#v, want %#v", table.Columns, want)
	}
}

func TestParse_CellText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{
			name:  "multi-line concatenation",
			input: "<A>\n[Notes]\nfirst\nsecond\n\nthird\n",
			key:   "Notes",
			want:  "first\nsecond\n\nthird\n",
		},
		{
			name:  "header with no text yields empty cell",
			input: "<A>\n[Notes]\n<B>\n",
			key:   "Notes",
			want:  "",
		},
		{
			name:  "repeated header resets the cell",
			input: "<A>\n[Notes]\none\n[Other]\nx\n[Notes]\ntwo\n",
			key:   "Notes",
			want:  "two\n",
		},
		{
			name:  "blank line kept inside a cell",
			input: "<A>\n[Notes]\na\n\nb\n",
			key:   "Notes",
			want:  "a\n\nb\n",
		},
		{
			name:  "comments inside a cell are skipped",
			input: "<A>\n[Notes]\none\n# hidden\ntwo\n",
			key:   "Notes",
			want:  "one\ntwo\n",
		},
		{
			name:  "last line without newline",
			input: "<A>\n[Notes]\nend",
			key:   "Notes",
			want:  "end",
		},
		{
			name:  "column key up to last bracket",
			input: "<A>\n[Speed [fps]]\n60\n",
			key:   "Speed [fps]",
			want:  "60\n",
		},
		{
			name:  "split on first separator",
			input: "<A>\n[Video::Mode::Hi]\nok\n",
			key:   "Video::Mode::Hi",
			want:  "ok\n",
		},
		{
			name:  "unknown directive ignored",
			input: "<A>\n[Notes]\n!video clip.mp4\ntext\n",
			key:   "Notes",
			want:  "text\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse(lines(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got, ok := table.Entries[0].Cell(tt.key)
			if !ok {
				t.Fatalf("cell %q missing; cells = %#v", tt.key, table.Entries[0].Cells)
			}
			if got != tt.want {
				t.Errorf("cell %q = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParse_LinesWithoutColumnIgnored(t *testing.T) {
	t.Parallel()

	table, err := Parse(lines("<A>\nstray text\n!img a.png\n[Notes]\nkept\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	e := table.Entries[0]
	if len(e.Cells) != 1 || e.CellOr("Notes", "") != "kept\n" {
		t.Errorf("cells = %#v, want only Notes", e.Cells)
	}
}

func TestParse_NewEntryResetsColumn(t *testing.T) {
	t.Parallel()

	table, err := Parse(lines("<A>\n[Notes]\na\n<B>\norphan\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(table.Entries[1].Cells) != 0 {
		t.Errorf("B cells = %#v, want none", table.Entries[1].Cells)
	}
}

func TestParse_RepeatedHeaderKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	table, err := Parse([]string{"<T>\n", "[Audio]\n", "old\n", "[Video]\n", "x\n", "[Audio]\n", "new\n"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	e := table.Entries[0]
	if got := e.CellOr("Audio", ""); got != "new\n" {
		t.Errorf("Audio cell = %q, want %q", got, "new\n")
	}
	if got := e.CellOr("Video", ""); got != "x\n" {
		t.Errorf("Video cell = %q, want %q", got, "x\n")
	}
	if want := []string{"Audio", "Video"}; !reflect.DeepEqual(e.Keys, want) {
		t.Errorf("Keys = %v, want %v", e.Keys, want)
	}
}

func TestParse_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantTitle string
		wantName  string
		wantURL   string
	}{
		{
			name:      "plain",
			line:      "<Super Mario 64>\n",
			wantTitle: "Super Mario 64",
			wantName:  "Super Mario 64",
		},
		{
			name:      "name and url",
			line:      "<Game A=http://example.com/a>\n",
			wantTitle: `<a href="http://example.com/a">Game A</a>`,
			wantName:  "Game A",
			wantURL:   "http://example.com/a",
		},
		{
			name:      "split on first equals",
			line:      "<Q=http://example.com/?a=b>\n",
			wantTitle: `<a href="http://example.com/?a=b">Q</a>`,
			wantName:  "Q",
			wantURL:   "http://example.com/?a=b",
		},
		{
			name:      "url is escaped",
			line:      `<Q=http://e.com/"x"&y>` + "\n",
			wantTitle: `<a href="http://e.com/&#34;x&#34;&amp;y">Q</a>`,
			wantName:  "Q",
			wantURL:   `http://e.com/"x"&y`,
		},
		{
			name:      "surrounding space trimmed before split",
			line:      "< Zelda =http://z.example>\n",
			wantTitle: `<a href="http://z.example">Zelda </a>`,
			wantName:  "Zelda ",
			wantURL:   "http://z.example",
		},
		{
			name:      "up to last bracket",
			line:      "<a <b> c>\n",
			wantTitle: "a <b> c",
			wantName:  "a <b> c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse([]string{tt.line})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			e := table.Entries[0]
			if e.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", e.Title, tt.wantTitle)
			}
			if e.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", e.Name, tt.wantName)
			}
			if e.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", e.URL, tt.wantURL)
			}
		})
	}
}

func TestParse_ImageDirective(t *testing.T) {
	t.Parallel()

	t.Run("default size in order", func(t *testing.T) {
		t.Parallel()

		table, err := Parse(lines("<A>\n[Shots]\n!img a.png b.png\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		want := `<a href="a.png"><img src="a.png" width="64" height="48"></a>` +
			`<a href="b.png"><img src="b.png" width="64" height="48"></a>`
		if got := table.Entries[0].CellOr("Shots", ""); got != want {
			t.Errorf("cell = %q, want %q", got, want)
		}
	})

	t.Run("appends to text", func(t *testing.T) {
		t.Parallel()

		table, err := Parse(lines("<A>\n[Shots]\ntitle screen\n!img a.png\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		got := table.Entries[0].CellOr("Shots", "")
		if !strings.HasPrefix(got, "title screen\n<a href=\"a.png\">") {
			t.Errorf("cell = %q", got)
		}
	})

	t.Run("custom size", func(t *testing.T) {
		t.Parallel()

		p := Parser{ImageWidth: 32, ImageHeight: 24}
		table, err := p.Parse(lines("<A>\n[Shots]\n!img a.png\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got := table.Entries[0].CellOr("Shots", ""); !strings.Contains(got, `width="32" height="24"`) {
			t.Errorf("cell = %q, want custom size", got)
		}
	})

	t.Run("no urls adds nothing", func(t *testing.T) {
		t.Parallel()

		table, err := Parse(lines("<A>\n[Shots]\n!img\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got := table.Entries[0].CellOr("Shots", "x"); got != "" {
			t.Errorf("cell = %q, want empty", got)
		}
	})

	t.Run("prefix match is not the directive", func(t *testing.T) {
		t.Parallel()

		table, err := Parse(lines("<A>\n[Shots]\n!imgs a.png\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got := table.Entries[0].CellOr("Shots", "x"); got != "" {
			t.Errorf("cell = %q, want empty", got)
		}
	})
}

func TestParse_SchemaAcrossKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Column
	}{
		{
			name:  "simple columns deduplicated",
			input: "<A>\n[Audio]\n<B>\n[Audio]\n[Input]\n",
			want:  []Column{SimpleColumn("Audio"), SimpleColumn("Input")},
		},
		{
			name:  "bare major after grouped adds no column",
			input: "<A>\n[Video::Status]\n<B>\n[Video]\n",
			want:  []Column{GroupedColumn("Video", "Status")},
		},
		{
			name:  "grouped key upgrades simple column in place",
			input: "<A>\n[Video]\n[Audio]\n<B>\n[Video::Status]\n",
			want:  []Column{GroupedColumn("Video", "Status"), SimpleColumn("Audio")},
		},
		{
			name:  "order of first appearance",
			input: "<A>\n[Z]\n[M::1]\n[A]\n",
			want:  []Column{SimpleColumn("Z"), GroupedColumn("M", "1"), SimpleColumn("A")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse(lines(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(table.Columns, tt.want) {
				t.Errorf("Columns = %#v, want %#v", table.Columns, tt.want)
			}
		})
	}
}

func TestParse_MalformedMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
		wantText string
	}{
		{"bare entry bracket", "<\n", 1, "<"},
		{"unterminated title", "# c\n<Mario\n", 2, "<Mario"},
		{"second entry bare bracket", "<A>\n<\n", 2, "<"},
		{"bare column bracket", "<A>\n[\n", 2, "["},
		{"unterminated column", "<A>\n[Video::Status\nWorks\n", 2, "[Video::Status"},
		{"crlf line", "<A>\r\n[Audio\r\n", 2, "[Audio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(lines(tt.input))
			if !errors.Is(err, ErrMalformedMarkup) {
				t.Fatalf("Parse() error = %v, want ErrMalformedMarkup", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Parse() error type = %T, want *FormatError", err)
			}
			if fe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", fe.Line, tt.wantLine)
			}
			if fe.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", fe.Text, tt.wantText)
			}
		})
	}
}

func TestParse_BracketLineWithoutEntryIgnored(t *testing.T) {
	t.Parallel()

	// Column headers are only meaningful inside an entry.
	if _, err := Parse(lines("[unterminated\n")); err != nil {
		t.Errorf("Parse() error = %v, want nil", err)
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	table, err := ParseReader(strings.NewReader("<A>\n[Notes]\none\ntwo"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if got := table.Entries[0].CellOr("Notes", ""); got != "one\ntwo" {
		t.Errorf("cell = %q, want %q", got, "one\ntwo")
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a\n"}},
		{"a\n\nb", []string{"a\n", "\n", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ReadLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadLines() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
