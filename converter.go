package compatlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-compatlist/internal/pipeline"
)

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	timeout    time.Duration
	assetPath  string
	styleInput string
	render     RenderOptions
	markdown   bool
	imgWidth   int
	imgHeight  int
	page       *PageSettings
}

// WithTimeout bounds PDF page loading.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithAssetPath adds a directory of custom styles and templates, consulted
// before the embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyle sets the stylesheet: a style name or a CSS file path.
// Without it the page carries no stylesheet.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithRenderOptions sets page text, placeholder and index options.
// Front matter fills fields left empty here.
func WithRenderOptions(opts RenderOptions) Option {
	return func(c *Converter) {
		c.cfg.render = opts
	}
}

// WithMarkdownCells renders cell text as Markdown.
func WithMarkdownCells(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.markdown = enabled
	}
}

// WithImageSize sets the !img thumbnail size. Non-positive values keep the default.
func WithImageSize(width, height int) Option {
	return func(c *Converter) {
		c.cfg.imgWidth = width
		c.cfg.imgHeight = height
	}
}

// WithPageSettings sets PDF page size, orientation and margin.
func WithPageSettings(p *PageSettings) Option {
	return func(c *Converter) {
		c.cfg.page = p
	}
}

// Input is one conversion request.
type Input struct {
	Source    []byte // markup, optionally with front matter
	SourceDir string // resolves relative image paths for PDF output
	PDF       bool   // also render a PDF
}

// ConvertResult holds the conversion outputs.
type ConvertResult struct {
	HTML     []byte
	PDF      []byte // nil unless Input.PDF was set
	Table    *Table // parsed table, before cell rendering
	Metadata Metadata
}

// Converter runs markup through parsing, layout, HTML serialization and
// optional PDF printing. Create with NewConverter and Close when done.
type Converter struct {
	cfg          converterConfig
	style        string
	htmlWriter   *HTMLWriter
	cells        pipeline.FragmentConverter
	cssInjector  pipeline.CSSInjector
	pdfConverter pdfConverter
}

// NewConverter creates a Converter. Asset, style and template problems are
// reported here rather than on each Convert.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: DefaultTimeout},
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.page.Validate(); err != nil {
		return nil, err
	}

	loader, err := newAssetLoader(c.cfg.assetPath)
	if err != nil {
		return nil, err
	}

	if c.style, err = loadStyle(loader, c.cfg.styleInput); err != nil {
		return nil, err
	}

	if c.htmlWriter == nil {
		tmpl, err := loadTemplate(loader)
		if err != nil {
			return nil, err
		}
		if c.htmlWriter, err = NewHTMLWriter(tmpl); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
		}
	}

	if c.cfg.markdown && c.cells == nil {
		c.cells = pipeline.NewGoldmarkConverter()
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert parses input.Source and renders it. Malformed markup yields a
// *FormatError whose line number counts from the top of the source,
// front matter included.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	meta, body, offset, err := SplitFrontMatter(input.Source)
	if err != nil {
		return nil, err
	}

	parser := Parser{ImageWidth: c.cfg.imgWidth, ImageHeight: c.cfg.imgHeight}
	table, err := parser.ParseReader(bytes.NewReader(body))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Line += offset
		}
		return nil, err
	}

	rendered := table
	if c.cells != nil {
		rendered, err = table.MapCells(func(key, content string) (string, error) {
			out, err := c.cells.ToFragment(ctx, content)
			if err != nil {
				return "", fmt.Errorf("%w: column %q: %v", ErrCellRender, key, err)
			}
			return out, nil
		})
		if err != nil {
			return nil, err
		}
	}

	doc := BuildDocument(rendered, meta.apply(c.cfg.render))
	htmlContent, err := c.htmlWriter.Render(doc)
	if err != nil {
		return nil, err
	}

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.style)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &ConvertResult{
		HTML:     []byte(htmlContent),
		Table:    table,
		Metadata: meta,
	}
	if !input.PDF {
		return res, nil
	}

	pdfHTML, err := pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting relative paths: %w", err)
	}

	res.PDF, err = c.pdfConverter.ToPDF(ctx, pdfHTML, c.cfg.page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return res, nil
}

// Close releases the headless browser, if one was started.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}
