package compatlist

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-compatlist/internal/yamlutil"
)

// Metadata holds the optional front matter of a markup file.
type Metadata struct {
	Title       string `yaml:"title"`
	Heading     string `yaml:"heading"`
	Description string `yaml:"description"`
}

// yamlFrontMatter accepts a leading "---" block, including an empty one.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yamlutil.UnmarshalOptional)

// SplitFrontMatter separates a leading YAML front matter block from the
// markup body. Sources without front matter are returned unchanged with
// zero Metadata. offset is the number of lines removed from the top, so
// callers can report line numbers relative to the original source.
func SplitFrontMatter(src []byte) (meta Metadata, body []byte, offset int, err error) {
	body, err = frontmatter.Parse(bytes.NewReader(src), &meta, yamlFrontMatter)
	if err != nil {
		return Metadata{}, nil, 0, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if bytes.HasSuffix(src, body) {
		offset = bytes.Count(src[:len(src)-len(body)], []byte("\n"))
	}
	return meta, body, offset, nil
}

// apply fills empty fields of opts from the metadata.
func (m Metadata) apply(opts RenderOptions) RenderOptions {
	if m.Title != "" && opts.PageTitle == "" {
		opts.PageTitle = m.Title
	}
	if m.Heading != "" && opts.Heading == "" {
		opts.Heading = m.Heading
	}
	if m.Description != "" && opts.Description == "" {
		opts.Description = m.Description
	}
	return opts
}
