package compatlist

import (
	"html"
	"strconv"
	"strings"
)

// Default thumbnail size for !img directives, in pixels.
const (
	DefaultImageWidth  = 64
	DefaultImageHeight = 48
)

// titleAnchor renders a "name=url" title as a link.
func titleAnchor(name, url string) string {
	return `<a href="` + html.EscapeString(url) + `">` + name + `</a>`
}

// imageLink renders a thumbnail that links to the full image.
func imageLink(src string, width, height int) string {
	esc := html.EscapeString(src)
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(esc)
	b.WriteString(`"><img src="`)
	b.WriteString(esc)
	b.WriteString(`" width="`)
	b.WriteString(strconv.Itoa(width))
	b.WriteString(`" height="`)
	b.WriteString(strconv.Itoa(height))
	b.WriteString(`"></a>`)
	return b.String()
}

// splitTitle turns a raw title into its rendered HTML, visible name and URL.
// Titles of the form "name=url" are split on the first '=' after trimming.
func splitTitle(raw string) (title, name, url string) {
	if !strings.Contains(raw, "=") {
		return raw, raw, ""
	}
	name, url, _ = strings.Cut(strings.TrimSpace(raw), "=")
	return titleAnchor(name, url), name, url
}
