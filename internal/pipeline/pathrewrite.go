package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-compatlist/internal/fileutil"
)

// rewrittenAttrs lists the attributes rewritten per element.
var rewrittenAttrs = map[string]string{
	"img": "src",
	"a":   "href",
}

// RewriteRelativePaths turns relative img[src] and a[href] values in a full
// HTML document into file:// URLs under sourceDir. URLs, anchors, absolute
// paths and paths escaping sourceDir are left alone. An empty sourceDir
// returns the document unchanged.
func RewriteRelativePaths(document, sourceDir string) (string, error) {
	if sourceDir == "" {
		return document, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving source directory: %w", err)
	}

	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	walk(root, func(n *html.Node) {
		attr, ok := rewrittenAttrs[n.Data]
		if n.Type != html.ElementNode || !ok {
			return
		}
		for i := range n.Attr {
			if n.Attr[i].Key == attr {
				n.Attr[i].Val = resolvePath(n.Attr[i].Val, absDir)
			}
		}
	})

	var buf strings.Builder
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// resolvePath returns the file:// URL for a relative path under dir, or
// value unchanged.
func resolvePath(value, dir string) string {
	if !isRelativePath(value) {
		return value
	}

	abs := filepath.Join(dir, value)
	if !isPathUnderDir(abs, dir) {
		return value
	}

	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String()
}

func isRelativePath(p string) bool {
	switch {
	case p == "",
		fileutil.IsURL(p),
		strings.HasPrefix(p, "file:"),
		strings.HasPrefix(p, "data:"),
		strings.HasPrefix(p, "mailto:"),
		strings.HasPrefix(p, "//"),
		strings.HasPrefix(p, "#"),
		filepath.IsAbs(p):
		return false
	}
	return true
}

func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}
