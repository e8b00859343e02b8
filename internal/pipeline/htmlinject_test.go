package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestCSSInjection_InjectCSS(t *testing.T) {
	t.Parallel()

	injector := &CSSInjection{}
	css := "td { padding: 2px; }"

	tests := []struct {
		name  string
		html  string
		css   string
		check func(t *testing.T, got string)
	}{
		{
			name: "before closing head",
			html: "<html><head><title>x</title></head><body></body></html>",
			css:  css,
			check: func(t *testing.T, got string) {
				want := "<style>\n" + css + "\n</style>\n</head>"
				if !strings.Contains(got, want) {
					t.Errorf("got %q, want style block before </head>", got)
				}
			},
		},
		{
			name: "uppercase head",
			html: "<HTML><HEAD></HEAD><BODY></BODY></HTML>",
			css:  css,
			check: func(t *testing.T, got string) {
				if !strings.Contains(got, "</style>\n</HEAD>") {
					t.Errorf("got %q, want style block before </HEAD>", got)
				}
			},
		},
		{
			name: "after body without head",
			html: `<body class="x"><table></table></body>`,
			css:  css,
			check: func(t *testing.T, got string) {
				if !strings.HasPrefix(got, `<body class="x"><style>`) {
					t.Errorf("got %q, want style block right after <body>", got)
				}
			},
		},
		{
			name: "prepended to fragment",
			html: "<table></table>",
			css:  css,
			check: func(t *testing.T, got string) {
				if !strings.HasPrefix(got, "<style>") || !strings.HasSuffix(got, "<table></table>") {
					t.Errorf("got %q, want style block prepended", got)
				}
			},
		},
		{
			name: "empty css is a no-op",
			html: "<html><head></head></html>",
			css:  "",
			check: func(t *testing.T, got string) {
				if got != "<html><head></head></html>" {
					t.Errorf("got %q, want input unchanged", got)
				}
			},
		},
		{
			name: "closing tags escaped",
			html: "<head></head>",
			css:  "a::after { content: '</style><script>'; }",
			check: func(t *testing.T, got string) {
				if strings.Contains(got, "</style><script>") {
					t.Errorf("got %q, closing tag not escaped", got)
				}
				if !strings.Contains(got, `<\/style><script>`) {
					t.Errorf("got %q, want escaped closing tag", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, injector.InjectCSS(context.Background(), tt.html, tt.css))
		})
	}
}

func TestCSSInjection_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<head></head>"
	if got := (&CSSInjection{}).InjectCSS(ctx, html, "td{}"); got != html {
		t.Errorf("InjectCSS() = %q, want input unchanged on canceled context", got)
	}
}
