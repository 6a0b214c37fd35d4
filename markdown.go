package rendermime

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	gmtext "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-rendermime/internal/highlight"
	"github.com/alnah/go-rendermime/internal/htmlwalk"
	"github.com/alnah/go-rendermime/internal/mathtext"
)

// DefaultClassPrefix prefixes the CSS classes applied to highlighted
// code spans for downstream styling.
const DefaultClassPrefix = "rm-hl-"

// MarkdownOption configures a MarkdownRenderer at construction time.
type MarkdownOption func(*MarkdownRenderer)

// WithHighlighter injects the syntax highlighter bridge. The default is
// a cached chroma-backed bridge.
func WithHighlighter(b highlight.Bridge) MarkdownOption {
	return func(r *MarkdownRenderer) { r.bridge = b }
}

// WithLogger sets the logger used for recovered highlight failures.
func WithLogger(l *slog.Logger) MarkdownOption {
	return func(r *MarkdownRenderer) { r.logger = l }
}

// WithClassPrefix sets the CSS class prefix for highlighted code spans.
// It applies to the default bridge; a bridge injected via
// WithHighlighter controls its own class names.
func WithClassPrefix(prefix string) MarkdownOption {
	return func(r *MarkdownRenderer) { r.classPrefix = prefix }
}

// MarkdownRenderer converts text/markdown through a fixed pipeline:
// math protection, GFM conversion with inline URL resolution and
// bridge-driven code highlighting, sanitization plus a tree walk over
// raw HTML blocks, math restoration, and a final sanitize pass.
//
// The engine configuration is built once at construction and never
// mutated; concurrent Render calls are independent, each owning its own
// math table. Only the highlighter bridge's language cache is shared.
type MarkdownRenderer struct {
	logger      *slog.Logger
	bridge      highlight.Bridge
	classPrefix string
	md          goldmark.Markdown
}

var _ Renderer = (*MarkdownRenderer)(nil)

// NewMarkdownRenderer builds a MarkdownRenderer. The engine enables the
// GFM extension set with footnotes, hard line breaks, XHTML output, and
// auto heading IDs. Raw HTML passes through the conversion untouched:
// the injected sanitizer is the only sanitization layer, applied once
// per stage rather than redundantly inside the engine.
func NewMarkdownRenderer(opts ...MarkdownOption) *MarkdownRenderer {
	r := &MarkdownRenderer{
		logger:      slog.Default(),
		classPrefix: DefaultClassPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.bridge == nil {
		r.bridge = highlight.Cached(highlight.Chroma(r.classPrefix))
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			gmhtml.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&codeBlockRenderer{}, 100),
				util.Prioritized(&resolvingLinkRenderer{}, 100),
			),
		),
	)
	return r
}

func (*MarkdownRenderer) MimeTypes() []string { return []string{MimeMarkdown} }

func (*MarkdownRenderer) Sanitizable(string) bool { return true }

func (*MarkdownRenderer) IsSafe(string) bool { return false }

// Render runs the pipeline stages in fixed order. The order must not
// change: math protection precedes conversion, restoration follows the
// sanitize-and-resolve transform, and the final sanitize pass covers the
// fully assembled output.
func (r *MarkdownRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}

	stripped, table := mathtext.Extract(req.Source)

	out, err := r.convert(ctx, stripped, req)
	if err != nil {
		return nil, err
	}

	if req.Sanitizer != nil {
		out = req.Sanitizer.Sanitize(out)
	}
	if req.Resolver != nil {
		// Covers references the inline hooks cannot reach, e.g. raw
		// HTML blocks embedded in the Markdown source.
		resolved, err := htmlwalk.ResolveURLs(out, req.Resolver.ResolveURL)
		if err != nil {
			return nil, fmt.Errorf("%w: resolving URLs: %v", ErrConversion, err)
		}
		out = resolved
	}

	out, err = table.Restore(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMathTable, err)
	}

	if req.Sanitizer != nil {
		out = req.Sanitizer.Sanitize(out)
	}

	return &Result{MimeType: req.MimeType, HTML: out, TypesetMath: true}, nil
}

// convert runs the goldmark engine under ctx using the goroutine and
// select pattern, since goldmark does not natively support context.
func (r *MarkdownRenderer) convert(ctx context.Context, src string, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		source := []byte(src)
		doc := r.md.Parser().Parse(gmtext.NewReader(source))
		doc.OwnerDocument().Meta()[renderContextKey] = &mdRenderContext{
			ctx:      ctx,
			resolver: req.Resolver,
			bridge:   r.bridge,
			logger:   r.logger,
		}

		var buf bytes.Buffer
		if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
