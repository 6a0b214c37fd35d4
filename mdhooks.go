package rendermime

import (
	"context"
	"html"
	"log/slog"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-rendermime/internal/highlight"
)

// renderContextKey keys the per-call render context in the parsed
// document's metadata.
const renderContextKey = "rendermime:renderContext"

// mdRenderContext carries per-call capabilities into the goldmark node
// renderers, which are constructed once and shared across calls.
type mdRenderContext struct {
	ctx      context.Context
	resolver Resolver
	bridge   highlight.Bridge
	logger   *slog.Logger
}

// renderContextOf retrieves the per-call context stored by convert.
// A document rendered outside the pipeline yields nil; hooks then fall
// back to plain behavior.
func renderContextOf(node ast.Node) *mdRenderContext {
	doc := node.OwnerDocument()
	if doc == nil {
		return nil
	}
	rc, _ := doc.Meta()[renderContextKey].(*mdRenderContext)
	return rc
}

// codeBlockRenderer replaces fenced code block rendering with output
// from the highlighter bridge. Any lookup or tokenization failure falls
// back to escaped plain code and is logged, never surfaced.
type codeBlockRenderer struct{}

var _ renderer.NodeRenderer = (*codeBlockRenderer)(nil)

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)
	language := string(n.Language(source))

	var code []byte
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		code = append(code, line.Value(source)...)
	}

	if out, ok := r.highlight(node, language, string(code)); ok {
		_, _ = w.WriteString(out)
		_, _ = w.WriteString("\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<pre><code>")
	_, _ = w.WriteString(html.EscapeString(string(code)))
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkContinue, nil
}

// highlight runs the bridge lookup and tokenization for one block.
// The second return is false when the caller should fall back to plain
// code.
func (r *codeBlockRenderer) highlight(node ast.Node, language, code string) (string, bool) {
	rc := renderContextOf(node)
	if rc == nil || rc.bridge == nil || language == "" {
		return "", false
	}

	tok, err := rc.bridge.Lookup(rc.ctx, language)
	if err != nil {
		rc.logger.Debug("syntax highlight unavailable", "language", language, "error", err)
		return "", false
	}
	out, err := tok.Tokenize(code)
	if err != nil {
		rc.logger.Debug("syntax highlight failed", "language", language, "error", err)
		return "", false
	}
	return out, true
}

// resolvingLinkRenderer replaces link and image rendering so that
// destinations pass through the external resolver as the anchor or
// image markup is generated. Resolving here, rather than over the final
// text, avoids rewriting literal text that merely looks like a URL.
type resolvingLinkRenderer struct{}

var _ renderer.NodeRenderer = (*resolvingLinkRenderer)(nil)

func (r *resolvingLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindImage, r.renderImage)
}

// resolveDestination applies the per-call resolver to a destination,
// leaving it unchanged when no resolver was supplied.
func resolveDestination(node ast.Node, destination []byte) []byte {
	rc := renderContextOf(node)
	if rc == nil || rc.resolver == nil {
		return destination
	}
	return []byte(rc.resolver.ResolveURL(string(destination)))
}

func (r *resolvingLinkRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(resolveDestination(node, n.Destination), true)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *resolvingLinkRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Image)
	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(resolveDestination(node, n.Destination), true)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(textContent(n, source)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString(" />")
	return ast.WalkSkipChildren, nil
}

// textContent collects the plain text beneath n, for use as alt text.
func textContent(n ast.Node, source []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			out = append(out, t.Segment.Value(source)...)
		case *ast.String:
			out = append(out, t.Value...)
		default:
			out = append(out, textContent(c, source)...)
		}
	}
	return out
}
