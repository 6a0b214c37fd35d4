package rendermime

import (
	"context"
	"fmt"
)

// Registry dispatches mime bundles to registered renderers and enforces
// the content trust policy before any renderer runs.
type Registry struct {
	byMime map[string]Renderer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byMime: make(map[string]Renderer)}
}

// DefaultRegistry returns a Registry with all built-in renderers
// registered. Markdown options configure the text/markdown renderer.
func DefaultRegistry(mdOpts ...MarkdownOption) *Registry {
	reg := NewRegistry()
	reg.Register(&HTMLRenderer{})
	reg.Register(&ImageRenderer{})
	reg.Register(&TextRenderer{})
	reg.Register(&ScriptRenderer{})
	reg.Register(&SVGRenderer{})
	reg.Register(&PDFRenderer{})
	reg.Register(&LaTeXRenderer{})
	reg.Register(NewMarkdownRenderer(mdOpts...))
	return reg
}

// DefaultPreference returns a richest-first preference order covering all
// built-in renderers. Preference order is always an explicit input to
// Render; this is merely a convenient starting point for callers.
func DefaultPreference() []string {
	return []string{
		MimeHTML,
		MimeMarkdown,
		MimeSVG,
		MimeLaTeX,
		MimePNG,
		MimeJPEG,
		MimeGIF,
		MimePDF,
		MimeText,
		MimeConsoleText,
	}
}

// Register adds every mimetype the renderer declares to the dispatch
// table. Registering a mimetype that is already present replaces the
// earlier entry: last registration wins.
func (reg *Registry) Register(r Renderer) {
	for _, mt := range r.MimeTypes() {
		reg.byMime[mt] = r
	}
}

// Preferred returns the first mimetype in preference that is present in
// both the bundle and the dispatch table. Selection is a pure function
// of bundle contents and preference order. The second return is false
// when no mimetype qualifies.
func (reg *Registry) Preferred(bundle MimeBundle, preference []string) (string, bool) {
	for _, mt := range preference {
		if _, inBundle := bundle[mt]; !inBundle {
			continue
		}
		if _, registered := reg.byMime[mt]; registered {
			return mt, true
		}
	}
	return "", false
}

// Render picks the most-preferred renderable mimetype from bundle,
// applies the trust policy, and invokes the renderer.
//
// Trust policy, per picked mimetype: intrinsically safe content renders
// unconditionally; unsafe but sanitizable content renders only when
// sanitizer is non-nil; everything else is refused with
// ErrUntrustedContent and nothing is rendered. The renderer's result or
// error is propagated unchanged.
//
// Refusals are reportable outcomes, not pipeline failures. Callers that
// want graceful degradation should retry with a plain-text preference
// when the bundle carries one.
func (reg *Registry) Render(ctx context.Context, bundle MimeBundle, preference []string, sanitizer Sanitizer, resolver Resolver) (*Result, error) {
	mt, ok := reg.Preferred(bundle, preference)
	if !ok {
		return nil, fmt.Errorf("%w: bundle %v, preference %v", ErrNoRenderer, bundle.MimeTypes(), preference)
	}

	r := reg.byMime[mt]
	switch {
	case r.IsSafe(mt):
		// Render unconditionally.
	case r.Sanitizable(mt) && sanitizer != nil:
		// The renderer applies the sanitizer it receives in the request.
	default:
		return nil, fmt.Errorf("%w: %s", ErrUntrustedContent, mt)
	}

	return r.Render(ctx, Request{
		MimeType:  mt,
		Source:    bundle[mt],
		Sanitizer: sanitizer,
		Resolver:  resolver,
	})
}

// MimeTypes returns the bundle's mimetypes in unspecified order.
func (b MimeBundle) MimeTypes() []string {
	mts := make([]string, 0, len(b))
	for mt := range b {
		mts = append(mts, mt)
	}
	return mts
}
