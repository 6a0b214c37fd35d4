package rendermime

import "context"

// Well-known mimetypes handled by the built-in renderers.
const (
	MimeHTML        = "text/html"
	MimeMarkdown    = "text/markdown"
	MimeSVG         = "image/svg+xml"
	MimeLaTeX       = "text/latex"
	MimePNG         = "image/png"
	MimeJPEG        = "image/jpeg"
	MimeGIF         = "image/gif"
	MimePDF         = "application/pdf"
	MimeText        = "text/plain"
	MimeConsoleText = "application/vnd.jupyter.console-text"
	MimeJS          = "text/javascript"
	MimeAppJS       = "application/javascript"
)

// MimeBundle maps a mimetype to its payload: text for textual types,
// base64-encoded bytes for binary types. Keys are unique. Map iteration
// order carries no meaning; selection order is always caller-supplied.
type MimeBundle map[string]string

// Request carries the inputs for one render invocation. Sanitizer and
// Resolver are optional capabilities; nil means not supplied. A Request
// is constructed per render call and owns no long-lived resource.
type Request struct {
	MimeType  string
	Source    string
	Sanitizer Sanitizer
	Resolver  Resolver
}

// Result is a displayable HTML unit. It is owned by the caller once
// returned; renderers retain no reference to it.
type Result struct {
	MimeType string
	HTML     string

	// TypesetMath signals the caller to run its math typesetter once the
	// unit is attached to visible output. The typeset hook must be a
	// no-op when no math markers remain, and idempotent.
	TypesetMath bool
}

// Sanitizer strips script-capable constructs from HTML text while
// preserving benign markup. Implementations must be idempotent.
type Sanitizer interface {
	Sanitize(html string) string
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(html string) string

// Sanitize calls f.
func (f SanitizerFunc) Sanitize(html string) string { return f(html) }

// Resolver rewrites a relative resource reference to an absolute one.
// Implementations must be synchronous and pure with respect to their
// base context.
type Resolver interface {
	ResolveURL(ref string) string
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ref string) string

// ResolveURL calls f.
func (f ResolverFunc) ResolveURL(ref string) string { return f(ref) }

// Renderer turns one mimetype's payload into a displayable unit.
// Sanitizable and IsSafe are pure functions of the mimetype and never
// inspect payloads. Implementations are stateless.
type Renderer interface {
	// MimeTypes lists the mimetypes this renderer handles. A renderer
	// declares at least one.
	MimeTypes() []string

	// Sanitizable reports whether output for mimeType can be made safe
	// by passing it through a Sanitizer.
	Sanitizable(mimeType string) bool

	// IsSafe reports whether output for mimeType is intrinsically safe
	// to display without sanitization.
	IsSafe(mimeType string) bool

	// Render produces the displayable unit for req.
	Render(ctx context.Context, req Request) (*Result, error)
}

// handlesMimeType reports whether mimeType appears in list.
func handlesMimeType(list []string, mimeType string) bool {
	for _, mt := range list {
		if mt == mimeType {
			return true
		}
	}
	return false
}
