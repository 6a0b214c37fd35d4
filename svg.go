package rendermime

import (
	"context"
	"fmt"

	"github.com/alnah/go-rendermime/internal/htmlwalk"
)

// SVGRenderer renders inline SVG markup. The source is sanitized before
// parsing; the parsed tree must contain an <svg> root, and relative
// references within it are resolved.
type SVGRenderer struct{}

var _ Renderer = (*SVGRenderer)(nil)

func (*SVGRenderer) MimeTypes() []string { return []string{MimeSVG} }

func (*SVGRenderer) Sanitizable(string) bool { return true }

func (*SVGRenderer) IsSafe(string) bool { return false }

func (r *SVGRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := req.Source
	if req.Sanitizer != nil {
		out = req.Sanitizer.Sanitize(out)
	}

	// Missing root is a structural error for this call, not a soft
	// failure: the same input fails the same way on every invocation.
	hasRoot, err := htmlwalk.HasElement(out, "svg")
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}
	if !hasRoot {
		return nil, ErrNoSVGElement
	}

	if req.Resolver != nil {
		resolved, err := htmlwalk.ResolveURLs(out, req.Resolver.ResolveURL)
		if err != nil {
			return nil, fmt.Errorf("resolving URLs: %w", err)
		}
		out = resolved
	}

	return &Result{MimeType: req.MimeType, HTML: out}, nil
}
