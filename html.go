package rendermime

import (
	"context"
	"fmt"

	"github.com/alnah/go-rendermime/internal/htmlwalk"
)

// HTMLRenderer renders text/html fragments. Raw source is sanitized
// before anything else touches it; relative src and href references are
// then resolved by walking the parsed tree.
type HTMLRenderer struct{}

var _ Renderer = (*HTMLRenderer)(nil)

func (*HTMLRenderer) MimeTypes() []string { return []string{MimeHTML} }

func (*HTMLRenderer) Sanitizable(string) bool { return true }

func (*HTMLRenderer) IsSafe(string) bool { return false }

func (r *HTMLRenderer) Render(ctx context.Context, req Request) (*Result, error) {
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
	if req.Resolver != nil {
		resolved, err := htmlwalk.ResolveURLs(out, req.Resolver.ResolveURL)
		if err != nil {
			return nil, fmt.Errorf("resolving URLs: %w", err)
		}
		out = resolved
	}

	return &Result{MimeType: req.MimeType, HTML: out, TypesetMath: true}, nil
}
