package rendermime

import (
	"context"
	"fmt"
	"html"
)

// LaTeXRenderer renders raw LaTeX into a plain-text container. No
// markup is interpreted, so the output is always safe; the result arms
// the deferred math-typeset side effect for when it is attached.
type LaTeXRenderer struct{}

var _ Renderer = (*LaTeXRenderer)(nil)

func (*LaTeXRenderer) MimeTypes() []string { return []string{MimeLaTeX} }

func (*LaTeXRenderer) Sanitizable(string) bool { return false }

func (*LaTeXRenderer) IsSafe(string) bool { return true }

func (r *LaTeXRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := `<div class="rendermime-latex">` + html.EscapeString(req.Source) + `</div>`

	return &Result{MimeType: req.MimeType, HTML: out, TypesetMath: true}, nil
}
