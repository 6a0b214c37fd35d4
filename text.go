package rendermime

import (
	"context"
	"fmt"

	"github.com/robert-nix/ansihtml"
)

// TextRenderer renders plain and console text. HTML-significant
// characters are escaped before any markup is generated, then ANSI
// color and style escape codes become style-bearing spans; the result
// is inherently safe and needs no sanitization.
type TextRenderer struct{}

var _ Renderer = (*TextRenderer)(nil)

func (*TextRenderer) MimeTypes() []string {
	return []string{MimeText, MimeConsoleText}
}

func (*TextRenderer) Sanitizable(string) bool { return false }

func (*TextRenderer) IsSafe(string) bool { return true }

func (r *TextRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// ansihtml escapes text content and translates SGR sequences into
	// inline-styled spans, so the output carries no raw escape bytes.
	body := ansihtml.ConvertToHTML([]byte(req.Source))
	out := "<pre>" + string(body) + "</pre>"

	return &Result{MimeType: req.MimeType, HTML: out}, nil
}
