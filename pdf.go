package rendermime

import (
	"context"
	"fmt"
	"html"
)

// PDFRenderer renders a link to a base64 data URI rather than inline
// content. The viewing environment may mishandle the data URI, so the
// output is never safe, and no markup is produced that a sanitizer
// could usefully process.
type PDFRenderer struct{}

var _ Renderer = (*PDFRenderer)(nil)

func (*PDFRenderer) MimeTypes() []string { return []string{MimePDF} }

func (*PDFRenderer) Sanitizable(string) bool { return false }

func (*PDFRenderer) IsSafe(string) bool { return false }

func (r *PDFRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uri := "data:application/pdf;base64," + stripSpace(req.Source)
	out := `<a href="` + html.EscapeString(uri) + `" target="_blank" download="content.pdf">View PDF</a>`

	return &Result{MimeType: req.MimeType, HTML: out}, nil
}
