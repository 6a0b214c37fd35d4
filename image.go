package rendermime

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode"
)

// ImageRenderer renders base64-encoded raster images as data-URI <img>
// elements. Images never execute script, so the output is always
// trusted; there is no markup to sanitize.
type ImageRenderer struct{}

var _ Renderer = (*ImageRenderer)(nil)

func (*ImageRenderer) MimeTypes() []string {
	return []string{MimePNG, MimeJPEG, MimeGIF}
}

func (*ImageRenderer) Sanitizable(string) bool { return false }

func (*ImageRenderer) IsSafe(string) bool { return true }

func (r *ImageRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Bundle payloads may carry line breaks inside the base64 text.
	payload := stripSpace(req.Source)
	uri := "data:" + req.MimeType + ";base64," + payload
	out := `<img src="` + html.EscapeString(uri) + `"/>`

	return &Result{MimeType: req.MimeType, HTML: out}, nil
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
