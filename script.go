package rendermime

import (
	"context"
	"fmt"
)

// ScriptRenderer embeds a payload as an executable script element. It is
// never safe and cannot be sanitized, so the dispatcher refuses this
// mimetype; rendering happens only when a caller has established trust
// by other means and invokes the renderer directly.
type ScriptRenderer struct{}

var _ Renderer = (*ScriptRenderer)(nil)

func (*ScriptRenderer) MimeTypes() []string {
	return []string{MimeJS, MimeAppJS}
}

func (*ScriptRenderer) Sanitizable(string) bool { return false }

func (*ScriptRenderer) IsSafe(string) bool { return false }

func (r *ScriptRenderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !handlesMimeType(r.MimeTypes(), req.MimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMimeType, req.MimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := `<script type="text/javascript">` + req.Source + `</script>`

	return &Result{MimeType: req.MimeType, HTML: out}, nil
}
