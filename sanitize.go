package rendermime

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// cssClassName matches the class attribute values emitted by the
// highlighter and by sanitized user markup.
var cssClassName = regexp.MustCompile(`^[\p{L}\p{N}\s\-_]+$`)

// defaultPolicy is built once; bluemonday policies are safe for
// concurrent use after construction.
var defaultPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowImages()
	p.AllowDataURIImages()
	p.AllowAttrs("class").Matching(cssClassName).Globally()
	p.AllowAttrs("style").OnElements("span")
	p.RequireNoReferrerOnLinks(true)
	return p
})

// NewSanitizer returns the default Sanitizer, backed by a bluemonday
// policy derived from the UGC policy. It strips script-capable
// constructs (script elements, event handlers, javascript: URLs) while
// preserving benign markup, images, data-URI images, and the class and
// span-style attributes that highlighted code and ANSI output rely on.
// Sanitization is idempotent.
func NewSanitizer() Sanitizer {
	p := defaultPolicy()
	return SanitizerFunc(func(html string) string {
		return p.Sanitize(html)
	})
}
