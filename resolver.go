package rendermime

import (
	"fmt"
	"net/url"
	"strings"
)

// NewBaseResolver returns a Resolver that resolves relative references
// against base using standard URL resolution. Absolute references,
// fragment-only anchors, and data URIs pass through unchanged, as do
// references that fail to parse.
func NewBaseResolver(base string) (Resolver, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	return ResolverFunc(func(ref string) string {
		if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "data:") {
			return ref
		}
		r, err := url.Parse(ref)
		if err != nil || r.IsAbs() {
			return ref
		}
		return u.ResolveReference(r).String()
	}), nil
}
