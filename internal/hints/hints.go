// Package hints provides actionable error hints for common render
// refusals. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import "strings"

// ForUntrustedContent returns hints for an untrusted-content refusal.
func ForUntrustedContent(sanitizeDisabled bool) string {
	var hints []string
	if sanitizeDisabled {
		hints = append(hints, "drop --no-sanitize so sanitizable content can render")
	}
	hints = append(hints, "prefer a plain-text representation with --prefer text/plain")
	return formatHints(hints)
}

// ForNoRenderer returns hints for a no-applicable-renderer refusal,
// listing what the bundle actually offers.
func ForNoRenderer(available []string) string {
	if len(available) == 0 {
		return format("the bundle is empty")
	}
	return format("bundle offers " + strings.Join(available, ", ") + "; adjust --prefer")
}

// ForBundleParse returns a hint for unreadable bundle files.
func ForBundleParse() string {
	return format("bundle files map mimetype to payload, e.g. 'text/plain: hello'")
}

// format returns a single hint formatted for error message appending.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints formats multiple hints, one per line.
func formatHints(hints []string) string {
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
