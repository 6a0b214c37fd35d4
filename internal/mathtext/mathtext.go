// Package mathtext shields LaTeX math spans from markup transformation.
// Extract replaces each delimited span with an opaque placeholder token;
// Restore substitutes the original text back after the transformation
// has run. The round trip is byte-identical for the protected spans.
package mathtext

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMismatch reports a placeholder/table pairing failure during Restore.
var ErrMismatch = errors.New("mathtext: placeholder table mismatch")

// mathSpan matches delimited math regions. Alternation order puts $$
// before $ so display math wins at a shared start; Go's leftmost-first
// matching gives earliest-start-wins on overlap. Regions do not nest.
// Single-dollar spans do not cross line breaks.
var mathSpan = regexp.MustCompile(`(?s)\$\$.*?\$\$|\\\[.*?\\\]|\\\(.*?\\\)|\$[^$\n]+\$`)

// tokenPattern matches the placeholder tokens emitted by Extract. The
// token alphabet survives Markdown conversion and HTML sanitization
// unchanged.
var tokenPattern = regexp.MustCompile(`@@(\d+)@@`)

// Table holds extracted math fragments in input order, keyed by the
// placeholder index. A Table lives for one render call.
type Table struct {
	fragments []string
}

// Len reports the number of extracted fragments.
func (t *Table) Len() int { return len(t.fragments) }

// placeholder returns the opaque token standing in for fragment i.
func placeholder(i int) string { return "@@" + strconv.Itoa(i) + "@@" }

// Extract replaces each delimited math span in text with a placeholder
// token and records the original fragment, delimiters included.
// Recognized delimiters: $$...$$, \[...\], \(...\), and single-line
// $...$.
func Extract(text string) (string, *Table) {
	t := &Table{}
	stripped := mathSpan.ReplaceAllStringFunc(text, func(m string) string {
		tok := placeholder(len(t.fragments))
		t.fragments = append(t.fragments, m)
		return tok
	})
	return stripped, t
}

// Restore substitutes every placeholder token in htmlText with its
// original fragment in a single pass. A token with no table entry, or a
// table entry whose token is missing from htmlText, means the
// protection pairing broke; both fail with ErrMismatch. An empty table
// returns htmlText unchanged, since nothing was protected.
func (t *Table) Restore(htmlText string) (string, error) {
	if len(t.fragments) == 0 {
		return htmlText, nil
	}

	seen := make([]bool, len(t.fragments))
	var restoreErr error
	out := tokenPattern.ReplaceAllStringFunc(htmlText, func(m string) string {
		idx, err := strconv.Atoi(tokenPattern.FindStringSubmatch(m)[1])
		if err != nil || idx >= len(t.fragments) {
			if restoreErr == nil {
				restoreErr = fmt.Errorf("%w: no table entry for %s", ErrMismatch, m)
			}
			return m
		}
		seen[idx] = true
		return t.fragments[idx]
	})
	if restoreErr != nil {
		return "", restoreErr
	}
	for i, ok := range seen {
		if !ok {
			return "", fmt.Errorf("%w: fragment %d absent from output", ErrMismatch, i)
		}
	}
	return out, nil
}
