// Package rendermime renders mime bundles into safe displayable HTML.
//
// A mime bundle holds alternative representations of one computed result,
// keyed by mimetype. The Registry picks the most-preferred representation
// that has a registered renderer, enforces a content trust policy, and
// invokes the renderer:
//
//	reg := rendermime.DefaultRegistry()
//	result, err := reg.Render(ctx, bundle, rendermime.DefaultPreference(),
//	    rendermime.NewSanitizer(), resolver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)
//
// # Trust Policy
//
// Every renderer classifies each of its mimetypes as safe or unsafe, and
// as sanitizable or not. Safe content renders unconditionally. Unsafe but
// sanitizable content renders only when the caller supplies a Sanitizer.
// Everything else is refused with ErrUntrustedContent; nothing is
// displayed. The classification is a pure function of the mimetype, never
// of the payload.
//
// # Markdown Pipeline
//
// text/markdown runs a staged pipeline: LaTeX math spans are extracted
// behind placeholder tokens, the remaining text is converted with GFM
// extensions (links and images resolved inline, fenced code highlighted
// through an injected bridge), the output is sanitized and walked for
// leftover relative references, and the math is restored verbatim. The
// result arms a deferred math-typeset side effect for the caller.
//
// # Fallback
//
// Refusals (ErrNoRenderer, ErrUntrustedContent) are reportable outcomes,
// not crashes. Callers should degrade gracefully by rendering a plain
// text representation from the same bundle when one is available; see
// Registry.Preferred.
package rendermime
