package rendermime

import "errors"

// Sentinel errors for render operations.
var (
	// ErrNoRenderer reports that no registered renderer matches any
	// mimetype in the bundle under the given preference order.
	ErrNoRenderer = errors.New("no applicable renderer")

	// ErrUntrustedContent reports a refusal: the picked mimetype is
	// neither intrinsically safe nor sanitizable with a sanitizer present.
	ErrUntrustedContent = errors.New("untrusted content refused")

	// ErrNoSVGElement reports SVG source that parsed as markup but lacks
	// an <svg> root element.
	ErrNoSVGElement = errors.New("source contains no <svg> element")

	// ErrConversion reports a failure inside the Markdown-to-HTML stage.
	ErrConversion = errors.New("markdown conversion failed")

	// ErrMathTable reports a math placeholder/table mismatch. The
	// protection pairing broke, so correctness of the output cannot be
	// guaranteed and the render call fails.
	ErrMathTable = errors.New("math placeholder table mismatch")

	// ErrUnsupportedMimeType reports a render request whose mimetype the
	// invoked renderer does not declare.
	ErrUnsupportedMimeType = errors.New("unsupported mimetype")
)
