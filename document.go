package rendermime

import (
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// documentShell wraps a rendered fragment in a complete HTML5 document.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s
</body>
</html>`

// Document wraps a rendered fragment in a standalone HTML5 document.
// When css is non-empty it is injected as a <style> block in the head,
// escaped so it cannot close its own style element.
func Document(title, css, fragment string) string {
	var style string
	if css != "" {
		style = "<style>" + escapeCSS(css) + "</style>\n"
	}
	return fmt.Sprintf(documentShell, html.EscapeString(title), style, fragment)
}

// escapeCSS escapes sequences that could break out of a <style> block.
func escapeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// HighlightCSS returns a stylesheet for the code spans emitted by the
// highlighter bridge under classPrefix, using the named chroma style.
// Unknown style names fall back to chroma's default style.
func HighlightCSS(styleName, classPrefix string) (string, error) {
	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix(classPrefix),
	)
	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, styles.Get(styleName)); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}
