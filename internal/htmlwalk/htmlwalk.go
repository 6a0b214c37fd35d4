// Package htmlwalk applies transforms to parsed HTML trees: rewriting
// resource references through a caller-supplied resolver and structural
// element checks. It handles both full documents and fragments, so the
// same logic serves headless pipeline stages and tests alike.
package htmlwalk

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveURLs rewrites every present, non-empty src and href attribute
// in content through resolve and returns the re-serialized markup.
// Absent and empty attributes are left untouched; resolve decides what
// counts as relative.
func ResolveURLs(content string, resolve func(string) string) (string, error) {
	doc, isFragment, err := parse(content)
	if err != nil {
		return "", err
	}

	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for i, attr := range n.Attr {
			if attr.Key != "src" && attr.Key != "href" {
				continue
			}
			if attr.Val == "" {
				continue
			}
			n.Attr[i].Val = resolve(attr.Val)
		}
	})

	return render(doc, isFragment)
}

// HasElement reports whether content parses as markup containing at
// least one element with the given tag name.
func HasElement(content, tag string) (bool, error) {
	doc, _, err := parse(content)
	if err != nil {
		return false, err
	}

	found := false
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
			found = true
		}
	})
	return found, nil
}

// walk visits every node in the tree rooted at n in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// parse handles both full documents and fragments.
// Returns the parsed root, whether the input was a fragment, and any error.
func parse(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// render serializes the tree back to markup. For fragments, only the
// children are rendered so no <html><body> wrapper is introduced.
func render(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
