package rendermime

import (
	"context"
	"strings"
	"testing"
)

func TestLaTeXRenderer_Render(t *testing.T) {
	t.Parallel()

	r := &LaTeXRenderer{}
	source := `$\sum_{i=0}^n i < \infty$`

	result, err := r.Render(context.Background(), Request{MimeType: MimeLaTeX, Source: source})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !result.TypesetMath {
		t.Error("Render() TypesetMath = false, want true")
	}
	// No markup interpretation: the < must be escaped, the rest verbatim.
	if !strings.Contains(result.HTML, `$\sum_{i=0}^n i &lt; \infty$`) {
		t.Errorf("Render() = %q, LaTeX not carried as plain text", result.HTML)
	}
}
