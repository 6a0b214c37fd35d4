package hints

import (
	"strings"
	"testing"
)

func TestForUntrustedContent(t *testing.T) {
	t.Parallel()

	got := ForUntrustedContent(true)
	if !strings.Contains(got, "hint:") {
		t.Errorf("ForUntrustedContent() = %q, missing hint marker", got)
	}
	if !strings.Contains(got, "--no-sanitize") {
		t.Errorf("ForUntrustedContent() = %q, missing sanitize suggestion", got)
	}

	got = ForUntrustedContent(false)
	if strings.Contains(got, "--no-sanitize") {
		t.Errorf("ForUntrustedContent() = %q, sanitize suggestion without cause", got)
	}
}

func TestForNoRenderer(t *testing.T) {
	t.Parallel()

	got := ForNoRenderer([]string{"text/html", "image/png"})
	if !strings.Contains(got, "text/html") || !strings.Contains(got, "image/png") {
		t.Errorf("ForNoRenderer() = %q, missing bundle mimetypes", got)
	}

	got = ForNoRenderer(nil)
	if !strings.Contains(got, "empty") {
		t.Errorf("ForNoRenderer() = %q, missing empty-bundle hint", got)
	}
}
