package rendermime

import (
	"strings"
	"testing"
)

func TestNewSanitizer(t *testing.T) {
	t.Parallel()

	s := NewSanitizer()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "benign markup preserved",
			input:        "<p>ok</p><strong>bold</strong>",
			wantContains: []string{"<p>ok</p>", "<strong>bold</strong>"},
		},
		{
			name:         "script element removed with content",
			input:        "<p>ok</p><script>x</script>",
			wantContains: []string{"<p>ok</p>"},
			wantNot:      []string{"script", "x</"},
		},
		{
			name:         "event handler stripped",
			input:        `<p onclick="evil()">ok</p>`,
			wantContains: []string{"ok"},
			wantNot:      []string{"onclick", "evil"},
		},
		{
			name:         "javascript url stripped",
			input:        `<a href="javascript:evil()">link</a>`,
			wantContains: []string{"link"},
			wantNot:      []string{"javascript:"},
		},
		{
			name:         "highlight classes preserved",
			input:        `<span class="rm-hl-kd">func</span>`,
			wantContains: []string{`class="rm-hl-kd"`},
		},
		{
			name:         "data uri image preserved",
			input:        `<img src="data:image/png;base64,AAAA"/>`,
			wantContains: []string{"data:image/png;base64,AAAA"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.Sanitize(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("Sanitize(%q) = %q, should not contain %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestNewSanitizer_Idempotent(t *testing.T) {
	t.Parallel()

	s := NewSanitizer()
	input := `<p>ok</p><em>fine</em><span class="rm-hl-s">"str"</span>`
	once := s.Sanitize(input)
	twice := s.Sanitize(once)
	if once != twice {
		t.Errorf("Sanitize() not idempotent: %q != %q", once, twice)
	}
}
