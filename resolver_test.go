package rendermime

import "testing"

func TestNewBaseResolver(t *testing.T) {
	t.Parallel()

	r, err := NewBaseResolver("https://example.com/nb/doc.ipynb")
	if err != nil {
		t.Fatalf("NewBaseResolver() error = %v", err)
	}

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"relative path", "./foo.txt", "https://example.com/nb/foo.txt"},
		{"parent path", "../up.png", "https://example.com/up.png"},
		{"bare name", "file.css", "https://example.com/nb/file.css"},
		{"absolute untouched", "https://other.org/x", "https://other.org/x"},
		{"anchor untouched", "#section", "#section"},
		{"data uri untouched", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"empty untouched", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.ResolveURL(tt.ref); got != tt.want {
				t.Errorf("ResolveURL(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestNewBaseResolver_InvalidBase(t *testing.T) {
	t.Parallel()

	if _, err := NewBaseResolver("https://example.com/%zz"); err == nil {
		t.Fatal("NewBaseResolver() error = nil, want parse error")
	}
}
