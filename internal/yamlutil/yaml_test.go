package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	type dst struct {
		Name string `yaml:"name"`
	}

	t.Run("valid yaml", func(t *testing.T) {
		t.Parallel()

		var d dst
		if err := Unmarshal([]byte("name: ok\n"), &d); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if d.Name != "ok" {
			t.Errorf("Name = %q, want ok", d.Name)
		}
	})

	t.Run("strict rejects unknown field", func(t *testing.T) {
		t.Parallel()

		var d dst
		if err := Unmarshal([]byte("nam: typo\n"), &d); err == nil {
			t.Fatal("Unmarshal() error = nil, want strict failure")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		var d dst
		if err := Unmarshal(nil, &d); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("Unmarshal() error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("name: x\n"), nil); !errors.Is(err, ErrNilDestination) {
			t.Fatalf("Unmarshal() error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var d dst
		big := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := Unmarshal(big, &d); !errors.Is(err, ErrInputTooLarge) {
			t.Fatalf("Unmarshal() error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalLenient(t *testing.T) {
	t.Parallel()

	// JSON is a YAML subset; bundle files may arrive either way.
	var m map[string]string
	if err := UnmarshalLenient([]byte(`{"text/plain": "hi"}`), &m); err != nil {
		t.Fatalf("UnmarshalLenient() error = %v", err)
	}
	if m["text/plain"] != "hi" {
		t.Errorf("m = %v", m)
	}
}
