package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rendermime "github.com/alnah/go-rendermime"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_PlainTextBundle(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "text/plain: hello world\n")
	var out strings.Builder

	if err := run(&cliFlags{}, []string{path}, &out, discardLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "hello world") {
		t.Errorf("output = %q, missing payload", out.String())
	}
}

func TestRun_PrefersRicherRepresentation(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "text/plain: boring\n\"text/html\": \"<p>rich</p>\"\n")
	var out strings.Builder

	if err := run(&cliFlags{}, []string{path}, &out, discardLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "<p>rich</p>") {
		t.Errorf("output = %q, want html representation", out.String())
	}
}

func TestRun_FallsBackToPlainTextOnRefusal(t *testing.T) {
	t.Parallel()

	// Script is refused by policy; the plain-text alternative renders.
	path := writeBundle(t, "text/javascript: alert(1)\ntext/plain: fallback text\n")
	var out strings.Builder

	flags := &cliFlags{prefer: []string{"text/javascript"}}
	if err := run(flags, []string{path}, &out, discardLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "fallback text") {
		t.Errorf("output = %q, want plain-text fallback", out.String())
	}
}

func TestRun_RefusalWithoutFallbackErrors(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "text/javascript: alert(1)\n")
	var out strings.Builder

	err := run(&cliFlags{prefer: []string{"text/javascript"}}, []string{path}, &out, discardLogger())
	if !errors.Is(err, rendermime.ErrUntrustedContent) {
		t.Fatalf("run() error = %v, want ErrUntrustedContent", err)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("run() error = %q, missing hint", err)
	}
}

func TestRun_Standalone(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "text/markdown: \"# Title\"\n")
	var out strings.Builder

	if err := run(&cliFlags{standalone: true}, []string{path}, &out, discardLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "<!DOCTYPE html>") {
		t.Errorf("output = %q, missing document shell", got)
	}
	if !strings.Contains(got, "Title") {
		t.Errorf("output = %q, missing rendered content", got)
	}
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "text/plain: to file\n")
	outPath := filepath.Join(t.TempDir(), "out.html")
	var stdout strings.Builder

	if err := run(&cliFlags{output: outPath}, []string{path}, &stdout, discardLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("file = %q, missing payload", data)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty when --output set", stdout.String())
	}
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	if err := run(&cliFlags{}, nil, io.Discard, discardLogger()); !errors.Is(err, errUsage) {
		t.Fatalf("run() error = %v, want errUsage", err)
	}
}
