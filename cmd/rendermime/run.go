package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	rendermime "github.com/alnah/go-rendermime"
	"github.com/alnah/go-rendermime/internal/config"
	"github.com/alnah/go-rendermime/internal/hints"
	"github.com/alnah/go-rendermime/internal/yamlutil"
)

// errUsage reports missing or extra positional arguments.
var errUsage = errors.New("usage: rendermime [flags] <bundle.yaml>")

// run renders one bundle file and writes HTML to stdout or --output.
func run(flags *cliFlags, files []string, stdout io.Writer, logger *slog.Logger) error {
	if flags.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}
	if len(files) != 1 {
		return errUsage
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	bundle, err := loadBundle(files[0])
	if err != nil {
		return err
	}

	result, err := render(context.Background(), cfg, bundle, logger)
	if err != nil {
		return err
	}

	out := result.HTML
	if cfg.Standalone {
		css, err := rendermime.HighlightCSS(cfg.Style, cfg.ClassPrefix)
		if err != nil {
			return err
		}
		out = rendermime.Document(files[0], css, out)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// resolveConfig overlays command-line flags on the file or default
// configuration. Flags win.
func resolveConfig(flags *cliFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if len(flags.prefer) > 0 {
		cfg.Prefer = flags.prefer
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.noSanitize {
		sanitize := false
		cfg.Sanitize = &sanitize
	}
	if flags.standalone {
		cfg.Standalone = true
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.classPrefix != "" {
		cfg.ClassPrefix = flags.classPrefix
	}
	return cfg, nil
}

// loadBundle reads a YAML or JSON mapping of mimetype to payload.
func loadBundle(path string) (rendermime.MimeBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	var bundle rendermime.MimeBundle
	if err := yamlutil.UnmarshalLenient(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing bundle: %w%s", err, hints.ForBundleParse())
	}
	return bundle, nil
}

// render dispatches the bundle, degrading to the bundle's plain-text
// representation when the preferred one is refused.
func render(ctx context.Context, cfg config.Config, bundle rendermime.MimeBundle, logger *slog.Logger) (*rendermime.Result, error) {
	reg := rendermime.DefaultRegistry(
		rendermime.WithClassPrefix(cfg.ClassPrefix),
		rendermime.WithLogger(logger),
	)

	var sanitizer rendermime.Sanitizer
	if cfg.SanitizeEnabled() {
		sanitizer = rendermime.NewSanitizer()
	}

	var resolver rendermime.Resolver
	if cfg.BaseURL != "" {
		r, err := rendermime.NewBaseResolver(cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		resolver = r
	}

	prefer := cfg.Prefer
	if len(prefer) == 0 {
		prefer = rendermime.DefaultPreference()
	}

	result, err := reg.Render(ctx, bundle, prefer, sanitizer, resolver)
	if err == nil {
		return result, nil
	}

	// Refusals degrade gracefully: substitute the plain-text
	// representation when the bundle carries one.
	if errors.Is(err, rendermime.ErrUntrustedContent) || errors.Is(err, rendermime.ErrNoRenderer) {
		if _, ok := bundle[rendermime.MimeText]; ok {
			logger.Warn("falling back to plain text", "error", err)
			return reg.Render(ctx, bundle, []string{rendermime.MimeText}, sanitizer, resolver)
		}
	}

	switch {
	case errors.Is(err, rendermime.ErrUntrustedContent):
		return nil, fmt.Errorf("%w%s", err, hints.ForUntrustedContent(!cfg.SanitizeEnabled()))
	case errors.Is(err, rendermime.ErrNoRenderer):
		return nil, fmt.Errorf("%w%s", err, hints.ForNoRenderer(bundle.MimeTypes()))
	}
	return nil, err
}
