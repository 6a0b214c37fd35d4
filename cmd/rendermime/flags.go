package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the render command.
type cliFlags struct {
	config      string
	prefer      []string
	baseURL     string
	noSanitize  bool
	standalone  bool
	style       string
	classPrefix string
	output      string
	verbose     bool
	version     bool
}

// parseFlags parses args into flags and positional bundle files.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("rendermime", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVar(&f.config, "config", "", "path to YAML config file")
	fs.StringSliceVar(&f.prefer, "prefer", nil, "mimetype preference order, most-preferred first")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL for resolving relative references")
	fs.BoolVar(&f.noSanitize, "no-sanitize", false, "disable HTML sanitization")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML5 document")
	fs.StringVar(&f.style, "style", "", "chroma style for standalone highlight CSS")
	fs.StringVar(&f.classPrefix, "class-prefix", "", "CSS class prefix for highlighted code spans")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: rendermime [flags] <bundle.yaml>\n\n")
		fmt.Fprintf(fs.Output(), "Renders the most-preferred representation of a mime bundle to HTML.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
