// Package highlight bridges fenced code blocks to a syntax highlighter.
// The Bridge contract mirrors an external language lookup: resolution
// may fail for unknown tags, and callers recover locally by falling
// back to plain code. Cached adds the process-wide language cache.
package highlight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownLanguage reports a language tag with no registered lexer.
var ErrUnknownLanguage = errors.New("highlight: unknown language")

// Tokenizer renders code as token-bearing HTML spans for one language.
type Tokenizer interface {
	Tokenize(code string) (string, error)
}

// Bridge resolves a Tokenizer for a language tag. Lookup errors are
// expected outcomes, not fatal conditions: callers fall back to plain
// code and log.
type Bridge interface {
	Lookup(ctx context.Context, language string) (Tokenizer, error)
}

// Chroma returns a Bridge backed by chroma's lexer database, emitting
// spans with CSS classes under classPrefix.
func Chroma(classPrefix string) Bridge {
	return &chromaBridge{prefix: classPrefix}
}

type chromaBridge struct {
	prefix string
}

func (b *chromaBridge) Lookup(ctx context.Context, language string) (Tokenizer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if language == "" {
		return nil, ErrUnknownLanguage
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	return &chromaTokenizer{
		lexer: chroma.Coalesce(lexer),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(b.prefix),
		),
	}, nil
}

type chromaTokenizer struct {
	lexer     chroma.Lexer
	formatter *chromahtml.Formatter
}

func (t *chromaTokenizer) Tokenize(code string) (string, error) {
	it, err := t.lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising: %w", err)
	}
	var buf strings.Builder
	if err := t.formatter.Format(&buf, styles.Fallback, it); err != nil {
		return "", fmt.Errorf("formatting: %w", err)
	}
	return buf.String(), nil
}

// Cached wraps next with a process-wide per-language cache. Entries are
// append-only for the life of the process; concurrent lookups for the
// same still-loading tag share one underlying call. Context errors are
// not cached, so a cancelled first lookup does not poison the tag.
func Cached(next Bridge) Bridge {
	return &cachedBridge{next: next, entries: make(map[string]*entry)}
}

type cachedBridge struct {
	next    Bridge
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ready chan struct{}
	tok   Tokenizer
	err   error
}

func (c *cachedBridge) Lookup(ctx context.Context, language string) (Tokenizer, error) {
	c.mu.Lock()
	e, inFlight := c.entries[language]
	if !inFlight {
		e = &entry{ready: make(chan struct{})}
		c.entries[language] = e
		c.mu.Unlock()

		e.tok, e.err = c.next.Lookup(ctx, language)
		if e.err != nil && (errors.Is(e.err, context.Canceled) || errors.Is(e.err, context.DeadlineExceeded)) {
			c.mu.Lock()
			delete(c.entries, language)
			c.mu.Unlock()
		}
		close(e.ready)
		return e.tok, e.err
	}
	c.mu.Unlock()

	select {
	case <-e.ready:
		return e.tok, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
