package nicebot

import (
	"bufio"
	"io"
	"strings"

	"github.com/alexanderjkslfj/nicebot/internal/diagnostics"
	"github.com/alexanderjkslfj/nicebot/internal/directive"
	"github.com/alexanderjkslfj/nicebot/internal/group"
	"github.com/alexanderjkslfj/nicebot/internal/trie"
)

// Engine owns the pattern trie for a single host's robots.txt policy.
// Construction and Add are exclusive operations on an engine; once built,
// Check and Has are pure reads safe for any number of concurrent readers
// against a frozen engine.
type Engine struct {
	prefixes      *trie.Node[Permission]
	agentKey      string
	decodePercent bool
	sink          diagnostics.Sink
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithSink routes ingestion diagnostics (skipped lines, unrecognized
// directives) to sink instead of discarding them. Diagnostics are
// observability only: they never change what Add inserts.
func WithSink(sink diagnostics.Sink) EngineOption {
	return func(e *Engine) { e.sink = sink }
}

// NewEngine creates an engine for agentKey, the case-insensitive
// substring to seek in User-agent values. An empty agentKey runs the
// engine in "unattuned" mode: only "*" groups are considered. The
// returned engine is pre-populated by inserting "" -> Unspecified, so
// Check never needs a special case for an engine with no rules yet.
func NewEngine(agentKey string, decodePercent bool, opts ...EngineOption) *Engine {
	agentKey = strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}, agentKey)
	e := &Engine{
		prefixes:      trie.New[Permission](),
		agentKey:      agentKey,
		decodePercent: decodePercent,
		sink:          diagnostics.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.prefixes.Insert("", Unspecified)
	return e
}

// Add parses text as robots.txt content and inserts every Allow/Disallow
// rule that survives group selection for this engine's agent key.
// Multiple Add calls are additive; the trie's last-write-wins resolves
// pattern collisions within and across calls.
func (e *Engine) Add(text string) {
	e.ingest(splitLines(text))
}

// AddReader is like Add but reads lines from r, so callers holding a
// robots.txt body in a file or socket don't need to buffer it themselves
// first.
func (e *Engine) AddReader(r io.Reader) error {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	e.ingest(lines)
	return nil
}

func (e *Engine) ingest(lines []string) {
	pairs := make([]directive.Pair, 0, len(lines))
	for i, line := range lines {
		pair, ok := directive.Parse(line)
		if !ok {
			e.sink.Observe(diagnostics.Event{Line: i + 1, Cause: classify(line), Text: line})
			continue
		}
		pairs = append(pairs, pair)
	}

	for _, rule := range group.Select(pairs, e.agentKey, e.decodePercent) {
		if rule.Allow {
			e.prefixes.Insert(rule.Pattern, Allowed)
		} else {
			e.prefixes.Insert(rule.Pattern, Denied)
		}
	}
}

// Check returns the permission for path. Because the empty pattern is
// always present, the result is never an absent value: at worst it is
// Unspecified.
func (e *Engine) Check(path string) Permission {
	p, _ := e.prefixes.Get(path)
	return p
}

// Has reports whether path is covered by some pattern in the trie,
// including the always-present root default.
func (e *Engine) Has(path string) bool {
	return e.prefixes.Has(path)
}

// Trim releases unused capacity in the underlying trie's child maps.
func (e *Engine) Trim() {
	e.prefixes.Shrink()
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	// A final newline terminates the last line; it does not start another.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// classify gives a best-effort diagnostics.Cause for a line
// directive.Parse rejected, for reporting only.
func classify(line string) diagnostics.Cause {
	trimmed := strings.TrimSpace(directive.StripComment(line))
	if trimmed == "" {
		return diagnostics.CauseCommentOnly
	}
	idx := strings.IndexByte(trimmed, ':')
	if idx < 0 {
		return diagnostics.CauseMalformedLine
	}
	switch strings.ToLower(strings.TrimSpace(trimmed[:idx])) {
	case "user-agent", "allow", "disallow":
		return diagnostics.CauseMalformedLine
	}
	return diagnostics.CauseUnknownDirective
}
