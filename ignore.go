package ignore

// MatchResult provides detailed information about a match decision.
type MatchResult struct {
	// Rule is the pattern text of the decisive rule (empty if nothing
	// matched). When ParentExcluded is set, it is the rule that ignored
	// the excluded ancestor directory.
	Rule string

	// Line is the rule's line number (1-indexed) within the AddPatterns
	// content that contributed it. Zero if nothing matched.
	Line int

	// Ignored is the final decision: true if the path should be ignored.
	Ignored bool

	// Matched reports whether any rule matched at all (before negation).
	Matched bool

	// Negated reports whether the decisive rule was a negation.
	Negated bool

	// ParentExcluded reports that the decision came from an ignored
	// ancestor directory: once a directory is ignored, nothing beneath it
	// can be re-included, so later negations were not consulted.
	ParentExcluded bool
}

// WarningHandler is called for each parse warning if set.
type WarningHandler func(warning ParseWarning)

// MatcherOptions configures Matcher behavior.
type MatcherOptions struct {
	// CaseSensitive disables the default ASCII-only case folding in
	// literal and character-class matching. The zero value folds, matching
	// node-ignore's default.
	CaseSensitive bool

	// TrackStats enables per-query counters, readable via Stats. Matching
	// results are unaffected.
	TrackStats bool
}

// Matcher holds an ordered set of compiled gitignore rules.
//
// Thread Safety: Matcher performs no internal locking. Once construction
// and all AddPatterns calls have completed, the Matcher is immutable and
// may be shared by any number of concurrent Match/Ignores callers without
// synchronization. Interleaving AddPatterns with concurrent queries is not
// supported; callers needing that must synchronize externally.
type Matcher struct {
	patterns []compiledPattern
	classes  []charClass
	arena    arena
	index    literalIndex
	warnings []ParseWarning
	handler  WarningHandler
	opts     MatcherOptions
	stats    statCounters
}

// New creates an empty Matcher with default options: case folding on,
// stats off.
func New() *Matcher {
	return &Matcher{}
}

// NewWithOptions creates a Matcher with custom options.
func NewWithOptions(opts MatcherOptions) *Matcher {
	return &Matcher{opts: opts}
}

// SetWarningHandler sets a callback for parse warnings. If set, warnings
// from subsequent AddPatterns calls are reported via the callback instead
// of being collected.
func (m *Matcher) SetWarningHandler(fn WarningHandler) {
	m.handler = fn
}

// AddPatterns parses gitignore content and appends its rules in order.
//
// Content is split on \n with a single trailing \r stripped per line, so
// CRLF files parse identically to LF files. A leading UTF-8 BOM on a line
// is ignored. Malformed lines (unterminated escapes, patterns that are
// empty after flag extraction) are silently skipped and reported as
// warnings; compilation never aborts the rule set.
//
// Returns warnings only when no WarningHandler is set; otherwise they go
// to the handler.
func (m *Matcher) AddPatterns(content []byte) []ParseWarning {
	if content == nil {
		return nil
	}

	c := compiler{arena: &m.arena, classes: &m.classes}

	var parseWarnings []ParseWarning
	for i, line := range splitLines(content) {
		p, warning := c.compileLine(line, i+1)
		if warning != nil {
			parseWarnings = append(parseWarnings, *warning)
		}
		if p == nil {
			continue
		}
		idx := len(m.patterns)
		if p.isLiteral {
			p.indexed = m.index.insert(p.literalBasename, idx)
		}
		m.patterns = append(m.patterns, *p)
	}

	if m.handler != nil {
		for _, w := range parseWarnings {
			m.handler(w)
		}
		return nil
	}

	m.warnings = append(m.warnings, parseWarnings...)
	return parseWarnings
}

// Warnings returns all collected parse warnings. Only populated if no
// WarningHandler was set.
func (m *Matcher) Warnings() []ParseWarning {
	if len(m.warnings) == 0 {
		return nil
	}
	result := make([]ParseWarning, len(m.warnings))
	copy(result, m.warnings)
	return result
}

// RuleCount returns the number of rules currently loaded.
func (m *Matcher) RuleCount() int {
	return len(m.patterns)
}

// Stats returns a snapshot of the query counters. All zeros unless the
// Matcher was built with TrackStats.
func (m *Matcher) Stats() Stats {
	return m.stats.snapshot()
}

// Ignores reports whether the path should be ignored. A trailing slash
// marks the path as a directory; use Match to pass the flag explicitly.
func (m *Matcher) Ignores(path string) bool {
	return m.Match(path, false)
}

// Match reports whether the path should be ignored. isDir indicates
// whether the path is a directory; a trailing slash on path forces it.
// Invalid paths (empty, absolute, drive-prefixed, leading . or ..
// components) are never ignored.
func (m *Matcher) Match(path string, isDir bool) bool {
	r := m.MatchWithReason(path, isDir)
	return r.Ignored
}

// MatchWithReason returns detailed information about why a path matched.
// Useful for debugging complex rule sets.
//
// Result interpretation:
//   - Matched == false: no rule matched; the path is not ignored
//   - Matched == true, Ignored == true: ignored by Rule
//   - Matched == true, Ignored == false: re-included by negation Rule
//   - ParentExcluded == true: an ancestor directory was ignored by Rule
func (m *Matcher) MatchWithReason(path string, isDir bool) MatchResult {
	if m.opts.TrackStats {
		m.stats.calls.Add(1)
	}

	if !validPath(path) {
		return MatchResult{}
	}

	// A trailing slash both marks a directory and is dropped before
	// splitting.
	if path[len(path)-1] == '/' {
		isDir = true
		path = path[:len(path)-1]
	}

	var buf [maxPathComponents]string
	comps, ok := splitComponents(path, &buf)
	if !ok || len(comps) == 0 {
		return MatchResult{}
	}

	// Parent exclusion: evaluate every proper prefix as a directory. An
	// ignored ancestor decides the query immediately; git never lets a
	// negation re-include anything beneath an excluded directory.
	for k := 1; k < len(comps); k++ {
		if ignored, decisive := m.evaluate(comps[:k], true); ignored {
			p := &m.patterns[decisive]
			return MatchResult{
				Rule:           p.raw,
				Line:           p.line,
				Ignored:        true,
				Matched:        true,
				ParentExcluded: true,
			}
		}
	}

	ignored, decisive := m.evaluate(comps, isDir)
	if decisive < 0 {
		return MatchResult{}
	}
	p := &m.patterns[decisive]
	return MatchResult{
		Rule:    p.raw,
		Line:    p.line,
		Ignored: ignored,
		Matched: true,
		Negated: p.negated,
	}
}
