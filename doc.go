// Package ignore evaluates whether relative file paths are ignored under
// gitignore rules, with semantics compatible with the node-ignore library.
//
// The package is a pure in-memory engine: it consumes pattern text and
// candidate paths and returns booleans. Directory traversal, .gitignore
// discovery, and default pattern bundles are left to the caller.
//
// # Basic Usage
//
//	m := ignore.New()
//	m.AddPatterns([]byte("*.log\n!important.log\nbuild/\n"))
//
//	m.Ignores("debug.log")      // true
//	m.Ignores("important.log")  // false
//	m.Ignores("build/")         // true (trailing slash means directory)
//	m.Match("build", true)      // same query with an explicit is-dir flag
//
// # Supported Syntax
//
//   - Plain names: "debug.log" matches at any depth
//   - Leading /: "/debug.log" matches only at the root
//   - Trailing /: "build/" matches directories only
//   - Single star: "*.log" matches within one path component
//   - Double star: "**/logs", "logs/**", "a/**/b"
//   - Single char: "?" matches one non-slash byte
//   - Character classes: "[a-z]", "[!0-9]" ("[^0-9]" is accepted too)
//   - Escapes: "\!", "\#", "\ " (escaped trailing space is preserved)
//   - Negation: "!important.log" re-includes a file
//
// # Parent Directory Exclusion
//
// Once a directory is ignored, nothing beneath it can be re-included. A rule
// set of "/abc/" followed by "!/abc/a.js" still ignores "abc/a.js": the
// negation cannot reach inside an excluded parent. This matches git and
// node-ignore, and is where a naive last-match-wins evaluator goes wrong.
//
// # Path Input Contract
//
// Paths must be relative and forward-slash separated. Empty paths, absolute
// paths, Windows drive prefixes ("C:..."), "." and "..", and paths starting
// with "./" or "../" are never ignored; the query returns false rather than
// raising. A trailing slash marks the path as a directory.
//
// # Case Folding
//
// Matching is ASCII case-insensitive by default, in both literals and
// character classes ("[A-Z]" ignores case in both directions). Set
// MatcherOptions.CaseSensitive for exact matching. Folding is deliberately
// ASCII-only, matching git's behavior.
//
// # Thread Safety
//
// The Matcher performs no internal locking. Once construction and all
// AddPatterns calls have completed it is immutable and may be shared by any
// number of concurrent readers. Interleaving AddPatterns with concurrent
// Match calls requires external synchronization.
package ignore
