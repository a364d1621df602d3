package ignore

import (
	"strings"
)

// maxPathComponents caps the number of components a query path may have.
// Deeper paths are reported as not ignored; this is a graceful bound, not a
// correctness property.
const maxPathComponents = 64

// splitLines splits AddPatterns content into lines. Lines are separated by
// \n; a single trailing \r per line is stripped so CRLF content parses the
// same as LF content. A lone \r is not a line terminator.
func splitLines(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasSuffix(line, "\r") {
			lines[i] = line[:len(line)-1]
		}
	}
	return lines
}

// oddTrailingBackslashes reports whether line ends in an unterminated
// escape: an odd run of trailing backslashes.
func oddTrailingBackslashes(line string) bool {
	bs := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}
	return bs%2 == 1
}

// trimTrailingWhitespace removes trailing spaces and tabs from a line,
// respecting backslash-escaped whitespace per the gitignore spec.
//
// Git behavior: "Trailing spaces are ignored unless they are quoted with
// backslash." The run is counted right-to-left; an odd number of
// backslashes immediately before the run escapes it:
//   - "foo "   -> "foo"    (trailing space stripped)
//   - "foo\ "  -> "foo\ "  (escaped space kept; the element parser resolves \ )
//   - "foo\\ " -> "foo\\"  (escaped backslash, unescaped space stripped)
func trimTrailingWhitespace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return line
	}

	bs := 0
	for i := end - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}
	if bs%2 == 1 {
		// The whitespace run is escaped; keep the line intact.
		return line
	}

	return line[:end]
}

// validPath reports whether a query path is acceptable at all. Rejected
// paths are never ignored: empty strings, absolute paths, Windows drive
// prefixes, "." and "..", and "./" or "../" prefixes.
func validPath(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' {
		return false
	}
	if len(p) >= 2 && p[1] == ':' {
		return false
	}
	if p == "." || p == ".." {
		return false
	}
	if strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return false
	}
	return true
}

// splitComponents splits a path into non-empty slash-separated components,
// filling buf to avoid per-query allocation. ok is false when the path has
// more than maxPathComponents components.
func splitComponents(p string, buf *[maxPathComponents]string) (comps []string, ok bool) {
	n := 0
	for len(p) > 0 {
		j := strings.IndexByte(p, '/')
		var part string
		if j < 0 {
			part, p = p, ""
		} else {
			part, p = p[:j], p[j+1:]
		}
		if part == "" {
			continue
		}
		if n == maxPathComponents {
			return nil, false
		}
		buf[n] = part
		n++
	}
	return buf[:n], true
}

// hasUpperASCII reports whether s contains an ASCII uppercase letter.
func hasUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// lowerASCII returns s with ASCII uppercase letters folded to lowercase.
// Non-ASCII bytes pass through untouched.
func lowerASCII(s string) string {
	if !hasUpperASCII(s) {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
