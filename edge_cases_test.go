package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeCases_LineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		path    string
		isDir   bool
		want    bool
	}{
		{
			"CRLF line endings",
			[]byte("*.log\r\nbuild/\r\n"),
			"test.log", false, true,
		},
		{
			"CRLF directory pattern",
			[]byte("*.log\r\nbuild/\r\n"),
			"build", true, true,
		},
		{
			"CRLF file inside ignored directory",
			[]byte("*.log\r\nbuild/\r\n"),
			"build/output.js", false, true,
		},
		{
			"mixed CRLF and LF",
			[]byte("*.log\r\n*.tmp\nbuild/\r\n"),
			"test.tmp", false, true,
		},
		{
			"no trailing newline",
			[]byte("*.log"),
			"test.log", false, true,
		},
		{
			"multiple blank lines",
			[]byte("*.log\n\n\n\nbuild/"),
			"test.log", false, true,
		},
		{
			"lone CR stays inside the pattern",
			[]byte("a\rb\n"),
			"a\rb", false, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.AddPatterns(tt.content)
			assert.Equal(t, tt.want, m.Match(tt.path, tt.isDir))
		})
	}
}

func TestEdgeCases_BOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}

	t.Run("BOM before first pattern", func(t *testing.T) {
		m := New()
		m.AddPatterns(append(bom, []byte("*.log\n")...))
		assert.True(t, m.Ignores("test.log"))
	})

	t.Run("BOM before comment", func(t *testing.T) {
		m := New()
		m.AddPatterns(append(bom, []byte("# comment\n*.log\n")...))
		assert.Equal(t, 1, m.RuleCount())
		assert.True(t, m.Ignores("test.log"))
	})
}

func TestEdgeCases_CommentsAndBangs(t *testing.T) {
	t.Run("comment is inert", func(t *testing.T) {
		m := New()
		m.AddPatterns([]byte("#*.log\n"))
		assert.Equal(t, 0, m.RuleCount())
		assert.False(t, m.Ignores("#x.log"))
	})

	t.Run("escaped comment matches literal hash path", func(t *testing.T) {
		m := New()
		m.AddPatterns([]byte("\\#*.log\n"))
		assert.True(t, m.Ignores("#x.log"))
		assert.False(t, m.Ignores("x.log"))
	})

	t.Run("escaped bang is a literal bang", func(t *testing.T) {
		m := New()
		m.AddPatterns([]byte("\\!keep\n"))
		assert.True(t, m.Ignores("!keep"))
		assert.False(t, m.Ignores("keep"))
	})
}

func TestEdgeCases_DirOnlySemantics(t *testing.T) {
	m := New()
	m.AddPatterns([]byte("build/\n"))

	// A file named exactly like the directory pattern is not ignored...
	assert.False(t, m.Match("build", false))
	// ...but anything beneath the matching directory is, via parent
	// exclusion.
	assert.True(t, m.Match("build/main.o", false))
	assert.True(t, m.Match("build/deep/nested/file", false))
	// A different parent does not trigger it at the root.
	assert.False(t, m.Match("src/main.go", false))
	// The same directory name deeper in the tree matches too (unanchored).
	assert.True(t, m.Match("src/build/out.o", false))
}

func TestEdgeCases_GlobstarDir(t *testing.T) {
	m := New()
	m.AddPatterns([]byte("**/\n"))

	// "**/" matches every directory but no file at the root level.
	assert.True(t, m.Match("anydir", true))
	assert.False(t, m.Match("anyfile", false))
	assert.True(t, m.Match("a/b", false), "parent dir a is ignored")
}

func TestEdgeCases_EmptyishPatterns(t *testing.T) {
	m := New()
	m.AddPatterns([]byte("/\n//\n!/\n!\n \n\t\n"))
	assert.Equal(t, 0, m.RuleCount())
	assert.False(t, m.Ignores("anything"))
}

func TestEdgeCases_UnicodeLiterals(t *testing.T) {
	m := New()
	m.AddPatterns([]byte("日本語.txt\nrésumé/\n"))

	assert.True(t, m.Ignores("日本語.txt"))
	assert.True(t, m.Match("résumé", true))
	assert.False(t, m.Ignores("日本語.md"))
}

func TestEdgeCases_StarsAcrossComponents(t *testing.T) {
	m := New()
	m.AddPatterns([]byte("a*b\n"))

	assert.True(t, m.Ignores("axb"))
	assert.True(t, m.Ignores("ab"))
	// The star never crosses a slash; "a/b" has no single component
	// matching the whole pattern.
	assert.False(t, m.Ignores("a/b"))
}

func TestEdgeCases_DeepRecursionBounded(t *testing.T) {
	// Pathological star chains must terminate (depth is bounded by
	// segment count plus component count).
	m := New()
	m.AddPatterns([]byte("*a*a*a*a*a*a*a*a*a*b\n"))

	assert.False(t, m.Ignores("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaac"))
	assert.True(t, m.Ignores("aaaaaaaaaab"))
}

func TestEdgeCases_ManyGlobstars(t *testing.T) {
	m := New()
	m.AddPatterns([]byte("**/**/**/foo\n"))

	assert.True(t, m.Ignores("foo"))
	assert.True(t, m.Ignores("a/b/c/d/foo"))
	assert.False(t, m.Ignores("bar"))
}
