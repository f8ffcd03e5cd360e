package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cliffjones/neologizer/pkg/sanitizer"
)

func TestTrimToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowers", input: "  HTML \n", expected: "html"},
		{name: "already clean", input: "list", expected: "list"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: " \t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.TrimToLower(tt.input))
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", sanitizer.NormalizeNewlines("a\r\nb\rc\n"))
	assert.Equal(t, "no breaks", sanitizer.NormalizeNewlines("no breaks"))
}

func TestRemoveControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "keeps common whitespace", input: "a\tb\nc\rd", expected: "a\tb\nc\rd"},
		{name: "drops bell and escape", input: "a\x07b\x1bc", expected: "abc"},
		{name: "drops delete", input: "x\x7fy", expected: "xy"},
		{name: "keeps unicode letters", input: "über café", expected: "über café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.RemoveControlChars(tt.input))
		})
	}
}

func TestMaxLength(t *testing.T) {
	assert.Equal(t, "", sanitizer.MaxLength("hello", 0))
	assert.Equal(t, "", sanitizer.MaxLength("hello", -1))
	assert.Equal(t, "hel", sanitizer.MaxLength("hello", 3))
	assert.Equal(t, "hello", sanitizer.MaxLength("hello", 10))
	assert.Equal(t, "üb", sanitizer.MaxLength("über", 2), "counts runes, not bytes")
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt;", sanitizer.EscapeHTML("a & b <c>"))
	assert.Equal(t, "&#34;q&#34; &#39;s&#39;", sanitizer.EscapeHTML(`"q" 's'`))
}

func TestRemoveNullBytes(t *testing.T) {
	assert.Equal(t, "abc", sanitizer.RemoveNullBytes("a\x00b\x00c"))
}

func TestSourceText(t *testing.T) {
	t.Run("cleans input", func(t *testing.T) {
		got := sanitizer.SourceText("Hello\x00,\r\nworld\x07!", 0)
		assert.Equal(t, "Hello,\nworld!", got)
	})

	t.Run("caps length", func(t *testing.T) {
		got := sanitizer.SourceText("abcdef", 4)
		assert.Equal(t, "abcd", got)
	})

	t.Run("default cap", func(t *testing.T) {
		long := strings.Repeat("a", sanitizer.DefaultMaxInputLength+10)
		got := sanitizer.SourceText(long, 0)
		assert.Len(t, got, sanitizer.DefaultMaxInputLength)
	})
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(sanitizer.RemoveNullBytes, sanitizer.TrimToLower)
	assert.Equal(t, "text", clean("  TE\x00XT "))
	assert.Equal(t, "same", sanitizer.Apply("same"))
}

func BenchmarkSourceText(b *testing.B) {
	text := strings.Repeat("The quick brown fox\r\njumps over the lazy dog.\x00 ", 200)

	for b.Loop() {
		_ = sanitizer.SourceText(text, 0)
	}
}
