package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Language
	}{
		{"english sentence", "find the quarterly report", English},
		{"arabic sentence", "ابحث عن التقرير الشهري", Arabic},
		{"empty", "", English},
		{"numbers only", "123 456", English},
		{"mostly latin with one arabic word", "search the archive for مستند records please", Arabic},
		{"latin with trace arabic below threshold", "a very long english sentence about document management systems م", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.text))
		})
	}
}

func TestResolve_HintOverridesDetection(t *testing.T) {
	text := "مستند نظام"

	assert.Equal(t, English, Resolve(English, text))
	assert.Equal(t, Arabic, Resolve(Arabic, "plain english"))
	assert.Equal(t, Arabic, Resolve(Auto, text))
	assert.Equal(t, English, Resolve(Language("fr"), "fallback to detection"))
}

func TestTokenize_English(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Find the Server", []string{"find", "the", "server"}},
		{"error: failed!", []string{"error", "failed"}},
		{"<p>HTML <b>stripped</b></p>", []string{"html", "stripped"}},
		{"custom_term usage", []string{"custom_term", "usage"}},
		{"the user's archive", []string{"the", "user's", "archive"}},
		{"_wrapped_ token", []string{"wrapped", "token"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input, English))
		})
	}
}

func TestTokenize_ArabicWhitespaceOnly(t *testing.T) {
	tokens := Tokenize("مستند نظام إدارة الوثائق", Arabic)
	require.Len(t, tokens, 4)
	assert.Equal(t, "مستند", tokens[0])
	assert.Equal(t, "الوثائق", tokens[3])
}

func TestTokenize_ArabicPreservesScript(t *testing.T) {
	// Punctuation is stripped but the Arabic script range survives cleaning.
	tokens := Tokenize("مستند، نظام.", Arabic)
	assert.Equal(t, []string{"مستند", "نظام"}, tokens)
}

func TestFilterStopwords_English(t *testing.T) {
	in := []string{"the", "server", "is", "in", "a", "datacenter", "ok"}
	out := FilterStopwords(in, English)

	assert.Equal(t, []string{"server", "datacenter"}, out)
}

func TestFilterStopwords_ShortTokensDropped(t *testing.T) {
	out := FilterStopwords([]string{"ab", "abc", "a"}, English)
	assert.Equal(t, []string{"abc"}, out)
}

func TestFilterStopwords_ArabicRuneLength(t *testing.T) {
	// Two-rune Arabic tokens must be dropped by rune count, not byte count.
	out := FilterStopwords([]string{"من", "مستند"}, Arabic)
	assert.Equal(t, []string{"مستند"}, out)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("The", English))
	assert.True(t, IsStopword("على", Arabic))
	assert.False(t, IsStopword("server", English))
}

func BenchmarkTokenize(b *testing.B) {
	text := "Security measures and security protocols for network security infrastructure."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(text, English)
	}
}
