package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuflow/docquery/internal/lang"
)

func TestExtractor_Extract_EnglishPipeline(t *testing.T) {
	e := NewExtractor()
	text := "Security measures and security protocols for network security. " +
		"The security team at Acme Widgets Corp reviews network access on 12/3/2024."

	result := e.Extract(text, lang.Auto)

	assert.Equal(t, lang.English, result.Language)
	assert.Contains(t, result.Keywords, "security")
	assert.Contains(t, result.Keywords, "network")

	var entityTexts []string
	for _, ent := range result.NamedEntities {
		entityTexts = append(entityTexts, ent.Text)
	}
	assert.Contains(t, entityTexts, "Acme Widgets Corp")
	assert.Contains(t, entityTexts, "12/3/2024")

	// Concepts are the union of keywords, entities, and topics.
	assert.Contains(t, result.Concepts, "security")
	assert.Contains(t, result.Concepts, "Acme Widgets Corp")

	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestExtractor_Extract_Arabic(t *testing.T) {
	e := NewExtractor()
	text := "مستندات النظام تحتوي على تقارير الأمان وسجلات الوصول للنظام"

	result := e.Extract(text, lang.Auto)

	assert.Equal(t, lang.Arabic, result.Language)
	assert.NotEmpty(t, result.Keywords)
	assert.NotEmpty(t, result.Concepts)
}

func TestExtractor_Extract_EmptyText(t *testing.T) {
	e := NewExtractor()

	for _, text := range []string{"", "   ", "\n\t"} {
		result := e.Extract(text, lang.Auto)
		assert.Empty(t, result.Concepts)
		assert.Empty(t, result.Keywords)
		assert.Empty(t, result.NamedEntities)
		assert.Empty(t, result.Topics)
		assert.Zero(t, result.Confidence)
	}
}

func TestExtractor_Extract_ConceptsDeduplicated(t *testing.T) {
	e := NewExtractor()
	// "security" appears as a keyword and inside entity/topic sources; the
	// union must carry it once.
	result := e.Extract("security security security audit. security audit matters. security audit report.", lang.English)

	counts := map[string]int{}
	for _, c := range result.Concepts {
		counts[strings.ToLower(c)]++
	}
	for c, n := range counts {
		assert.Equal(t, 1, n, "concept %q duplicated", c)
	}
}

func TestExtractor_Extract_ConfidenceBounds(t *testing.T) {
	e := NewExtractor()

	texts := []string{
		"short",
		"a single plain sentence about archives and storage",
		strings.Repeat("document management retention policy archive storage compliance. ", 40),
	}
	for _, text := range texts {
		result := e.Extract(text, lang.Auto)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "text: %.30q", text)
		assert.LessOrEqual(t, result.Confidence, 1.0, "text: %.30q", text)
	}
}

func TestExtractor_Extract_LanguageHintSkipsDetection(t *testing.T) {
	e := NewExtractor()

	// Arabic-heavy text forced to English tokenization rules.
	result := e.Extract("مستند نظام", lang.English)
	assert.Equal(t, lang.English, result.Language)
}

func TestConfidence_Formula(t *testing.T) {
	// Ten concepts in 1000 runes: density 1.0, lengthFactor 1.0.
	assert.InDelta(t, 1.0, confidence(10, 1000), 1e-9)

	// Short text is clamped to a denominator of one hundred runes.
	assert.InDelta(t, 0.05, confidence(1, 50), 1e-9)

	assert.Zero(t, confidence(0, 500))
	assert.Zero(t, confidence(5, 0))
}

func BenchmarkExtractor_Extract(b *testing.B) {
	e := NewExtractor()
	text := strings.Repeat("Security measures and security protocols for network security. ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Extract(text, lang.Auto)
	}
}
