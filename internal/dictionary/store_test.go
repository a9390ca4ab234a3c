package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/docquery/internal/lang"
)

func TestNewStore_SeedsBuiltins(t *testing.T) {
	s := NewStore()

	entry, ok := s.Synonyms("server", lang.English)
	require.True(t, ok)
	assert.Equal(t, SourceBuiltin, entry.Source)
	assert.Contains(t, entry.Expansions, "infrastructure")

	entry, ok = s.Synonyms("مستند", lang.Arabic)
	require.True(t, ok)
	assert.Contains(t, entry.Expansions, "وثيقة")

	entry, ok = s.Acronyms("API", lang.English)
	require.True(t, ok)
	assert.Equal(t, "Application Programming Interface", entry.Expansions[0])
}

func TestStore_LatinLookupsCaseInsensitive(t *testing.T) {
	s := NewStore()

	lower, okLower := s.Synonyms("server", lang.English)
	upper, okUpper := s.Synonyms("SERVER", lang.English)
	mixed, okMixed := s.Synonyms("Server", lang.English)

	require.True(t, okLower)
	require.True(t, okUpper)
	require.True(t, okMixed)
	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestStore_AddSynonym(t *testing.T) {
	s := NewStore()

	s.AddSynonym("custom_term", []string{"alternative1", "alternative2"})

	entry, ok := s.Synonyms("custom_term", lang.English)
	require.True(t, ok)
	assert.Equal(t, SourceUser, entry.Source)
	assert.Equal(t, []string{"alternative1", "alternative2"}, entry.Expansions)
}

func TestStore_AddSynonym_ArabicInferred(t *testing.T) {
	s := NewStore()

	s.AddSynonym("خطاب", []string{"رسالة", "مراسلة"})

	entry, ok := s.Synonyms("خطاب", lang.Arabic)
	require.True(t, ok)
	assert.Contains(t, entry.Expansions, "رسالة")
}

func TestStore_AddSynonym_OverridesBuiltin(t *testing.T) {
	s := NewStore()

	s.AddSynonym("server", []string{"mainframe"})

	entry, ok := s.Synonyms("server", lang.English)
	require.True(t, ok)
	assert.Equal(t, SourceUser, entry.Source)
	assert.Equal(t, []string{"mainframe"}, entry.Expansions)
}

func TestStore_ContextAcronymNeverDowngradesUser(t *testing.T) {
	s := NewStore()

	s.AddAcronym("QEP", []string{"Query Expansion Pipeline"})
	s.AddContextAcronym("QEP", "Quality Evaluation Process")

	entry, ok := s.Acronyms("qep", lang.English)
	require.True(t, ok)
	assert.Equal(t, SourceUser, entry.Source)
	assert.Equal(t, []string{"Query Expansion Pipeline"}, entry.Expansions)
}

func TestStore_ContextAcronymRecorded(t *testing.T) {
	s := NewStore()

	s.AddContextAcronym("DCS", "Document Control System")

	entry, ok := s.Acronyms("dcs", lang.English)
	require.True(t, ok)
	assert.Equal(t, SourceContext, entry.Source)
	assert.Equal(t, []string{"Document Control System"}, entry.Expansions)
}

func TestStore_InvalidAddsIgnored(t *testing.T) {
	s := NewEmptyStore()

	s.AddSynonym("", []string{"x"})
	s.AddSynonym("term", nil)

	assert.Zero(t, s.SynonymCount(lang.English))
}

func TestStore_ExpansionsCopied(t *testing.T) {
	s := NewEmptyStore()
	src := []string{"one", "two"}

	s.AddSynonym("term", src)
	src[0] = "mutated"

	entry, _ := s.Synonyms("term", lang.English)
	assert.Equal(t, "one", entry.Expansions[0])
}
