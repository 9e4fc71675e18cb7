package speech

import (
	"testing"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePhrasesCatalog(t *testing.T) {
	for _, lang := range language.Regional() {
		phrases := SamplePhrases(lang)
		require.Len(t, phrases, 4, "catalog for %s", lang)
		for _, p := range phrases {
			assert.NotEmpty(t, p.Text)
			assert.Equal(t, lang, p.Primary)
			assert.NotEmpty(t, p.Description)
			assert.GreaterOrEqual(t, p.MixRatio, 0.0)
			assert.LessOrEqual(t, p.MixRatio, 1.0)
		}
	}
}

func TestSamplePhrasesUnknownLanguage(t *testing.T) {
	assert.Empty(t, SamplePhrases(language.English))
	assert.Empty(t, SamplePhrases(language.Mixed))
}

func TestSamplePhrasesReturnsCopy(t *testing.T) {
	first := SamplePhrases(language.Tamil)
	first[0].Text = "mutated"
	second := SamplePhrases(language.Tamil)
	assert.NotEqual(t, "mutated", second[0].Text)
}

func TestCustomPhrase(t *testing.T) {
	p := CustomPhrase("Enna da, free-aa irukkiya?", language.Tamil)
	assert.Equal(t, "Enna da, free-aa irukkiya?", p.Text)
	assert.Equal(t, language.Tamil, p.Primary)
	assert.Equal(t, language.None, p.Secondary)
	assert.Equal(t, 0.3, p.MixRatio)
	assert.Equal(t, "Custom user input", p.Description)
}
