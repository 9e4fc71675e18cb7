// Package speech covers the spoken side of the pipeline: microphone capture,
// transcription, pronunciation enhancement, synthesis, and playback.
package speech

import (
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
)

// Phrase is a code-mixed utterance with its mixing metadata. MixRatio runs
// from 0.0 (pure primary language) to 1.0 (pure English).
type Phrase struct {
	Text        string
	Primary     language.Language
	Secondary   language.Language
	MixRatio    float64
	Description string
}

// customPhraseMixRatio is the estimate applied to free-form user input,
// which carries no measured mixing information.
const customPhraseMixRatio = 0.3

var samplePhrases = map[language.Language][]Phrase{
	language.Tamil: {
		{
			Text:        "Vanakkam anna! How are you? Naan nalla irukken, thanks for asking.",
			Primary:     language.Tamil,
			MixRatio:    0.4,
			Description: "Tamil greeting with English conversation",
		},
		{
			Text:        "Office-la meeting irukku, but naan late-aa vandhuruven. Sorry",
			Primary:     language.Tamil,
			MixRatio:    0.6,
			Description: "Tamil-English work context",
		},
		{
			Text:        "Enna bro, weekend plans edhuvum irukka? Let's go for a movie.",
			Primary:     language.Tamil,
			MixRatio:    0.5,
			Description: "Casual Tamil-English mixing",
		},
		{
			Text:        "Coffee kudikkalam-aa? I'm feeling very tired today.",
			Primary:     language.Tamil,
			MixRatio:    0.4,
			Description: "Tamil suggestion with English explanation",
		},
	},
	language.Telugu: {
		{
			Text:        "Namaskaram! How are you doing? Nenu bagane unnaanu, thank you.",
			Primary:     language.Telugu,
			MixRatio:    0.4,
			Description: "Telugu greeting with English",
		},
		{
			Text:        "Office work chaala busy ga undi. But weekend-lo relax cheyaali.",
			Primary:     language.Telugu,
			MixRatio:    0.6,
			Description: "Telugu-English work talk",
		},
		{
			Text:        "Biryani thindam raa! I'm very hungry, chala rojula nundi waiting.",
			Primary:     language.Telugu,
			MixRatio:    0.5,
			Description: "Food context mixing",
		},
		{
			Text:        "Movie ekkada chudaali? Let's book tickets online, convenient ga untundi.",
			Primary:     language.Telugu,
			MixRatio:    0.5,
			Description: "Entertainment planning",
		},
	},
	language.Kannada: {
		{
			Text:        "Namaskara guru! How are you? Naanu chennagi iddene, thanks for asking.",
			Primary:     language.Kannada,
			MixRatio:    0.4,
			Description: "Kannada greeting with English",
		},
		{
			Text:        "Traffic jaasti aagtide. I'll be late for the meeting, sorry guru.",
			Primary:     language.Kannada,
			MixRatio:    0.5,
			Description: "Traffic situation mixing",
		},
		{
			Text:        "Masala dosa thinbekku anstide. Let's go to that new restaurant.",
			Primary:     language.Kannada,
			MixRatio:    0.4,
			Description: "Food craving expression",
		},
		{
			Text:        "Weekend plans yenu guru? I want to go to Mysore, scenic aagide.",
			Primary:     language.Kannada,
			MixRatio:    0.5,
			Description: "Weekend planning",
		},
	},
	language.Malayalam: {
		{
			Text:        "Namaskaram machane! How are you? Njaan nannaayi und, thanks.",
			Primary:     language.Malayalam,
			MixRatio:    0.4,
			Description: "Malayalam greeting with English",
		},
		{
			Text:        "Monsoon kaaranam rain jaasti und. But I love this weather, romantic aanu.",
			Primary:     language.Malayalam,
			MixRatio:    0.5,
			Description: "Weather talk mixing",
		},
		{
			Text:        "Fish curry kazhikkanamennu thonnunnu. Let's go to that coastal restaurant.",
			Primary:     language.Malayalam,
			MixRatio:    0.4,
			Description: "Food preference",
		},
		{
			Text:        "Backwaters-il boat ride cheyyaam. I heard it's very peaceful there.",
			Primary:     language.Malayalam,
			MixRatio:    0.5,
			Description: "Tourism activity",
		},
	},
}

// SamplePhrases returns the curated phrase catalog for a language. Languages
// without a catalog entry return nil.
func SamplePhrases(lang language.Language) []Phrase {
	phrases := samplePhrases[lang]
	out := make([]Phrase, len(phrases))
	copy(out, phrases)
	return out
}

// CustomPhrase wraps free-form user text as a phrase with an estimated mix
// ratio.
func CustomPhrase(text string, primary language.Language) Phrase {
	return Phrase{
		Text:        text,
		Primary:     primary,
		MixRatio:    customPhraseMixRatio,
		Description: "Custom user input",
	}
}
