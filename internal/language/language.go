// Package language defines the closed set of languages the pipeline
// understands and the detection record produced for each utterance.
package language

import "strings"

// Language identifies one supported language.
type Language string

const (
	Tamil     Language = "tamil"
	Telugu    Language = "telugu"
	Kannada   Language = "kannada"
	Malayalam Language = "malayalam"
	English   Language = "english"
	Mixed     Language = "mixed"
)

// None marks an absent secondary language.
const None Language = ""

var all = []Language{Tamil, Telugu, Kannada, Malayalam, English, Mixed}

// Regional lists the languages with cultural context entries, in menu order.
func Regional() []Language {
	return []Language{Tamil, Telugu, Kannada, Malayalam}
}

// All returns every supported language.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// Parse maps a free-form string onto the closed language set.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Tamil:
		return Tamil, true
	case Telugu:
		return Telugu, true
	case Kannada:
		return Kannada, true
	case Malayalam:
		return Malayalam, true
	case English:
		return English, true
	case Mixed:
		return Mixed, true
	}
	return None, false
}

// Valid reports whether l is a member of the closed set.
func (l Language) Valid() bool {
	_, ok := Parse(string(l))
	return ok
}

// Display returns the language name with an initial capital, for user output.
func (l Language) Display() string {
	if l == None {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}
