// Package culture holds the static per-language cultural material used to
// flavor generation directives.
package culture

import "github.com/Giri-dharan-14/POC-Multilingual/internal/language"

// Context bundles the cultural touchpoints for one language. It is prompt
// material only and never shown to the user directly.
type Context struct {
	Greeting string
	Culture  string
	Cuisine  string
}

// Registry is an immutable language-to-context table built once at startup.
type Registry struct {
	entries map[language.Language]Context
}

// NewRegistry builds the registry with the supported regional languages.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[language.Language]Context{
			language.Tamil: {
				Greeting: "Vanakkam",
				Culture:  "Tamil Nadu culture, Chennai references, Tamil cinema",
				Cuisine:  "dosa, idli, sambar, rasam, Tamil cuisine",
			},
			language.Telugu: {
				Greeting: "Namaskaram",
				Culture:  "Andhra/Telangana culture, Hyderabad references, Tollywood",
				Cuisine:  "biryani, pesarattu, gongura, Telugu cuisine",
			},
			language.Kannada: {
				Greeting: "Namaskara",
				Culture:  "Karnataka culture, Bangalore references, Sandalwood",
				Cuisine:  "masala dosa, mysore pak, Kannada cuisine",
			},
			language.Malayalam: {
				Greeting: "Namaskaram",
				Culture:  "Kerala culture, backwaters, Malayalam cinema",
				Cuisine:  "appam, fish curry, coconut, Kerala cuisine",
			},
		},
	}
}

// Lookup returns the context for a language. Languages without an entry
// (English, Mixed) resolve to the zero value so prompt construction always
// has something to work with.
func (r *Registry) Lookup(lang language.Language) Context {
	return r.entries[lang]
}
