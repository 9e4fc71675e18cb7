package culture

import (
	"strings"
	"testing"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
)

func TestLookupRegionalEntries(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		lang     language.Language
		greeting string
		cuisine  string
	}{
		{language.Tamil, "Vanakkam", "dosa"},
		{language.Telugu, "Namaskaram", "biryani"},
		{language.Kannada, "Namaskara", "mysore pak"},
		{language.Malayalam, "Namaskaram", "appam"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			ctx := registry.Lookup(tt.lang)
			if ctx.Greeting != tt.greeting {
				t.Errorf("Greeting = %q, want %q", ctx.Greeting, tt.greeting)
			}
			if !strings.Contains(ctx.Cuisine, tt.cuisine) {
				t.Errorf("Cuisine %q does not mention %q", ctx.Cuisine, tt.cuisine)
			}
			if ctx.Culture == "" {
				t.Error("Culture is empty")
			}
		})
	}
}

func TestLookupAbsentResolvesToZero(t *testing.T) {
	registry := NewRegistry()
	for _, lang := range []language.Language{language.English, language.Mixed, language.None} {
		if ctx := registry.Lookup(lang); ctx != (Context{}) {
			t.Errorf("Lookup(%q) = %+v, want zero value", lang, ctx)
		}
	}
}
