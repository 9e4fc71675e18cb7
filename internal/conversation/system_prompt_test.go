package conversation

import (
	"strings"
	"testing"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/culture"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
)

func TestBuildDirectiveBranches(t *testing.T) {
	registry := culture.NewRegistry()

	tests := []struct {
		name        string
		det         language.Detection
		wantContain []string
		wantAbsent  []string
	}{
		{
			name: "code-mixed tamil routes to blended directive",
			det: language.Detection{
				Primary:    language.Tamil,
				Secondary:  language.English,
				Confidence: 0.92,
				CodeMixed:  true,
				MixRatio:   0.5,
			},
			wantContain: []string{
				"code-mixed tamil-English",
				"Vanakkam",
				"Tamil Nadu culture",
				"dosa",
				"romanized tamil",
				"50% English",
			},
		},
		{
			name: "pure english routes to plain directive",
			det: language.Detection{
				Primary:    language.English,
				Confidence: 0.99,
			},
			wantContain: []string{"speaking in English", "South Indian expressions"},
			wantAbsent:  []string{"Cultural Context:", "romanized"},
		},
		{
			name: "pure malayalam still requests a blend",
			det: language.Detection{
				Primary:    language.Malayalam,
				Confidence: 0.85,
			},
			wantContain: []string{
				"speaking in malayalam",
				"mix of malayalam and English",
				"romanized malayalam",
			},
			wantAbsent: []string{"Cultural Context:"},
		},
		{
			name: "code-mixed with no registry entry uses neutral defaults",
			det: language.Detection{
				Primary:    language.Mixed,
				Secondary:  language.English,
				Confidence: 0.6,
				CodeMixed:  true,
				MixRatio:   0.3,
			},
			wantContain: []string{"General South Indian", "South Indian cuisine", "Hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDirective(tt.det, registry)
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("directive missing %q\n\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("directive unexpectedly contains %q", absent)
				}
			}
		})
	}
}

// Branch choice must depend only on (CodeMixed, Primary == English).
func TestBuildDirectiveBranchSelectionIsDeterministic(t *testing.T) {
	registry := culture.NewRegistry()

	branchOf := func(det language.Detection) string {
		directive := BuildDirective(det, registry)
		switch {
		case strings.Contains(directive, "Cultural Context:"):
			return "mixed"
		case strings.Contains(directive, "speaking in English"):
			return "english"
		default:
			return "regional"
		}
	}

	tests := []struct {
		det  language.Detection
		want string
	}{
		{language.Detection{Primary: language.Tamil, Secondary: language.English, CodeMixed: true, MixRatio: 0.4, Confidence: 0.9}, "mixed"},
		{language.Detection{Primary: language.English, Secondary: language.Tamil, CodeMixed: true, MixRatio: 0.2, Confidence: 0.9}, "mixed"},
		{language.Detection{Primary: language.English, Confidence: 0.2}, "english"},
		{language.Detection{Primary: language.Telugu, Confidence: 0.2}, "regional"},
		{language.Detection{Primary: language.Kannada, Confidence: 0.99}, "regional"},
	}
	for _, tt := range tests {
		if got := branchOf(tt.det); got != tt.want {
			t.Errorf("branchOf(%+v) = %q, want %q", tt.det, got, tt.want)
		}
	}
}
