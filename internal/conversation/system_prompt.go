package conversation

import (
	"fmt"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/culture"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
)

const codeMixedDirectiveTemplate = `You are a friendly, culturally aware assistant who naturally speaks in code-mixed %[1]s-English, just like urban South Indians do in daily conversation.

Cultural Context:
- Primary language: %[2]s
- Greeting style: %[3]s
- Cultural knowledge: %[4]s
- Food references: %[5]s

Response Style:
- Mix %[1]s and English naturally (like the user did)
- Use appropriate %[1]s greetings and expressions
- Include cultural references when relevant
- Keep responses conversational and warm
- Match the user's code-mixing style and ratio (about %.0[6]f%% English in their message)
- Use romanized %[1]s (English letters) for %[1]s words

Examples of natural %[1]s-English mixing:
- "Vanakkam! How are you? Naan nalla irukken da!"
- "Office work romba busy-aa irukku, but weekend plans ready!"
- "Shall we go for lunch? Biriyani sapdalam!"

Remember: Be natural, friendly, and culturally appropriate!`

const plainEnglishDirective = `You are a friendly assistant. The user is speaking in English.
Respond naturally in English, but feel free to use some South Indian expressions if contextually appropriate.`

const regionalBlendDirectiveTemplate = `You are a friendly assistant. The user is speaking in %[1]s.
Respond in a mix of %[1]s and English, as this is natural for South Indian conversations. Use romanized %[1]s.`

// BuildDirective constructs the generation directive for one turn from a
// detection record and the cultural registry. Pure string construction with
// no failure modes.
//
// Three mutually exclusive branches, selected by the record:
//  1. code-mixed input: blend the primary language and English, flavored with
//     the matched cultural context, matching the user's ratio, romanized.
//  2. pure English input: plain English with optional light regional flavor.
//  3. pure regional input: still request a natural regional/English blend.
//     Spoken code-mixing is the cultural default for these languages, so no
//     attempt is made to force a pure non-English reply.
func BuildDirective(det language.Detection, registry *culture.Registry) string {
	primary := det.Primary
	if det.CodeMixed {
		ctx := registry.Lookup(primary)
		return fmt.Sprintf(codeMixedDirectiveTemplate,
			string(primary),
			primary.Display(),
			orDefault(ctx.Greeting, "Hello"),
			orDefault(ctx.Culture, "General South Indian"),
			orDefault(ctx.Cuisine, "South Indian cuisine"),
			det.MixRatio*100,
		)
	}
	if primary == language.English {
		return plainEnglishDirective
	}
	return fmt.Sprintf(regionalBlendDirectiveTemplate, string(primary))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
