package tools

import (
	"fmt"

	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
)

// MedicationTool gives general guidance on a medication during pregnancy.
// Output is informational only; the consult note always points at a
// healthcare provider.
func MedicationTool() Tool {
	return Tool{
		Name:        "medication",
		Title:       "Medication Guide",
		Description: "General guidance on medication use during pregnancy",
		Preamble: func(query string, week int) string {
			return fmt.Sprintf("Give general informational guidance on using the medication %q during pregnancy. This is not medical advice.", query)
		},
		Schema: aitext.Schema{
			{
				Name:        "safety_level",
				Label:       "SAFETY_LEVEL",
				Kind:        aitext.Enum,
				Enum:        []string{"safe", "caution", "avoid", "consult"},
				EnumDefault: "consult",
				Hint:        "general safety classification in pregnancy",
			},
			{
				Name:    "category",
				Label:   "CATEGORY",
				Kind:    aitext.Text,
				Hint:    "the medication class, e.g. analgesic, antihistamine",
				Default: func(q string) string { return "medication" },
			},
			{
				Name:  "guidance",
				Label: "GUIDANCE",
				Kind:  aitext.Multiline,
				Hint:  "two or three sentences of general usage guidance",
				Default: func(q string) string {
					return fmt.Sprintf("We couldn't retrieve guidance for %q right now. Don't start or stop any medication during pregnancy without checking with your healthcare provider first.", q)
				},
			},
			{
				Name:  "risks",
				Label: "RISKS",
				Kind:  aitext.Multiline,
				Hint:  "known pregnancy-specific risks, if any",
				Default: func(q string) string {
					return "Risk information is unavailable right now, so treat this medication as unverified for pregnancy."
				},
			},
			{
				Name:     "alternatives",
				Label:    "ALTERNATIVES",
				Kind:     aitext.List,
				MaxItems: 3,
				Hint:     "commonly suggested pregnancy-safer alternatives",
				Default: func(q string) string {
					return "ask your provider about alternatives"
				},
			},
			{
				Name:    "consult_note",
				Label:   "CONSULT_NOTE",
				Kind:    aitext.Text,
				Hint:    "one sentence directing the user to their provider",
				Default: func(q string) string {
					return "Always confirm medication decisions with your healthcare provider or pharmacist."
				},
			},
		},
	}
}
