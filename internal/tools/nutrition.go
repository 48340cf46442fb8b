package tools

import (
	"fmt"

	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
)

// NutritionTool estimates pregnancy-relevant nutrition facts for a food
func NutritionTool() Tool {
	return Tool{
		Name:        "nutrition",
		Title:       "Nutrition Calculator",
		Description: "Estimates nutrition facts for a food with pregnancy context",
		Preamble: func(query string, week int) string {
			return fmt.Sprintf("Give pregnancy-focused nutrition facts for %q, per typical serving.", query)
		},
		Schema: aitext.Schema{
			{
				Name:    "calories",
				Label:   "CALORIES",
				Kind:    aitext.Text,
				Hint:    "approximate calories per serving, e.g. '95 kcal'",
				Default: func(q string) string { return "varies by serving" },
			},
			{
				Name:    "protein",
				Label:   "PROTEIN",
				Kind:    aitext.Text,
				Hint:    "approximate protein per serving, e.g. '3 g'",
				Default: func(q string) string { return "varies by serving" },
			},
			{
				Name:     "key_nutrients",
				Label:    "KEY_NUTRIENTS",
				Kind:     aitext.List,
				MaxItems: 6,
				Hint:     "nutrients relevant in pregnancy, e.g. folate, iron, calcium",
				Default: func(q string) string {
					return "folate, iron, calcium, fiber"
				},
			},
			{
				Name:  "benefits",
				Label: "BENEFITS",
				Kind:  aitext.Multiline,
				Hint:  "two sentences on what this food contributes during pregnancy",
				Default: func(q string) string {
					return fmt.Sprintf("We couldn't look up details for %q right now. Most whole foods contribute useful nutrients; a varied diet covers the essentials.", q)
				},
			},
			{
				Name:    "serving_tip",
				Label:   "SERVING_TIP",
				Kind:    aitext.Text,
				Hint:    "one practical serving suggestion",
				Default: func(q string) string {
					return fmt.Sprintf("Enjoy %s as part of a balanced meal.", q)
				},
			},
			{
				Name:    "safety_note",
				Label:   "SAFETY_NOTE",
				Kind:    aitext.Text,
				Hint:    "any preparation or portion caveat for pregnancy",
				Default: func(q string) string {
					return "Wash produce well and cook animal products thoroughly."
				},
			},
		},
	}
}
