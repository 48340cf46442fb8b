package tools

import (
	"fmt"

	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
)

// FoodSafetyTool checks whether a food is safe to eat while pregnant
func FoodSafetyTool() Tool {
	return Tool{
		Name:        "food-safety",
		Title:       "Food Safety Checker",
		Description: "Checks whether a food or drink is safe during pregnancy",
		Preamble: func(query string, week int) string {
			return fmt.Sprintf("Assess the food or drink %q for safety during pregnancy.", query)
		},
		Schema: aitext.Schema{
			{
				Name:        "safety_level",
				Label:       "SAFETY_LEVEL",
				Kind:        aitext.Enum,
				Enum:        []string{"safe", "caution", "avoid", "consult"},
				EnumDefault: "consult",
				Hint:        "overall safety for the whole pregnancy",
			},
			{
				Name:    "category",
				Label:   "CATEGORY",
				Kind:    aitext.Text,
				Hint:    "the food category, e.g. dairy, seafood, deli meat",
				Default: func(q string) string { return "general food" },
			},
			{
				Name:  "reason",
				Label: "REASON",
				Kind:  aitext.Multiline,
				Hint:  "two or three sentences explaining the assessment",
				Default: func(q string) string {
					return fmt.Sprintf("We couldn't verify safety details for %q right now. Until you can confirm with your healthcare provider, it's best to hold off.", q)
				},
			},
			{
				Name:     "alternatives",
				Label:    "ALTERNATIVES",
				Kind:     aitext.List,
				MaxItems: 4,
				Hint:     "safer substitutes a pregnant person could enjoy instead",
				Default: func(q string) string {
					return "well-cooked alternatives, pasteurized options, fresh fruit and vegetables"
				},
			},
			{
				Name:        "first_trimester",
				Label:       "FIRST_TRIMESTER",
				Kind:        aitext.Enum,
				Enum:        []string{"safe", "caution", "avoid"},
				EnumDefault: "caution",
				Hint:        "safety in weeks 1-12",
			},
			{
				Name:        "second_trimester",
				Label:       "SECOND_TRIMESTER",
				Kind:        aitext.Enum,
				Enum:        []string{"safe", "caution", "avoid"},
				EnumDefault: "caution",
				Hint:        "safety in weeks 13-27",
			},
			{
				Name:        "third_trimester",
				Label:       "THIRD_TRIMESTER",
				Kind:        aitext.Enum,
				Enum:        []string{"safe", "caution", "avoid"},
				EnumDefault: "caution",
				Hint:        "safety in weeks 28-40",
			},
		},
	}
}
