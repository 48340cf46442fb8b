package tools

import (
	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
)

// Tool is one AI-backed lookup tool: a field schema plus the prompt preamble
// that frames the user's query. The schema drives both the prompt and the
// parser, so the two can't drift apart.
type Tool struct {
	// Name is the URL-safe identifier ("food-safety")
	Name string

	// Title is the human-readable tool name
	Title string

	// Description is shown in the tool registry listing
	Description string

	Schema aitext.Schema

	// Preamble renders the tool-specific instruction for a query. Week is
	// the gestational week when known, zero otherwise.
	Preamble func(query string, week int) string
}

// Registry returns every available tool in presentation order
func Registry() []Tool {
	return []Tool{
		FoodSafetyTool(),
		NutritionTool(),
		MedicationTool(),
		BabyGrowthTool(),
	}
}

// Lookup finds a tool by name
func Lookup(name string) (Tool, bool) {
	for _, t := range Registry() {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}
