package tools

import (
	"fmt"

	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
	"github.com/bumpsafe/bumpsafe-be/internal/pregnancy"
)

// BabyGrowthTool describes fetal development for a gestational week. The
// size comparison comes from the local table; the AI fills in the narrative.
func BabyGrowthTool() Tool {
	return Tool{
		Name:        "baby-growth",
		Title:       "Baby Growth Calculator",
		Description: "Describes fetal development for a gestational week",
		Preamble: func(query string, week int) string {
			size := pregnancy.LookupBabySize(week)
			return fmt.Sprintf(
				"Describe fetal development at week %d of pregnancy. At this stage the baby measures roughly %d mm, about the size of a %s.",
				week, size.LengthMm, size.Description,
			)
		},
		Schema: aitext.Schema{
			{
				Name:  "development",
				Label: "DEVELOPMENT",
				Kind:  aitext.Multiline,
				Hint:  "two or three sentences on what is developing this week",
				Default: func(q string) string {
					return fmt.Sprintf("We couldn't load development details for %s right now. Growth continues steadily week over week; your provider can walk you through this stage.", q)
				},
			},
			{
				Name:     "milestones",
				Label:    "MILESTONES",
				Kind:     aitext.List,
				MaxItems: 5,
				Hint:     "notable milestones around this week",
				Default: func(q string) string {
					return "steady growth, organ maturation, increasing movement"
				},
			},
			{
				Name:  "mother_changes",
				Label: "MOTHER_CHANGES",
				Kind:  aitext.Multiline,
				Hint:  "common changes the mother may notice this week",
				Default: func(q string) string {
					return "Every pregnancy differs; changes in energy, appetite, and sleep are common at most stages."
				},
			},
			{
				Name:     "tips",
				Label:    "TIPS",
				Kind:     aitext.List,
				MaxItems: 3,
				Hint:     "practical tips for this week",
				Default: func(q string) string {
					return "stay hydrated, keep up prenatal vitamins, rest when tired"
				},
			},
		},
	}
}
