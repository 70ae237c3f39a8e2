package nlu

import (
	"fmt"
	"strings"

	"riva/internal/memory"
)

// Reply languages. Only the daily_update greeting differs between them.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// TemplateAnswer renders the deterministic answer for a classified intent
// from the current project record. Pure function; the record invariant
// guarantees every field it reads is present.
func TemplateAnswer(intent Intent, mem *memory.ProjectMemory, lang string) string {
	switch intent {
	case IntentDailyUpdate:
		greet, lead := "Hello!", "Here is today update —"
		if lang == LangHindi {
			greet, lead = "नमस्ते!", "आज का अपडेट —"
		}
		return fmt.Sprintf("%s %s %s · %s complete. %s, %s. %s",
			greet, lead,
			mem.ProjectName, mem.OverallProgress,
			mem.Milestones[0], mem.Milestones[1],
			mem.WeatherNote,
		)

	case IntentMaterials:
		m := mem.Materials
		return fmt.Sprintf("Materials: Cement %s, Steel %s, Bricks %s, Tiles %s.",
			m.Cement, m.Steel, m.Bricks, m.Tiles)

	case IntentDelays:
		if len(mem.Delays) == 0 {
			return "No major delays."
		}
		return "Delays: " + strings.Join(mem.Delays, ", ")

	case IntentTeam:
		t := mem.Team
		return fmt.Sprintf("Team on site: %d masons, %d carpenters, %d electricians.",
			t.Masons, t.Carpenters, t.Electricians)

	case IntentNextSteps:
		return "Next steps: " + strings.Join(mem.NextSteps, "; ")

	case IntentSafety:
		return "Safety measures: " + strings.Join(mem.Safety, "; ")

	case IntentWeather:
		return mem.WeatherNote

	case IntentPercentage:
		return "Overall progress: " + mem.OverallProgress

	case IntentContacts:
		return "Contact: " + mem.Contact

	case IntentSiteHours:
		return "Site hours: " + mem.SiteHours
	}

	// Unreachable through Detect; kept so a stray tag still answers.
	return TemplateAnswer(IntentDailyUpdate, mem, lang)
}
