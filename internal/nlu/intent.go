package nlu

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Intent is one of the closed set of query classes the assistant answers.
type Intent string

const (
	IntentDailyUpdate Intent = "daily_update"
	IntentDelays      Intent = "delays"
	IntentMaterials   Intent = "materials"
	IntentNextSteps   Intent = "next_steps"
	IntentTeam        Intent = "team"
	IntentSafety      Intent = "safety"
	IntentWeather     Intent = "weather"
	IntentPercentage  Intent = "percentage"
	IntentContacts    Intent = "contacts"
	IntentSiteHours   Intent = "site_hours"
)

// catalog order is significant: on equal scores the earlier entry keeps the
// win, and daily_update is the fallback when nothing scores above zero.
var catalog = []struct {
	intent  Intent
	phrases []string
}{
	{IntentDailyUpdate, []string{"construction update", "project update", "progress", "status", "what happened today"}},
	{IntentDelays, []string{"delay", "blocked", "stuck", "issue"}},
	{IntentMaterials, []string{"materials", "cement", "steel", "brick", "tiles", "delivery"}},
	{IntentNextSteps, []string{"next step", "tomorrow", "upcoming"}},
	{IntentTeam, []string{"team", "workforce", "workers"}},
	{IntentSafety, []string{"safety", "ppe", "scaffold"}},
	{IntentWeather, []string{"weather", "rain", "hot", "wind"}},
	{IntentPercentage, []string{"percentage", "overall progress"}},
	{IntentContacts, []string{"contact", "reach"}},
	{IntentSiteHours, []string{"site hours", "timings", "working hours"}},
}

// Detect classifies free-form text against the intent catalog using partial
// fuzzy similarity on the normalized input. It never fails: nonsense input
// lands on daily_update with score 0. There is deliberately no minimum
// score floor; the winning score is returned so callers can observe weak
// classifications.
func Detect(text string) (Intent, int) {
	t := Normalize(text)
	if t == "" {
		return IntentDailyUpdate, 0
	}

	best, bestScore := IntentDailyUpdate, 0
	for _, entry := range catalog {
		for _, phrase := range entry.phrases {
			if sc := fuzzy.PartialRatio(t, phrase); sc > bestScore {
				bestScore, best = sc, entry.intent
			}
		}
	}
	return best, bestScore
}
