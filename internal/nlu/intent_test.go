package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_Fixtures(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"cement steel bricks delivery", IntentMaterials},
		{"any delays or blockers", IntentDelays},
		{"What is the construction update today?", IntentDailyUpdate},
		{"Team on site today?", IntentTeam},
		{"Weather impact today?", IntentWeather},
		{"Contacts and site hours?", IntentContacts},
		{"safety updation", IntentSafety},
	}
	for _, c := range cases {
		got, _ := Detect(c.text)
		assert.Equal(t, c.want, got, "input %q", c.text)
	}
}

func TestDetect_FallsBackOnNonsense(t *testing.T) {
	got, _ := Detect("asdkjasd")
	assert.Equal(t, IntentDailyUpdate, got)
}

func TestDetect_EmptyInput(t *testing.T) {
	got, score := Detect("")
	assert.Equal(t, IntentDailyUpdate, got)
	assert.Zero(t, score)
}

func TestDetect_Deterministic(t *testing.T) {
	for _, text := range []string{"cement steel bricks delivery", "asdkjasd", "progress"} {
		first, firstScore := Detect(text)
		for i := 0; i < 5; i++ {
			got, score := Detect(text)
			assert.Equal(t, first, got)
			assert.Equal(t, firstScore, score)
		}
	}
}

func TestDetect_TieKeepsCatalogOrder(t *testing.T) {
	// "status" gives daily_update a perfect score before the materials
	// phrases get their turn; a later perfect score must not overwrite.
	got, score := Detect("Materials delivery status?")
	assert.Equal(t, IntentDailyUpdate, got)
	assert.Equal(t, 100, score)
}
