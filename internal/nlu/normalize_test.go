package nlu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("Hello,   World!!"))
}

func TestNormalize_DropsStopWords(t *testing.T) {
	got := Normalize("What IS the Progress?")
	assert.Equal(t, "progress", got)

	for _, stop := range []string{"what", "is", "the"} {
		assert.NotContains(t, strings.Fields(got), stop)
	}
}

func TestNormalize_ReplacementsAreOrdered(t *testing.T) {
	// "updation" rewrites to "update" first, which is what lets the
	// "safety update" rule fire afterwards.
	assert.Equal(t, "safety", Normalize("safety updation"))

	assert.Equal(t, "site", Normalize("worksite"))
	assert.Equal(t, "construction", Normalize("constructions"))

	// The material rule appends to an existing plural; that is the
	// long-standing behavior the fuzzy matcher absorbs.
	assert.Equal(t, "materialss", Normalize("materials"))
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("  ??!  "))
}

func TestNormalize_KeepsDevanagariLetters(t *testing.T) {
	// Combining marks fall away like punctuation; the letters survive.
	assert.Equal(t, "नमस त progress", Normalize("नमस्ते, the progress!"))
}
