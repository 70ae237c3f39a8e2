package assistant

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_CapsAtRetainTurns(t *testing.T) {
	var h History
	for i := 0; i < 20; i++ {
		h.AppendExchange(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	assert.Equal(t, retainTurns, h.Len())

	turns := h.Recent(retainTurns)
	// Oldest surviving exchange is q14/a14 (20 exchanges, 6 kept).
	assert.Equal(t, Turn{Role: RoleUser, Content: "q14"}, turns[0])
	assert.Equal(t, Turn{Role: RoleAssistant, Content: "a19"}, turns[len(turns)-1])
}

func TestHistory_RecentShorterThanAsk(t *testing.T) {
	var h History
	h.AppendExchange("q", "a")

	turns := h.Recent(promptWindow)
	assert.Len(t, turns, 2)
}

func TestHistory_Transcript(t *testing.T) {
	var h History
	h.AppendExchange("hello", "hi there")

	assert.Equal(t, "user: hello\nassistant: hi there", h.Transcript(promptWindow))
}

func TestHistory_Reset(t *testing.T) {
	var h History
	h.AppendExchange("q", "a")
	h.Reset()
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Transcript(promptWindow))
}
