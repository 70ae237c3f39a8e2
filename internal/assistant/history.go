package assistant

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one side of an exchange.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	// retainTurns caps how much conversation a session keeps (6 exchanges).
	retainTurns = 12
	// promptWindow is how many recent turns get replayed into the prompt
	// and the display surface.
	promptWindow = 7
)

// History is the bounded conversation log. Turns go in as user/assistant
// pairs; after each pair the oldest turns beyond the cap are dropped.
type History struct {
	turns []Turn
}

func (h *History) AppendExchange(userText, assistantText string) {
	h.turns = append(h.turns,
		Turn{Role: RoleUser, Content: userText},
		Turn{Role: RoleAssistant, Content: assistantText},
	)
	if n := len(h.turns); n > retainTurns {
		h.turns = append([]Turn(nil), h.turns[n-retainTurns:]...)
	}
}

func (h *History) Len() int { return len(h.turns) }

// Recent returns the newest n turns, oldest first.
func (h *History) Recent(n int) []Turn {
	if n > len(h.turns) {
		n = len(h.turns)
	}
	out := make([]Turn, n)
	copy(out, h.turns[len(h.turns)-n:])
	return out
}

// Transcript renders the newest n turns as "role: content" lines.
func (h *History) Transcript(n int) string {
	recent := h.Recent(n)
	lines := make([]string, len(recent))
	for i, t := range recent {
		lines[i] = t.Role + ": " + t.Content
	}
	return strings.Join(lines, "\n")
}

func (h *History) Reset() { h.turns = nil }
