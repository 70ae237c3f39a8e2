package assistant

import (
	"context"
	"fmt"
	log "log/slog"
	"sync"

	"riva/internal/llm"
	"riva/internal/memory"
	"riva/internal/nlu"
)

// Origin records which path produced a reply.
type Origin string

const (
	// OriginRefined means the generation service polished the draft.
	OriginRefined Origin = "refined"
	// OriginFallback means the deterministic template was used verbatim.
	OriginFallback Origin = "fallback"
)

// Reply is the outcome of one pipeline run.
type Reply struct {
	Text   string
	Intent nlu.Intent
	Origin Origin
}

const promptFormat = `
You are Miss Riverwood, a friendly bilingual (Hindi/English) site assistant.

Base memory:
%s

Recent conversation:
%s

User asked: %s
Draft answer: %s

Give a polished, short, helpful answer in the SAME LANGUAGE as the user.
`

// Session owns all state of one interactive conversation: the project
// record, the bounded history and the last answer/audio shown to the
// display collaborator. One session per daemon; the mutex only serializes
// the daemon's two entry surfaces onto it.
type Session struct {
	mu   sync.Mutex
	mem  *memory.ProjectMemory
	hist History
	gen  llm.Generator

	lastAnswer string
	lastAudio  []byte
}

func NewSession(gen llm.Generator) *Session {
	return &Session{
		mem: memory.DefaultProject(),
		gen: gen,
	}
}

// Answer runs the full pipeline for one user utterance: classify, build the
// deterministic draft, ask the generation service to polish it, and fall
// back to the draft on any failure. Both paths append the exchange to the
// history. It never fails; the generation service can only improve
// phrasing, never gate an answer.
func (s *Session) Answer(ctx context.Context, userText, lang string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, score := nlu.Detect(userText)
	draft := nlu.TemplateAnswer(intent, s.mem, lang)

	prompt := fmt.Sprintf(promptFormat,
		s.mem.Snapshot(),
		s.hist.Transcript(promptWindow),
		userText,
		draft,
	)

	reply := Reply{Text: draft, Intent: intent, Origin: OriginFallback}

	gctx, cancel := context.WithTimeout(ctx, llm.Timeout)
	defer cancel()

	if polished, err := s.gen.Generate(gctx, prompt); err != nil {
		log.Debug("generation failed, using draft", "intent", intent, "score", score, "err", err)
	} else {
		reply.Text = polished
		reply.Origin = OriginRefined
	}

	s.hist.AppendExchange(userText, reply.Text)
	s.lastAnswer = reply.Text
	s.lastAudio = nil

	return reply
}

// Memory returns a copy of the current project record.
func (s *Session) Memory() memory.ProjectMemory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.mem
}

// EditField overwrites one editable scalar of the project record between
// pipeline runs. Returns false for unknown fields.
func (s *Session) EditField(field, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.SetField(field, value)
}

// RecentTurns returns the newest display-window turns, oldest first.
func (s *Session) RecentTurns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Recent(promptWindow)
}

func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Len()
}

// SetLastAudio caches the synthesized voice for the last answer.
func (s *Session) SetLastAudio(audio []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAudio = audio
}

// Last returns the cached last answer text and audio.
func (s *Session) Last() (string, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAnswer, s.lastAudio
}

// Reset clears the conversation and cached answer state. The project
// record deliberately survives.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.Reset()
	s.lastAnswer = ""
	s.lastAudio = nil
}
