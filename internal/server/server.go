// Package server is the websocket bridge between the daemon's assistant
// session and the UI collaborators: display, memory editing and reset stay
// behind narrow JSON messages, the UI owns everything visual.
package server

import (
	"context"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"riva/internal/assistant"
	"riva/internal/memory"
	"riva/internal/nlu"
	"riva/internal/tts"
	"riva/pkg/audioconv"
	"riva/pkg/stt"
)

// ClientMessage is what the UI sends. Kind selects the operation:
// "ask" (Text, Lang), "audio" (Audio, Lang), "edit" (Field, Value),
// "reset", "history", "memory".
type ClientMessage struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Lang  string `json:"lang,omitempty"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
	Audio []byte `json:"audio,omitempty"`
}

// ServerMessage is what the daemon sends back.
type ServerMessage struct {
	Kind   string                `json:"kind"` // answer, transcript, history, memory, ok, warning, error
	Text   string                `json:"text,omitempty"`
	Intent string                `json:"intent,omitempty"`
	Origin string                `json:"origin,omitempty"`
	Turns  []assistant.Turn      `json:"turns,omitempty"`
	Memory *memory.ProjectMemory `json:"memory,omitempty"`
	Audio  []byte                `json:"audio,omitempty"`
}

type Server struct {
	session  *assistant.Session
	speech   *tts.Client
	rec      stt.Recognizer // nil when speech input is disabled
	upgrader websocket.Upgrader
}

func New(session *assistant.Session, speech *tts.Client, rec stt.Recognizer) *Server {
	return &Server{
		session: session,
		speech:  speech,
		rec:     rec,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	log.Info("UI connected", "remote", r.RemoteAddr)

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Info("UI disconnected", "remote", r.RemoteAddr)
				return
			}
			log.Warn("ws read failed", "err", err)
			return
		}

		s.dispatch(r.Context(), conn, msg)
	}
}

func (s *Server) dispatch(ctx context.Context, conn *websocket.Conn, msg ClientMessage) {
	switch msg.Kind {
	case "ask":
		s.handleAsk(ctx, conn, msg)
	case "audio":
		s.handleAudio(ctx, conn, msg)
	case "edit":
		if !s.session.EditField(msg.Field, msg.Value) {
			send(conn, ServerMessage{Kind: "warning", Text: "unknown memory field: " + msg.Field})
			return
		}
		mem := s.session.Memory()
		send(conn, ServerMessage{Kind: "memory", Memory: &mem})
	case "reset":
		s.session.Reset()
		send(conn, ServerMessage{Kind: "ok", Text: "conversation cleared"})
	case "history":
		text, audio := s.session.Last()
		send(conn, ServerMessage{
			Kind:  "history",
			Turns: s.session.RecentTurns(),
			Text:  text,
			Audio: audio,
		})
	case "memory":
		mem := s.session.Memory()
		send(conn, ServerMessage{Kind: "memory", Memory: &mem})
	default:
		send(conn, ServerMessage{Kind: "warning", Text: "unknown message kind: " + msg.Kind})
	}
}

func (s *Server) handleAsk(ctx context.Context, conn *websocket.Conn, msg ClientMessage) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		send(conn, ServerMessage{Kind: "warning", Text: "please type something"})
		return
	}

	lang := msg.Lang
	if lang == "" {
		lang = nlu.LangEnglish
	}

	reply := s.session.Answer(ctx, text, lang)
	out := ServerMessage{
		Kind:   "answer",
		Text:   reply.Text,
		Intent: string(reply.Intent),
		Origin: string(reply.Origin),
	}

	// Synthesis failure must never discard the computed text answer.
	audio, err := s.speech.Speak(ctx, reply.Text, lang)
	if err != nil {
		log.Error("synthesis failed", "err", err)
		send(conn, out)
		send(conn, ServerMessage{Kind: "error", Text: "voice synthesis failed"})
		return
	}

	s.session.SetLastAudio(audio)
	out.Audio = audio
	send(conn, out)
}

func (s *Server) handleAudio(ctx context.Context, conn *websocket.Conn, msg ClientMessage) {
	if s.rec == nil {
		send(conn, ServerMessage{Kind: "error", Text: "speech input is disabled"})
		return
	}
	if len(msg.Audio) == 0 {
		send(conn, ServerMessage{Kind: "warning", Text: "please record something first"})
		return
	}

	samples, err := audioconv.ToPCM16k(msg.Audio)
	if err != nil {
		send(conn, ServerMessage{Kind: "error", Text: "could not decode audio: " + err.Error()})
		return
	}

	text, err := s.rec.Transcribe(ctx, samples, msg.Lang)
	if err != nil {
		send(conn, ServerMessage{Kind: "error", Text: "transcription failed"})
		log.Error("transcription failed", "err", err)
		return
	}
	if strings.TrimSpace(text) == "" {
		send(conn, ServerMessage{Kind: "warning", Text: "no speech detected"})
		return
	}

	send(conn, ServerMessage{Kind: "transcript", Text: text})
}

func send(conn *websocket.Conn, msg ServerMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Warn("ws write failed", "err", err)
	}
}
