package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"riva/internal/assistant"
	"riva/internal/audio"
	"riva/internal/ipc"
	"riva/internal/llm"
	"riva/internal/nlu"
	"riva/internal/playback"
	"riva/internal/proxy"
	"riva/internal/server"
	"riva/internal/tts"
	"riva/pkg/stt"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	listen := cli.StringP("listen", "L", "127.0.0.1:8092", "UI bridge listen address")
	backend := cli.StringP("backend", "b", "ollama", "Generation backend (ollama|openai)")
	ollamaURL := cli.String("ollama", llm.DefaultOllamaURL, "Ollama generate endpoint")
	model := cli.StringP("model", "m", llm.DefaultModel, "Generation model")
	whisperModel := cli.StringP("whisper", "w", "", "Whisper model path (empty disables speech input)")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy address (empty for direct)")
	lang := cli.String("lang", nlu.LangEnglish, "Reply language for the voice trigger (en|hi)")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)

	var httpClient *http.Client
	if *proxyAddr != "" {
		var err error
		httpClient, err = proxy.NewSocksClient(*proxyAddr, llm.Timeout)
		if err != nil {
			log.Error("Failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
			os.Exit(1)
		}
		log.Debug("Loaded proxy")
	}

	gen, err := buildGenerator(*backend, *ollamaURL, *model, httpClient)
	if err != nil {
		log.Error("Failed to init generation backend", "backend", *backend, "err", err)
		os.Exit(1)
	}

	log.Debug("Loaded generation backend", "backend", *backend, "model", *model)

	session := assistant.NewSession(gen)
	speech := tts.New(httpClient)

	var (
		rec        *audio.Recorder
		recognizer stt.Recognizer
	)
	if *whisperModel != "" {
		whisper, err := stt.NewWhisper(*whisperModel, stt.WhisperOptions{})
		if err != nil {
			log.Error("Failed to init whisper", "err", err)
			os.Exit(1)
		}
		defer whisper.Close()
		recognizer = whisper

		rec = audio.NewRecorder()
		if err := rec.Init(); err != nil {
			log.Error("Failed to init audio", "err", err)
			os.Exit(1)
		}
		defer rec.Close()

		log.Debug("Loaded whisper and recorder")
	}

	if err := ipc.StartServer(func(msg ipc.ControlMessage) {
		msgLang := msg.Lang
		if msgLang == "" {
			msgLang = *lang
		}
		switch msg.Cmd {
		case "trigger":
			handleTrigger(rec, recognizer, session, speech, msgLang)
		case "ask":
			handleAsk(session, speech, msg.Text, msgLang)
		case "reset":
			session.Reset()
			log.Info("Conversation cleared")
		default:
			log.Warn("Unknown command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	log.Info("Boot up - successful")

	srv := server.New(session, speech, recognizer)
	log.Info("Serving UI bridge", "addr", *listen)
	if err := http.ListenAndServe(*listen, srv.Handler()); err != nil {
		log.Error("UI bridge failed", "err", err)
		os.Exit(1)
	}
}

func buildGenerator(backend, ollamaURL, model string, httpClient *http.Client) (llm.Generator, error) {
	switch backend {
	case "openai":
		opts := []option.RequestOption{
			option.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
		}
		if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
			opts = append(opts, option.WithBaseURL(base))
		}
		if httpClient != nil {
			opts = append(opts, option.WithHTTPClient(httpClient))
		}
		return llm.NewOpenAI(openai.NewClient(opts...), model), nil
	default:
		return llm.NewOllama(ollamaURL, model, httpClient), nil
	}
}

func handleTrigger(rec *audio.Recorder, recognizer stt.Recognizer, session *assistant.Session, speech *tts.Client, lang string) {
	if rec == nil || recognizer == nil {
		log.Warn("Speech input disabled, run with --whisper")
		return
	}

	log.Info("Starting listening")

	pcm, err := rec.Record()
	if err != nil {
		log.Error("Failed to record", "err", err)
		return
	}

	log.Info("Recorded", "samples", len(pcm))

	ctx, cancel := context.WithTimeout(context.Background(), llm.Timeout)
	defer cancel()

	text, err := recognizer.Transcribe(ctx, pcm, lang)
	if err != nil {
		log.Error("Failed to transcribe", "err", err)
		return
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("No speech detected")
		return
	}

	log.Info("Transcribed", "text", text)

	respond(session, speech, text, lang)
}

func handleAsk(session *assistant.Session, speech *tts.Client, text, lang string) {
	if strings.TrimSpace(text) == "" {
		log.Warn("Empty message, pipeline not invoked")
		return
	}
	respond(session, speech, strings.TrimSpace(text), lang)
}

func respond(session *assistant.Session, speech *tts.Client, text, lang string) {
	reply := session.Answer(context.Background(), text, lang)

	log.Info("──────── RIVA ────────")
	log.Info("intent: ", "intent", reply.Intent)
	log.Info("origin: ", "origin", reply.Origin)
	log.Info("answer: ", "text", reply.Text)
	log.Info("──────────────────────")

	// The text answer is already logged and cached; a synthesis or
	// playback failure must not undo it.
	audioBytes, err := speech.Speak(context.Background(), reply.Text, lang)
	if err != nil {
		log.Error("Failed to synthesize", "err", err)
		return
	}
	session.SetLastAudio(audioBytes)

	if err := playback.PlayMP3(audioBytes); err != nil {
		log.Error("Failed to voice out", "err", err)
	}
}
