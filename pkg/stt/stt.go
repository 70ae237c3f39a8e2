// Package stt wraps speech-recognition engines behind one interface.
// Audio is always mono 16 kHz float32 samples in [-1, 1].
package stt

import "context"

// Recognizer converts audio samples to text. lang is a reply-language tag
// ("en", "hi") or "auto". Recognized text may be empty; that is not an
// error here — callers decide whether silence is acceptable.
type Recognizer interface {
	Transcribe(ctx context.Context, samples []float32, lang string) (string, error)
	Close() error
}
