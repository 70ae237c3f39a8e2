package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeak_SingleChunk(t *testing.T) {
	var gotLang, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("tl")
		gotText = r.URL.Query().Get("q")
		w.Write([]byte("MP3"))
	}))
	defer srv.Close()

	c := NewForEndpoint(srv.URL, nil)
	audio, err := c.Speak(context.Background(), "Site hours: Mon–Sat", "hi")
	require.NoError(t, err)

	assert.Equal(t, []byte("MP3"), audio)
	assert.Equal(t, "hi", gotLang)
	assert.Equal(t, "Site hours: Mon–Sat", gotText)
}

func TestSpeak_ConcatenatesChunks(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte("X"))
	}))
	defer srv.Close()

	long := strings.Repeat("word ", 200) // well past one chunk
	c := NewForEndpoint(srv.URL, nil)
	audio, err := c.Speak(context.Background(), long, "en")
	require.NoError(t, err)

	assert.Greater(t, calls, 1)
	assert.Len(t, audio, calls)
}

func TestSpeak_EmptyText(t *testing.T) {
	c := NewForEndpoint("http://unused.invalid", nil)
	_, err := c.Speak(context.Background(), "   ", "en")
	assert.Error(t, err)
}

func TestSpeak_PropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewForEndpoint(srv.URL, nil)
	_, err := c.Speak(context.Background(), "hello", "en")
	assert.ErrorContains(t, err, "tts status")
}

func TestSplitChunks(t *testing.T) {
	chunks := splitChunks("a b c", 3)
	assert.Equal(t, []string{"a b", "c"}, chunks)

	chunks = splitChunks("abcdefgh", 3)
	assert.Equal(t, []string{"abcdefgh"}, chunks)

	assert.Empty(t, splitChunks("", 10))
}
