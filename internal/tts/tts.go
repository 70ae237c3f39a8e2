package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://translate.google.com/translate_tts"

	// The endpoint rejects long q parameters; synthesize per chunk and
	// concatenate the mp3 frames.
	maxChunkRunes = 200
)

// Client synthesizes speech through the Google Translate TTS endpoint
// (the same service gTTS wraps). Locale tags: "en", "hi".
type Client struct {
	endpoint string
	http     *http.Client
}

func New(httpClient *http.Client) *Client {
	return NewForEndpoint(defaultEndpoint, httpClient)
}

// NewForEndpoint targets a non-default synthesis endpoint (tests, mirrors).
func NewForEndpoint(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Speak renders text as mp3 audio. Failures propagate; callers must keep
// the already-computed text answer when synthesis fails.
func (c *Client) Speak(ctx context.Context, text, lang string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}
	if lang == "" {
		lang = "en"
	}

	var audio []byte
	for i, chunk := range splitChunks(text, maxChunkRunes) {
		part, err := c.fetchChunk(ctx, chunk, lang, i)
		if err != nil {
			return nil, err
		}
		audio = append(audio, part...)
	}
	return audio, nil
}

func (c *Client) fetchChunk(ctx context.Context, chunk, lang string, idx int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", chunk)
	q.Set("tl", lang)
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// splitChunks breaks text on whitespace into pieces of at most max runes.
// A single oversized word becomes its own chunk rather than being cut.
func splitChunks(text string, max int) []string {
	words := strings.Fields(text)

	var (
		chunks []string
		cur    strings.Builder
		curLen int
	)
	for _, w := range words {
		wl := len([]rune(w))
		if curLen > 0 && curLen+1+wl > max {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(w)
		curLen += wl
	}
	if curLen > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
