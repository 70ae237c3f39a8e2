package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	DefaultOllamaURL = "http://127.0.0.1:11434/api/generate"
	DefaultModel     = "llama3.2:1b"
)

// Ollama talks to a local Ollama server over its /api/generate endpoint.
type Ollama struct {
	url    string
	model  string
	client *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response *string `json:"response"`
}

// NewOllama builds a client for the given endpoint and model. A nil
// httpClient gets a default one bounded by Timeout.
func NewOllama(url, model string, httpClient *http.Client) *Ollama {
	if url == "" {
		url = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: Timeout}
	}
	return &Ollama{url: url, model: model, client: httpClient}
}

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", o.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Response == nil {
		return "", fmt.Errorf("response field missing")
	}

	return *out.Response, nil
}
