package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllama_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2:1b", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "hello")

		json.NewEncoder(w).Encode(map[string]any{"response": "polished text"})
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "", nil)
	got, err := o.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "polished text", got)
}

func TestOllama_MissingResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"done": true})
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "", nil)
	_, err := o.Generate(context.Background(), "hello")
	assert.ErrorContains(t, err, "response field missing")
}

func TestOllama_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "", nil)
	_, err := o.Generate(context.Background(), "hello")
	assert.ErrorContains(t, err, "decode response")
}

func TestOllama_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "", nil)
	_, err := o.Generate(context.Background(), "hello")
	assert.ErrorContains(t, err, "unexpected status")
}

func TestOllama_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	o := NewOllama(srv.URL, "", nil)
	_, err := o.Generate(context.Background(), "hello")
	assert.Error(t, err)
}

func TestOllama_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOllama(srv.URL, "", nil)
	_, err := o.Generate(ctx, "hello")
	assert.Error(t, err)
}
