package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "say hi", req.Messages[0].Content)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hi there"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	text, err := c.Generate(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestGenerateNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "say hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	_, err := c.Generate(context.Background(), "say hi")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerateTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect;
		// with an unread body r.Context() is never canceled and Close hangs.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, 20*time.Millisecond)
	_, err := c.Generate(context.Background(), "say hi")
	require.Error(t, err)
}

func TestGenerateUnreachable(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key", "gpt-4o-mini", "http://127.0.0.1:1", time.Second)
	_, err := c.Generate(context.Background(), "say hi")
	require.Error(t, err)
}
