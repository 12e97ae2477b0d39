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

func newTestClient(serverURL string) *Client {
	c := NewClient("test-key")
	c.baseURL = serverURL
	return c
}

func TestGenerateContent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-1.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.NotNil(t, req.GenerationConfig)
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 0.001)
		assert.Equal(t, 2000, req.GenerationConfig.MaxOutputTokens)

		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "{\"recipes\": []}"}]}}
			]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	text, err := client.GenerateContent(context.Background(), "suggest recipes", &GenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"recipes": []}`, text)
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateContent(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateContent(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerateContent_MissingKey(t *testing.T) {
	client := NewClient("")
	_, err := client.GenerateContent(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
