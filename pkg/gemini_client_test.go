package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkJSON(t *testing.T, texts ...string) string {
	t.Helper()
	var parts []Part
	for _, text := range texts {
		parts = append(parts, Part{Text: text})
	}
	body, err := json.Marshal(GenerateContentResponse{
		Candidates: []Candidate{{Content: Content{Role: "model", Parts: parts}}},
	})
	require.NoError(t, err)
	return string(body)
}

func TestGenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req GenerateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Contents)

		fmt.Fprint(w, chunkJSON(t, `{"action":"NONE","number":null}`))
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL("test-key", "test-model", server.URL)
	resp, err := client.GenerateContent(context.Background(), GenerateContentRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"action":"NONE","number":null}`, resp.Text())
}

func TestStreamGenerateContent_TokenOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model:streamGenerateContent", r.URL.Path)
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "data: %s\n\n", chunkJSON(t, "福"))
		fmt.Fprint(w, ": keepalive comment\n\n")
		fmt.Fprintf(w, "data: %s\n\n", chunkJSON(t, "德", "爺"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL("test-key", "test-model", server.URL)

	var tokens []string
	err := client.StreamGenerateContent(context.Background(), GenerateContentRequest{}, func(resp *GenerateContentResponse) error {
		for _, c := range resp.Candidates {
			for _, p := range c.Content.Parts {
				tokens = append(tokens, p.Text)
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"福", "德", "爺"}, tokens)
}

func TestStreamGenerateContent_HandlerErrorStopsStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "data: %s\n\n", chunkJSON(t, "a"))
		fmt.Fprintf(w, "data: %s\n\n", chunkJSON(t, "b"))
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL("k", "test-model", server.URL)

	calls := 0
	err := client.StreamGenerateContent(context.Background(), GenerateContentRequest{}, func(*GenerateContentResponse) error {
		calls++
		return fmt.Errorf("stop")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestUpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"bad request", http.StatusBadRequest, ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer server.Close()

			client := NewGeminiClientWithBaseURL("k", "test-model", server.URL)

			_, err := client.GenerateContent(context.Background(), GenerateContentRequest{})
			assert.ErrorIs(t, err, tt.want)

			err = client.StreamGenerateContent(context.Background(), GenerateContentRequest{}, func(*GenerateContentResponse) error {
				t.Fatal("handler must not run on upstream failure")
				return nil
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpstreamErrorMapping_Generic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL("k", "test-model", server.URL)
	_, err := client.GenerateContent(context.Background(), GenerateContentRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.NotErrorIs(t, err, ErrInvalidRequest)
}
