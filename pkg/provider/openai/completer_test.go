package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/adrianliechti/avatar/pkg/provider"
	"github.com/adrianliechti/avatar/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama-3.1-8b-instant",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "Hi there! How can I help?"}
			}],
			"usage": {"prompt_tokens": 30, "completion_tokens": 8, "total_tokens": 38}
		}`))
	}))
	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "llama-3.1-8b-instant", openai.WithToken("test-key"))
	require.NoError(t, err)

	maxTokens := 150
	temperature := float32(0.7)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("be brief"),
		provider.UserMessage("hello"),
	}, &provider.CompleteOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})

	require.NoError(t, err)
	require.Equal(t, "Hi there! How can I help?", completion.Message.Text())
	require.Equal(t, provider.CompletionReasonStop, completion.Reason)
	require.Equal(t, &provider.Usage{InputTokens: 30, OutputTokens: 8}, completion.Usage)

	require.Equal(t, "llama-3.1-8b-instant", body["model"])
	require.EqualValues(t, 150, body["max_tokens"])
	require.InDelta(t, 0.7, body["temperature"], 0.0001)

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	require.Equal(t, "system", messages[0].(map[string]any)["role"])
	require.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestCompleteErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "model overloaded", "type": "server_error"}}`))
	}))
	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "llama-3.1-8b-instant", openai.WithToken("test-key"))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{provider.UserMessage("hello")}, nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "model overloaded")
	require.EqualValues(t, 1, calls.Load())
}
