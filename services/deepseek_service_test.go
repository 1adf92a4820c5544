package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amelia-reyes/boutique-api/config"
)

func TestReplyWithoutAPIKey(t *testing.T) {
	service := NewDeepSeekService(&config.Config{})

	reply := service.Reply(context.Background(), "do you ship to Canada?", "Priya")

	assert.Equal(t, "Hello Priya, I understood \"do you ship to Canada?\", but I can assist better with specific queries like \"Find Products\" or \"Check Order Status\".", reply)
}

func TestReplySuccess(t *testing.T) {
	var captured completionRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  We ship worldwide.  "}},
			},
		})
	}))
	defer server.Close()

	service := NewDeepSeekService(&config.Config{
		DeepSeekAPIKey: "test-key",
		DeepSeekAPIURL: server.URL,
	})

	reply := service.Reply(context.Background(), "do you ship to Canada?", "Priya")

	assert.Equal(t, "Hello Priya, We ship worldwide.", reply)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "deepseek-chat", captured.Model)
	assert.Equal(t, 50, captured.MaxTokens)
	assert.Equal(t, 0.7, captured.Temperature)
	if assert.Len(t, captured.Messages, 1) {
		assert.Equal(t, "user", captured.Messages[0].Role)
		assert.Equal(t, "do you ship to Canada?", captured.Messages[0].Content)
	}
}

func TestReplyAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewDeepSeekService(&config.Config{
		DeepSeekAPIKey: "test-key",
		DeepSeekAPIURL: server.URL,
	})

	reply := service.Reply(context.Background(), "anything", "Priya")

	assert.Equal(t, "Hello Priya, sorry, I couldn’t process your request due to an API issue. Try specific commands like \"Find Products\".", reply)
}

func TestReplyEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	service := NewDeepSeekService(&config.Config{
		DeepSeekAPIKey: "test-key",
		DeepSeekAPIURL: server.URL,
	})

	reply := service.Reply(context.Background(), "anything", "Priya")

	assert.Contains(t, reply, "Hello Priya, sorry,")
}
