package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/amelia-reyes/boutique-api/config"
)

// CompletionService produces a reply for chat messages that match no fixed
// command. Reply is total: it always returns a usable string and never
// surfaces transport errors to the caller.
type CompletionService interface {
	Reply(ctx context.Context, prompt, userName string) string
}

// DeepSeekService implements CompletionService against the DeepSeek chat
// completions API. When no API key is configured it degrades to a static
// redirect-to-commands reply instead of failing.
type DeepSeekService struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewDeepSeekService creates a new DeepSeek service instance
func NewDeepSeekService(cfg *config.Config) *DeepSeekService {
	apiURL := cfg.DeepSeekAPIURL
	if apiURL == "" {
		apiURL = config.DefaultDeepSeekAPIURL
	}
	return &DeepSeekService{
		apiKey: cfg.DeepSeekAPIKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Reply forwards the prompt to DeepSeek and returns the greeting-prefixed
// completion. Output is capped at 50 tokens with temperature 0.7. Any
// transport or response error is logged and replaced with a static apology.
func (s *DeepSeekService) Reply(ctx context.Context, prompt, userName string) string {
	if s.apiKey == "" {
		return fmt.Sprintf("Hello %s, I understood \"%s\", but I can assist better with specific queries like \"Find Products\" or \"Check Order Status\".", userName, prompt)
	}

	text, err := s.complete(ctx, prompt)
	if err != nil {
		log.Printf("DeepSeek error: %v", err)
		return fmt.Sprintf("Hello %s, sorry, I couldn’t process your request due to an API issue. Try specific commands like \"Find Products\".", userName)
	}
	return fmt.Sprintf("Hello %s, %s", userName, strings.TrimSpace(text))
}

func (s *DeepSeekService) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       "deepseek-chat",
		Messages:    []completionMessage{{Role: "user", Content: prompt}},
		MaxTokens:   50,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completions endpoint: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completions endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completions response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completions response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
