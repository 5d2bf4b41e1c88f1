// Package openai wraps the chat-completion client used for AI summaries.
// It targets Groq's OpenAI-compatible endpoint; any failure is the caller's
// cue to fall back to the local summarizer.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/config"

	"github.com/sashabaranov/go-openai"
)

const (
	// Fixed system instruction for every summary request.
	systemInstruction = "You are a helpful assistant that summarizes meeting transcripts based on user requirements."
	// Bounded output length and fixed sampling temperature.
	maxTokens   = 1000
	temperature = 0.7
)

// Client wraps an OpenAI-compatible chat completion client configured for Groq
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a chat completion client from the application config.
// Returns an error when no API key is configured; callers should treat that
// as "fallback only", not as a startup failure.
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.HasGroqKey() {
		return nil, fmt.Errorf("no AI provider configured: set GROQ_API_KEY")
	}

	clientConfig := openai.DefaultConfig(cfg.GroqAPIKey)
	clientConfig.BaseURL = cfg.GroqBaseURL

	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.SummaryModel,
		timeout: time.Duration(cfg.GroqTimeout) * time.Second,
	}, nil
}

// SummarizeTranscript issues a single synchronous chat completion combining
// the user prompt with a labeled transcript section. No retries.
func (c *Client) SummarizeTranscript(ctx context.Context, transcript, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildSummaryPrompt(transcript, prompt),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from completion API")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildSummaryPrompt concatenates the custom prompt with a labeled transcript section
func BuildSummaryPrompt(transcript, prompt string) string {
	return fmt.Sprintf("%s\n\nTranscript:\n%s", prompt, transcript)
}

// Model returns the configured completion model name
func (c *Client) Model() string {
	return c.model
}
