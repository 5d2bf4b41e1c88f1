package openai

import (
	"testing"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresKey(t *testing.T) {
	cfg := &config.Config{
		GroqBaseURL:  "https://api.groq.com/openai/v1",
		SummaryModel: "llama-3.1-8b-instant",
		GroqTimeout:  30,
	}

	client, err := NewClient(cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestNewClient_ConfiguredModel(t *testing.T) {
	cfg := &config.Config{
		GroqAPIKey:   "gsk-test",
		GroqBaseURL:  "https://api.groq.com/openai/v1",
		SummaryModel: "llama-3.1-8b-instant",
		GroqTimeout:  30,
	}

	client, err := NewClient(cfg)

	require.NoError(t, err)
	assert.Equal(t, "llama-3.1-8b-instant", client.Model())
}

func TestBuildSummaryPrompt(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		prompt     string
		expected   string
	}{
		{
			name:       "prompt precedes labeled transcript",
			transcript: "Alice: hello.",
			prompt:     "Summarize in bullet points",
			expected:   "Summarize in bullet points\n\nTranscript:\nAlice: hello.",
		},
		{
			name:       "multiline transcript preserved",
			transcript: "line one\nline two",
			prompt:     "executive summary",
			expected:   "executive summary\n\nTranscript:\nline one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildSummaryPrompt(tt.transcript, tt.prompt))
		})
	}
}
