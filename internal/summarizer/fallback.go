// Package summarizer implements the local fallback summary generator used
// when no AI credential is configured or the upstream completion call fails.
// It is a template-filling heuristic over sentence and word counts, not true
// summarization, and is fully deterministic.
package summarizer

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// Minimum trimmed sentence length for a sentence to qualify as a key point.
	keyPointMinChars = 50
	// Maximum number of key points emitted.
	keyPointLimit = 5
	// Reading speed used for the estimated reading time.
	wordsPerMinute = 200
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// GenerateFallbackSummary produces a deterministic summary of transcript
// shaped by prompt. It never fails and always returns a non-empty string.
//
// The prompt selects the format by substring match on the lower-cased text,
// bullet check first: "bullet"/"points" produce a Key Points section,
// otherwise "executive" produces an Executive Summary section, otherwise
// neither. A statistics block and a closing note are always appended.
func GenerateFallbackSummary(transcript, prompt string) string {
	sentences := splitSentences(transcript)
	wordCount := len(strings.Fields(transcript))

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("**Summary based on your request: \"%s\"**\n\n", prompt))

	lowerPrompt := strings.ToLower(prompt)
	switch {
	case strings.Contains(lowerPrompt, "bullet") || strings.Contains(lowerPrompt, "points"):
		summary.WriteString(fmt.Sprintf("**Key Points:**\n%s\n\n", formatKeyPoints(sentences)))
	case strings.Contains(lowerPrompt, "executive"):
		summary.WriteString("**Executive Summary:**\n")
		summary.WriteString(fmt.Sprintf("This meeting transcript contains %d words across %d main points. ", wordCount, len(sentences)))
		summary.WriteString("Key discussion areas include the main topics covered in the conversation.\n\n")
	}

	summary.WriteString("**Meeting Statistics:**\n")
	summary.WriteString(fmt.Sprintf("• Total words: %d\n", wordCount))
	summary.WriteString(fmt.Sprintf("• Main discussion points: %d\n", len(sentences)))
	summary.WriteString(fmt.Sprintf("• Estimated reading time: %d minutes\n\n", readingTimeMinutes(wordCount)))

	summary.WriteString("**Note:** This is a basic summary. For AI-powered summaries, please configure your Groq API key in the server environment variables.")

	return summary.String()
}

// splitSentences splits on runs of '.', '!' or '?' and drops whitespace-only
// fragments. Fragments keep their surrounding whitespace.
func splitSentences(transcript string) []string {
	fragments := sentenceBoundary.Split(transcript, -1)
	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

// formatKeyPoints selects the first keyPointLimit sentences whose trimmed
// length exceeds keyPointMinChars, in original order, one bullet line each.
// When no sentence qualifies the result is empty: the caller still emits the
// section header.
func formatKeyPoints(sentences []string) string {
	var bullets []string
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) <= keyPointMinChars {
			continue
		}
		bullets = append(bullets, "• "+trimmed)
		if len(bullets) == keyPointLimit {
			break
		}
	}
	return strings.Join(bullets, "\n")
}

// readingTimeMinutes is ceil(wordCount / wordsPerMinute) in whole minutes.
func readingTimeMinutes(wordCount int) int {
	return (wordCount + wordsPerMinute - 1) / wordsPerMinute
}
