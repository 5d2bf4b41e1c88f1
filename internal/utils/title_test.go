package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"hyphenated", "weekly-sync.txt", "Weekly Sync"},
		{"underscores", "q3_planning_notes.txt", "Q3 Planning Notes"},
		{"mixed separators", "daily-standup_notes.txt", "Daily Standup Notes"},
		{"already spaced", "board meeting.txt", "Board Meeting"},
		{"pasted default", "pasted-text-1700000000000.txt", "Pasted Text 1700000000000"},
		{"no extension", "retrospective", "Retrospective"},
		{"extension only", ".txt", ""},
		{"empty", "", ""},
		{"collapses repeated separators", "a--b__c.txt", "A B C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleFromFilename(tt.filename))
		})
	}
}
