package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected bool
	}{
		{"simple address", "alice@example.com", true},
		{"subdomain", "bob@mail.example.co.uk", true},
		{"plus tag", "alice+meetings@example.com", true},
		{"dots and dashes", "first.last@my-company.io", true},
		{"missing at sign", "alice.example.com", false},
		{"missing tld", "alice@example", false},
		{"single letter tld", "alice@example.c", false},
		{"empty string", "", false},
		{"spaces", "alice @example.com", false},
		{"missing local part", "@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidAddress(tt.address))
		})
	}
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService("SG.key", "", "")

	assert.Equal(t, "noreply@meeting-summarizer.app", svc.senderEmail)
	assert.Equal(t, "Meeting Summarizer", svc.senderName)
}

func TestSendSummaryEmail_NoAPIKey(t *testing.T) {
	svc := NewService("", "noreply@example.com", "Summarizer")

	err := svc.SendSummaryEmail([]string{"alice@example.com"}, "Meeting Summary", "body")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSendSummaryEmail_NoRecipients(t *testing.T) {
	svc := NewService("SG.key", "noreply@example.com", "Summarizer")

	err := svc.SendSummaryEmail(nil, "Meeting Summary", "body")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}
