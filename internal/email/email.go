package email

import (
	"fmt"
	"regexp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether addr has a basic local@domain.tld shape.
// The UI validates the same way; the server re-checks rather than trusting it.
func ValidAddress(addr string) bool {
	return addressPattern.MatchString(addr)
}

// Service handles sending summary emails via SendGrid
type Service struct {
	apiKey      string
	senderEmail string
	senderName  string
}

// NewService creates a new email service instance
func NewService(apiKey, senderEmail, senderName string) *Service {
	if senderEmail == "" {
		senderEmail = "noreply@meeting-summarizer.app"
	}
	if senderName == "" {
		senderName = "Meeting Summarizer"
	}
	return &Service{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendSummaryEmail sends one message addressed to all recipients.
// Callers validate recipients before calling; a transport failure is
// returned as-is for the caller to log and surface.
func (s *Service) SendSummaryEmail(recipients []string, subject, content string) error {
	if s.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients provided")
	}

	from := mail.NewEmail(s.senderName, s.senderEmail)
	first := mail.NewEmail("", recipients[0])

	message := mail.NewSingleEmail(from, subject, first, content, content)

	// Address the remaining recipients on the same message
	if len(message.Personalizations) > 0 {
		for _, recipient := range recipients[1:] {
			message.Personalizations[0].AddTos(mail.NewEmail("", recipient))
		}
	}

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
