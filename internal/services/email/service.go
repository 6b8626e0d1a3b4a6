package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

type Emailer interface {
	Send(to, subject, additionalHeaders, body string) error
}

type Service struct {
	emailer      Emailer
	templatesDir string
}

func NewService(service Emailer, tempsDir string) *Service {
	return &Service{
		emailer:      service,
		templatesDir: tempsDir,
	}
}

func (e *Service) SendWelcome(toEmail string, districts []string) error {
	tmpl, err := template.ParseFiles(e.templatesDir + "/welcome_email.html")
	if err != nil {
		return err
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, map[string]string{
		"Email":     toEmail,
		"Districts": strings.Join(districts, ", "),
	})
	if err != nil {
		return err
	}

	return e.emailer.Send(toEmail,
		"You're subscribed to Wyoming vote alerts",
		"MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"",
		body.String())
}

// SendVoteAlert emails one recorded vote with the decisions of the
// subscriber's own legislators.
func (e *Service) SendVoteAlert(toEmail string, vote models.Vote, targets []models.NotificationTarget) error {
	var body strings.Builder
	fmt.Fprintf(&body, "A vote was recorded on %s:\n", vote.BillID)
	if vote.ActionText != "" {
		fmt.Fprintf(&body, "%s\n", vote.ActionText)
	}
	fmt.Fprintf(&body, "Result: %s (%d-%d)\n\nYour legislators:\n", vote.Result, vote.Yeas, vote.Nays)
	for _, t := range targets {
		fmt.Fprintf(&body, "  %s (%s): %s\n", t.LegislatorName, t.District, t.Decision)
	}

	subject := "Vote recorded: " + vote.BillID
	return e.emailer.Send(toEmail, subject, "", body.String())
}
