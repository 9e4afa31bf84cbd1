package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
}

func NewSendGridSender(apiKey, from, fromName string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if s.from == "" {
		return fmt.Errorf("from address is empty")
	}
	if msg.To == "" {
		return fmt.Errorf("to address is empty")
	}

	fromEmail := sgmail.NewEmail(s.fromName, s.from)
	toEmail := sgmail.NewEmail("", msg.To)
	htmlContent := fmt.Sprintf("<pre>%s</pre>", msg.Body)

	message := sgmail.NewSingleEmail(fromEmail, msg.Subject, toEmail, msg.Body, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}
	return nil
}
