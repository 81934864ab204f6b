package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers through the v3 mail API. The template name is
// attached as a category so deliveries can be filtered per mail kind.
func (s *Service) sendWithSendgrid(ctx context.Context, data EmailData, htmlContent, textContent string) error {
	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", data.To))

	msg := mail.NewV3Mail().
		SetFrom(mail.NewEmail(data.FromName, data.From)).
		AddPersonalizations(p).
		AddContent(mail.NewContent("text/plain", textContent), mail.NewContent("text/html", htmlContent)).
		AddCategories(data.TemplateName)
	msg.Subject = data.Subject

	resp, err := s.sendgridClient.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid %s to %s: %w", data.TemplateName, data.To, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sendgrid %s to %s: status %d: %s", data.TemplateName, data.To, resp.StatusCode, resp.Body)
	}

	return nil
}
