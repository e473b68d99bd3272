// File: /services/email_service.go
package services

import (
	"fmt"

	"eventdesk-api/config"
	"eventdesk-api/models"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendStatusChangeEmail notifies a participant that an event they joined
// changed status. Callers treat failures as best-effort.
func (es *EmailService) SendStatusChangeEmail(email, name string, event *models.Event) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Event update: %s on %s is now %s", event.Place, event.Date, event.Status))

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Event Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #007bff; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .status { font-size: 20px; font-weight: bold; color: #007bff; text-transform: uppercase; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>%s</h1>
            <p>Event Update</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>The event at <strong>%s</strong> on <strong>%s %s</strong> (%s) is now:</p>
            <p class="status">%s</p>
            <p>Check the dashboard for the full details.</p>
        </div>
    </div>
</body>
</html>`,
		es.config.FromName, name, event.Place, event.Day, event.Date, event.Time, event.Status)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send status change email to %s: %w", email, err)
	}
	return nil
}
