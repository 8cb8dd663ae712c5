package service

import (
	"context"
	"fmt"

	"onboarding-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendApprovalNotification(ctx context.Context, email, firstName, companyName string) error {
	subject := fmt.Sprintf("Your registration for %s has been approved", companyName)
	plainText := fmt.Sprintf("Hello %s,\n\nYour company registration for %s has been approved. You can now log in with %s and start onboarding your employees.\n\nBest regards,\nThe Onboarding Team", firstName, companyName, email)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Registration Approved</h2>
				<p>Hello %s,</p>
				<p>Your company registration for <strong>%s</strong> has been approved.</p>
				<p>You can now log in with <strong>%s</strong> and start onboarding your employees.</p>
			</body>
		</html>
	`, firstName, companyName, email)
	return s.send(ctx, email, firstName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRejectionNotification(ctx context.Context, email, firstName, companyName string) error {
	subject := fmt.Sprintf("Your registration for %s was not approved", companyName)
	plainText := fmt.Sprintf("Hello %s,\n\nUnfortunately your company registration for %s was not approved. You may contact support for more details.\n\nBest regards,\nThe Onboarding Team", firstName, companyName)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Registration Not Approved</h2>
				<p>Hello %s,</p>
				<p>Unfortunately your company registration for <strong>%s</strong> was not approved.</p>
				<p>You may contact support for more details.</p>
			</body>
		</html>
	`, firstName, companyName)
	return s.send(ctx, email, firstName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
