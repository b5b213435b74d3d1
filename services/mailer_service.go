package services

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"

	"github.com/jrautos/jrautos-api/models"
)

// Mailer delivers the contact notification email. Implementations are a
// notification convenience, not a delivery-guaranteed channel.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg models.ContactMessage) error
}

// ResendMailer sends contact notifications through the Resend API.
type ResendMailer struct {
	client    *resend.Client
	sender    string
	recipient string
}

// NewResendMailer creates a mailer backed by the given Resend API key.
func NewResendMailer(apiKey, sender, recipient string) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		sender:    sender,
		recipient: recipient,
	}
}

// SendContactNotification formats and sends the new-contact email.
func (m *ResendMailer) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	phone := "No proporcionado"
	if msg.Phone != nil && *msg.Phone != "" {
		phone = *msg.Phone
	}

	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #333;">Nuevo Mensaje de Contacto - J.R Autos</h2>
	<hr style="border: 1px solid #ddd;">
	<p><strong>Nombre:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Tel&eacute;fono:</strong> %s</p>
	<hr style="border: 1px solid #ddd;">
	<p><strong>Mensaje:</strong></p>
	<p style="background: #f5f5f5; padding: 15px; border-radius: 5px;">%s</p>
	<hr style="border: 1px solid #ddd;">
	<p style="color: #666; font-size: 12px;">Este mensaje fue enviado desde el formulario de contacto de J.R Autos</p>
</body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(phone),
		html.EscapeString(msg.Message),
	)

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{m.recipient},
		Subject: "Nuevo Contacto: " + msg.Name,
		Html:    body,
	})
	return err
}
