package mail

import (
	"fmt"
	"html"

	"eats/internal/domain/service"
)

// VerificationMessage renders the mail carrying an email verification code.
func VerificationMessage(email, code string) *service.MailMessage {
	text := fmt.Sprintf("Your verification code is %s", code)

	return &service.MailMessage{
		To:      email,
		Subject: text,
		Body:    text,
		HTML:    "<b>" + html.EscapeString(text) + "</b>",
	}
}
