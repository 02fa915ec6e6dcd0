package mail

import (
	"fmt"
	"html"

	"github.com/waveforge/waveforge/internal/pkg/env"
)

func publicURL() string {
	return env.GetEnv("PUBLIC_URL", "http://localhost:8080")
}

// SendActivationMail sends the account activation link to a new user
func SendActivationMail(to, username, token string) error {
	link := fmt.Sprintf("%s/auth/activate?token=%s", publicURL(), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Welcome to WaveForge. Click the link below to activate your account:</p>"+
			"<p><a href=\"%s\">Activate account</a></p>"+
			"<p>If you did not create this account, you can ignore this email.</p>",
		html.EscapeString(username), link,
	)
	return SendMail(to, "Activate your WaveForge account", body)
}

// SendContactMail forwards a contact form submission to the support inbox,
// with Reply-To set to the sender so support can answer directly
func SendContactMail(senderName, senderEmail, subject, message string) error {
	support := env.GetEnv("SUPPORT_EMAIL", "")
	if support == "" {
		return fmt.Errorf("SUPPORT_EMAIL is not configured")
	}
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><hr><p>%s</p>",
		html.EscapeString(senderName),
		html.EscapeString(senderEmail),
		html.EscapeString(message),
	)
	return SendMailWithReplyTo(support, "[Contact] "+subject, body, senderEmail)
}

// SendCodeRedeemedMail confirms a redeemed reseller code and lists the
// unlocked products
func SendCodeRedeemedMail(to, username, productName string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your code was redeemed successfully. <strong>%s</strong> is now available in your account.</p>"+
			"<p><a href=\"%s/my-products\">Go to your products</a></p>",
		html.EscapeString(username), html.EscapeString(productName), publicURL(),
	)
	return SendMail(to, "Your WaveForge product is ready", body)
}
