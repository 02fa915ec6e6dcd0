package jobqueue

import (
	"context"
	"fmt"

	"github.com/waveforge/waveforge/internal/pkg/mail"
)

// processMailDeliveryJob sends one queued email
func (q *Queue) processMailDeliveryJob(_ context.Context, job *Job) error {
	payload, err := MailDeliveryJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid mail payload: %w", err)
	}
	if payload.To == "" {
		return fmt.Errorf("mail payload has no recipient")
	}

	if payload.ReplyTo != "" {
		return mail.SendMailWithReplyTo(payload.To, payload.Subject, payload.Body, payload.ReplyTo)
	}
	return mail.SendMail(payload.To, payload.Subject, payload.Body)
}
