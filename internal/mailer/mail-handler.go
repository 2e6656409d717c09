package mailer

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nivaro/account_service/internal/dto"
)

// Sender delivers the two mail kinds the account service emits.
type Sender interface {
	SendVerificationEmail(to, otp string) error
	SendPasswordResetEmail(to, otp string) error
}

// MailHandler consumes mail events from the queue and dispatches by kind.
type MailHandler struct {
	MailService Sender
}

func NewMailHandler(ms Sender) *MailHandler {
	return &MailHandler{MailService: ms}
}

func (h *MailHandler) HandleMessage(message string) error {
	var event dto.MailEvent

	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Printf("invalid event payload: %s\n", message)
		return err
	}

	switch event.Kind {
	case dto.MailKindVerifyEmail:
		return h.MailService.SendVerificationEmail(event.Email, event.Otp)
	case dto.MailKindPasswordReset:
		return h.MailService.SendPasswordResetEmail(event.Email, event.Otp)
	default:
		return fmt.Errorf("unknown mail event kind %q", event.Kind)
	}
}
