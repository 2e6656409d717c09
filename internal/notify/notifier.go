package notify

import (
	"encoding/json"

	"github.com/nivaro/account_service/internal/dto"
	"github.com/nivaro/account_service/internal/interfaces"
)

// EmailNotifier publishes mail events for the mailer worker to deliver.
// The OTP reaches the user only through this channel.
type EmailNotifier struct {
	producer interfaces.ProducerHandler
}

func NewEmailNotifier(producer interfaces.ProducerHandler) *EmailNotifier {
	return &EmailNotifier{producer: producer}
}

func (n *EmailNotifier) SendVerificationEmail(otp, email string) error {
	return n.publish(dto.MailKindVerifyEmail, otp, email)
}

func (n *EmailNotifier) SendPasswordResetVerificationEmail(otp, email string) error {
	return n.publish(dto.MailKindPasswordReset, otp, email)
}

func (n *EmailNotifier) publish(kind, otp, email string) error {
	payload, err := json.Marshal(dto.MailEvent{
		Kind:  kind,
		Email: email,
		Otp:   otp,
	})
	if err != nil {
		return err
	}
	return n.producer.PublishMessage([]byte(kind), payload)
}
