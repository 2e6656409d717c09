package dto

// Mail event kinds published to the mail topic.
const (
	MailKindVerifyEmail   = "verify_email"
	MailKindPasswordReset = "password_reset"
)

// MailEvent is the payload the account service publishes and the mailer
// consumes. The OTP travels only on this out-of-band channel, never in
// an API response.
type MailEvent struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	Otp   string `json:"otp"`
}
