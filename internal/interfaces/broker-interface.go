package interfaces

type ConsumerHandler interface {
	HandleMessage(message string) error
}

type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}

// Notifier delivers OTPs out-of-band. Sends are fire-and-forget: the
// verification workflow never surfaces a delivery failure to its caller.
type Notifier interface {
	SendVerificationEmail(otp, email string) error
	SendPasswordResetVerificationEmail(otp, email string) error
}
