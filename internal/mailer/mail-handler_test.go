package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	verifyCalls []string
	resetCalls  []string
}

func (f *fakeSender) SendVerificationEmail(to, otp string) error {
	f.verifyCalls = append(f.verifyCalls, to+"/"+otp)
	return nil
}

func (f *fakeSender) SendPasswordResetEmail(to, otp string) error {
	f.resetCalls = append(f.resetCalls, to+"/"+otp)
	return nil
}

func TestHandleMessage_DispatchesByKind(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	h := NewMailHandler(sender)

	err := h.HandleMessage(`{"kind":"verify_email","email":"alice@x.com","otp":"123456"}`)
	require.NoError(t, err)
	require.Equal(t, []string{"alice@x.com/123456"}, sender.verifyCalls)

	err = h.HandleMessage(`{"kind":"password_reset","email":"bob@x.com","otp":"654321"}`)
	require.NoError(t, err)
	require.Equal(t, []string{"bob@x.com/654321"}, sender.resetCalls)
}

func TestHandleMessage_Invalid(t *testing.T) {
	t.Parallel()

	h := NewMailHandler(&fakeSender{})

	require.Error(t, h.HandleMessage("not json"))
	require.Error(t, h.HandleMessage(`{"kind":"unknown","email":"a@x.com","otp":"111111"}`))
}
