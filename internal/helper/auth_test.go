package helper

import (
	"testing"
	"time"

	"github.com/nivaro/account_service/internal/apperr"
	"github.com/stretchr/testify/require"
)

func newTestAuth() Auth {
	return SetupAuth("test-secret", "account-service", time.Hour, 15*time.Minute)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()
	auth := newTestAuth()

	tok, err := auth.GenerateAccessToken("acc-1", "a@x.com")
	require.NoError(t, err)

	claims, err := auth.VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, "acc-1", claims.Subject)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestAccessToken_BearerPrefix(t *testing.T) {
	t.Parallel()
	auth := newTestAuth()

	tok, err := auth.GenerateAccessToken("acc-1", "a@x.com")
	require.NoError(t, err)

	claims, err := auth.VerifyAccessToken("Bearer " + tok)
	require.NoError(t, err)
	require.Equal(t, "acc-1", claims.Subject)
}

func TestEmailToken_RoundTrip(t *testing.T) {
	t.Parallel()
	auth := newTestAuth()

	tok, err := auth.GenerateEmailToken("a@x.com", "acc-1")
	require.NoError(t, err)

	claims, err := auth.VerifyEmailToken(tok)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "acc-1", claims.AccountID)
}

func TestVerify_WrongPurpose(t *testing.T) {
	t.Parallel()
	auth := newTestAuth()

	access, err := auth.GenerateAccessToken("acc-1", "a@x.com")
	require.NoError(t, err)
	email, err := auth.GenerateEmailToken("a@x.com", "acc-1")
	require.NoError(t, err)

	_, err = auth.VerifyEmailToken(access)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = auth.VerifyAccessToken(email)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	auth := SetupAuth("test-secret", "account-service", time.Hour, -time.Minute)

	tok, err := auth.GenerateEmailToken("a@x.com", "acc-1")
	require.NoError(t, err)

	_, err = auth.VerifyEmailToken(tok)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestAuth().GenerateAccessToken("acc-1", "a@x.com")
	require.NoError(t, err)

	other := SetupAuth("other-secret", "account-service", time.Hour, 15*time.Minute)
	_, err = other.VerifyAccessToken(tok)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	foreign := SetupAuth("test-secret", "someone-else", time.Hour, 15*time.Minute)
	tok, err := foreign.GenerateAccessToken("acc-1", "a@x.com")
	require.NoError(t, err)

	_, err = newTestAuth().VerifyAccessToken(tok)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()
	auth := newTestAuth()

	for _, tok := range []string{"", "garbage", "a.b.c", "Bearer "} {
		_, err := auth.VerifyAccessToken(tok)
		require.ErrorIs(t, err, apperr.ErrUnauthorized, "token %q", tok)
	}
}

func TestGenerate_MissingInputs(t *testing.T) {
	t.Parallel()
	auth := newTestAuth()

	_, err := auth.GenerateAccessToken("", "a@x.com")
	require.Error(t, err)
	_, err = auth.GenerateAccessToken("acc-1", "")
	require.Error(t, err)
	_, err = auth.GenerateEmailToken("", "acc-1")
	require.Error(t, err)
}
