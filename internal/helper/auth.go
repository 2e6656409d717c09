package helper

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nivaro/account_service/internal/apperr"
)

// Token purposes, carried in the audience claim so a token minted for
// one purpose never verifies for another.
const (
	PurposeAccess      = "access"
	PurposeEmailAction = "email-action"
)

type Claims struct {
	Email     string `json:"email,omitempty"`
	AccountID string `json:"account_id,omitempty"`
	jwt.RegisteredClaims
}

// Auth signs and verifies HS256 tokens. Issuer and algorithm are pinned
// on verify; expiry is the only revocation mechanism.
type Auth struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	emailTTL  time.Duration
}

func SetupAuth(secret, issuer string, accessTTL, emailTTL time.Duration) Auth {
	return Auth{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		emailTTL:  emailTTL,
	}
}

func (a Auth) AccessTTL() time.Duration {
	return a.accessTTL
}

// GenerateAccessToken mints the long-lived session token.
func (a Auth) GenerateAccessToken(accountID, email string) (string, error) {
	if accountID == "" || email == "" {
		return "", apperr.ErrInvalidArguments
	}
	return a.sign(Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: accountID,
		},
	}, PurposeAccess, a.accessTTL)
}

// GenerateEmailToken mints the short-lived token that scopes an OTP
// challenge to an email, and optionally to an account.
func (a Auth) GenerateEmailToken(email, accountID string) (string, error) {
	if email == "" {
		return "", apperr.ErrInvalidArguments
	}
	return a.sign(Claims{
		Email:     email,
		AccountID: accountID,
	}, PurposeEmailAction, a.emailTTL)
}

func (a Auth) sign(claims Claims, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.Issuer = a.issuer
	claims.Audience = jwt.ClaimStrings{purpose}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a Auth) VerifyAccessToken(tokenString string) (*Claims, error) {
	return a.verify(tokenString, PurposeAccess)
}

func (a Auth) VerifyEmailToken(tokenString string) (*Claims, error) {
	return a.verify(tokenString, PurposeEmailAction)
}

// verify accepts "Bearer <token>" or a bare token. Any failure, bad
// signature, wrong issuer, wrong purpose or expiry, is Unauthorized.
func (a Auth) verify(tokenString, purpose string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		tokenString = strings.TrimSpace(tokenString[len("bearer "):])
	}
	if tokenString == "" {
		return nil, apperr.ErrUnauthorized
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithAudience(purpose),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, apperr.ErrUnauthorized
	}

	return claims, nil
}
