package utils

import (
	"net/mail"
	"strings"
)

// Request-shape checks the handlers run before the service layer, which
// assumes they hold.

func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func WithinLen(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

func IsOtp(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsJWT checks the three-part compact form, not the signature.
func IsJWT(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
