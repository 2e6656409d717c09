package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a domain failure with a stable machine-readable name and the
// HTTP status the boundary maps it to. Instances below are sentinels:
// services return them as-is and callers match with errors.Is.
type Error struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Status  int    `json:"statusCode"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUnauthorized     = &Error{Name: "Unauthorized", Message: "Unauthorized", Status: fiber.StatusUnauthorized}
	ErrInvalidArguments = &Error{Name: "InvalidArguments", Message: "Invalid arguments", Status: fiber.StatusNotAcceptable}
	ErrInvalidUser      = &Error{Name: "InvalidUser", Message: "User does not exist", Status: fiber.StatusNotFound}
	ErrDuplicateEmail   = &Error{Name: "DuplicateEmail", Message: "Email already belongs to someone else", Status: fiber.StatusNotAcceptable}

	ErrEmailEnteredNotExist      = &Error{Name: "EmailEnteredNotExist", Message: "Email Entered Not Exist", Status: fiber.StatusInternalServerError}
	ErrEmailBelongsToSomeoneElse = &Error{Name: "EmailBelongsToSomeoneElse", Message: "This email belongs to someone else", Status: fiber.StatusConflict}
	ErrEmailAlreadyVerified      = &Error{Name: "EmailAlreadyVerified", Message: "This email is already verified", Status: fiber.StatusConflict}

	ErrPleaseEnterDifferentPassword = &Error{Name: "PleaseEnterADifferentPassword", Message: "Please Enter Different Password", Status: fiber.StatusInternalServerError}
	ErrWrongPassword                = &Error{Name: "WrongPassword", Message: "Password is incorrect", Status: fiber.StatusUnauthorized}
	ErrInvalidOtp                   = &Error{Name: "InvalidOtp", Message: "Invalid OTP", Status: fiber.StatusNotAcceptable}

	ErrSomethingWentWrong = &Error{Name: "SomethingWentWrong", Message: "Something Went Wrong", Status: fiber.StatusInternalServerError}
)

// From extracts the domain error or falls back to SomethingWentWrong so
// the boundary never leaks collaborator internals.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrSomethingWentWrong
}
