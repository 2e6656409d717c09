package dto

type UpdateAccountRequest struct {
	Name string `json:"name" validate:"required,min=3,max=30"`
}

type StartEmailVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type FinishEmailVerificationRequest struct {
	VerificationToken string `json:"verificationToken" validate:"required,jwt"`
	Otp               string `json:"otp" validate:"required,len=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdatePasswordRequest struct {
	VerificationToken string `json:"verificationToken" validate:"required,jwt"`
	Otp               string `json:"otp" validate:"required,len=6"`
	Password          string `json:"password" validate:"required,min=8,max=30"`
}

type VerificationTokenResponse struct {
	VerificationToken string `json:"verificationToken"`
}

type VerifiedResponse struct {
	IsVerified bool `json:"isVerified"`
}

type PasswordChangedResponse struct {
	IsChanged bool `json:"isChanged"`
}
