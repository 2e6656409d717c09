package services

import (
	"log"

	"github.com/nivaro/account_service/internal/apperr"
	"github.com/nivaro/account_service/internal/domain"
	"github.com/nivaro/account_service/internal/dto"
	"github.com/nivaro/account_service/internal/helper"
	"github.com/nivaro/account_service/internal/helper/utils"
	"github.com/nivaro/account_service/internal/interfaces"
	"github.com/nivaro/account_service/internal/repository"
)

type AccountService interface {
	// Auth
	Register(input dto.RegisterRequest) (*dto.AuthSuccess, error)
	Login(input dto.LoginRequest) (*dto.AuthSuccess, error)

	// Account
	GetAccount(accountID string) (*domain.Account, error)
	UpdateName(accountID, name string) error
	Remove(accountID string) error

	// Email verification
	StartEmailVerification(accountID, email string) (string, error)
	FinishEmailVerification(accountID, token, otp string) error

	// Password reset
	ForgotPassword(email string) (string, error)
	UpdatePassword(token, otp, password string) error
}

type accountService struct {
	repo     repository.AccountRepository
	auth     helper.Auth
	notifier interfaces.Notifier
}

func NewAccountService(repo repository.AccountRepository, auth helper.Auth, notifier interfaces.Notifier) AccountService {
	return &accountService{
		repo:     repo,
		auth:     auth,
		notifier: notifier,
	}
}

// Register admits duplicate emails as long as none of them is verified:
// only the account that completes verification claims the address.
func (s *accountService) Register(input dto.RegisterRequest) (*dto.AuthSuccess, error) {
	verified := true
	existing, err := s.repo.FindOne(repository.Filter{Email: &input.Email, IsVerified: &verified})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	account, err := s.repo.Create(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	return s.authSuccess(account)
}

func (s *accountService) Login(input dto.LoginRequest) (*dto.AuthSuccess, error) {
	if input.Email == "" {
		return nil, apperr.ErrInvalidArguments
	}

	verified := true
	account, err := s.repo.FindOne(repository.Filter{Email: &input.Email, IsVerified: &verified})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperr.ErrUnauthorized
	}

	match, err := s.repo.VerifyPassword(repository.Filter{ID: &account.ID}, input.Password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, apperr.ErrWrongPassword
	}

	return s.authSuccess(account)
}

func (s *accountService) authSuccess(account *domain.Account) (*dto.AuthSuccess, error) {
	token, err := s.auth.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthSuccess{
		User:        account,
		AccessToken: token,
		ExpiresIn:   int64(s.auth.AccessTTL().Seconds()),
	}, nil
}

func (s *accountService) GetAccount(accountID string) (*domain.Account, error) {
	account, err := s.repo.FindOne(repository.Filter{ID: &accountID})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperr.ErrInvalidUser
	}
	return account, nil
}

func (s *accountService) UpdateName(accountID, name string) error {
	affected, err := s.repo.Update(
		repository.Patch{Name: &name},
		repository.Filter{ID: &accountID},
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrInvalidUser
	}
	return nil
}

func (s *accountService) Remove(accountID string) error {
	return s.repo.Remove(accountID)
}

// StartEmailVerification issues a fresh OTP + email token pair for the
// caller's own unverified account. Starting again overwrites any prior
// pending pair, last write wins.
func (s *accountService) StartEmailVerification(accountID, email string) (string, error) {
	if err := s.guardVerifiedOwner(email, accountID); err != nil {
		return "", err
	}

	otp, err := utils.GenerateOtp()
	if err != nil {
		return "", err
	}
	token, err := s.auth.GenerateEmailToken(email, accountID)
	if err != nil {
		return "", err
	}

	unverified := false
	if _, err := s.repo.Update(
		repository.Patch{Otp: &otp, VerificationToken: &token},
		repository.Filter{ID: &accountID, Email: &email, IsVerified: &unverified},
	); err != nil {
		return "", err
	}

	if err := s.notifier.SendVerificationEmail(otp, email); err != nil {
		log.Printf("send verification mail failed: %v", err)
	}

	return token, nil
}

// FinishEmailVerification flips the account to verified with a single
// conditional update. Expired token, wrong OTP and replayed requests all
// collapse into InvalidOtp on purpose, so a guesser learns nothing.
func (s *accountService) FinishEmailVerification(accountID, token, otp string) error {
	claims, err := s.auth.VerifyEmailToken(token)
	if err != nil {
		return err
	}
	if claims.Email == "" || claims.AccountID != accountID {
		return apperr.ErrUnauthorized
	}

	if err := s.guardVerifiedOwner(claims.Email, accountID); err != nil {
		return err
	}

	verified := true
	unverified := false
	affected, err := s.repo.Update(
		repository.Patch{IsVerified: &verified, ClearPending: true},
		repository.Filter{
			ID:                &accountID,
			Email:             &claims.Email,
			Otp:               &otp,
			VerificationToken: &token,
			IsVerified:        &unverified,
		},
	)
	if err != nil {
		return err
	}
	if affected != 1 {
		return apperr.ErrInvalidOtp
	}
	return nil
}

// ForgotPassword binds a reset pair to the verified account owning the
// email. Store update and mail dispatch are both issued; neither rolls
// the other back if it fails.
func (s *accountService) ForgotPassword(email string) (string, error) {
	verified := true
	account, err := s.repo.FindOne(repository.Filter{Email: &email, IsVerified: &verified})
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", apperr.ErrEmailEnteredNotExist
	}

	otp, err := utils.GenerateOtp()
	if err != nil {
		return "", err
	}
	token, err := s.auth.GenerateEmailToken(account.Email, "")
	if err != nil {
		return "", err
	}

	go func() {
		if err := s.notifier.SendPasswordResetVerificationEmail(otp, account.Email); err != nil {
			log.Printf("send reset mail failed: %v", err)
		}
	}()

	if _, err := s.repo.Update(
		repository.Patch{Otp: &otp, VerificationToken: &token},
		repository.Filter{ID: &account.ID},
	); err != nil {
		return "", err
	}

	return token, nil
}

func (s *accountService) UpdatePassword(token, otp, password string) error {
	claims, err := s.auth.VerifyEmailToken(token)
	if err != nil {
		return err
	}
	if claims.Email == "" {
		return apperr.ErrUnauthorized
	}

	verified := true
	account, err := s.repo.FindOne(repository.Filter{Email: &claims.Email, IsVerified: &verified})
	if err != nil {
		return err
	}
	if account == nil {
		return apperr.ErrUnauthorized
	}

	match, err := s.repo.VerifyPassword(repository.Filter{Email: &claims.Email}, password)
	if err != nil {
		return err
	}
	if match {
		return apperr.ErrPleaseEnterDifferentPassword
	}

	hash, err := repository.HashPassword(password)
	if err != nil {
		return err
	}

	affected, err := s.repo.Update(
		repository.Patch{PasswordHash: &hash, ClearPending: true},
		repository.Filter{
			Email:             &claims.Email,
			Otp:               &otp,
			VerificationToken: &token,
		},
	)
	if err != nil {
		return err
	}
	if affected != 1 {
		return apperr.ErrInvalidOtp
	}
	return nil
}

// guardVerifiedOwner rejects a verification attempt when the email is
// already claimed: by the caller (EmailAlreadyVerified) or by anyone
// else (EmailBelongsToSomeoneElse).
func (s *accountService) guardVerifiedOwner(email, accountID string) error {
	verified := true
	owner, err := s.repo.FindOne(repository.Filter{Email: &email, IsVerified: &verified})
	if err != nil {
		return err
	}
	if owner != nil {
		if owner.ID == accountID {
			return apperr.ErrEmailAlreadyVerified
		}
		return apperr.ErrEmailBelongsToSomeoneElse
	}
	return nil
}
