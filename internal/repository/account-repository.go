package repository

import (
	"errors"
	"log"

	"github.com/nivaro/account_service/internal/apperr"
	"github.com/nivaro/account_service/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Filter selects accounts. Nil fields constrain nothing; a non-nil field
// must match exactly. Otp and VerificationToken exist so completion
// updates can be conditioned on the expected pending state.
type Filter struct {
	ID                *string
	Email             *string
	IsVerified        *bool
	Otp               *string
	VerificationToken *string
}

// Conditions renders the filter as a GORM condition map.
func (f Filter) Conditions() map[string]any {
	conds := map[string]any{}
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.Email != nil {
		conds["email"] = *f.Email
	}
	if f.IsVerified != nil {
		conds["is_verified"] = *f.IsVerified
	}
	if f.Otp != nil {
		conds["otp"] = *f.Otp
	}
	if f.VerificationToken != nil {
		conds["verification_token"] = *f.VerificationToken
	}
	return conds
}

// Patch is the single mutation shape. ClearPending nulls otp and
// verification_token in the same update, which is how a completed
// verification or reset atomically consumes the pending state.
type Patch struct {
	Name              *string
	PasswordHash      *string
	IsVerified        *bool
	Otp               *string
	VerificationToken *string
	ClearPending      bool
}

// Columns renders the patch as a GORM update map.
func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.PasswordHash != nil {
		cols["password_hash"] = *p.PasswordHash
	}
	if p.IsVerified != nil {
		cols["is_verified"] = *p.IsVerified
	}
	if p.Otp != nil {
		cols["otp"] = *p.Otp
	}
	if p.VerificationToken != nil {
		cols["verification_token"] = *p.VerificationToken
	}
	if p.ClearPending {
		cols["otp"] = nil
		cols["verification_token"] = nil
	}
	return cols
}

type AccountRepository interface {
	FindOne(filter Filter) (*domain.Account, error)
	Create(name, email, password string) (*domain.Account, error)
	Update(patch Patch, filter Filter) (int64, error)
	VerifyPassword(filter Filter, password string) (bool, error)
	Remove(id string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// FindOne returns (nil, nil) when no account matches.
func (r *accountRepository) FindOne(filter Filter) (*domain.Account, error) {
	account := &domain.Account{}

	err := r.db.Where(filter.Conditions()).First(account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("find account error: %v", err)
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) Create(name, email, password string) (*domain.Account, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsVerified:   false,
	}

	if err := r.db.Create(account).Error; err != nil {
		log.Printf("create account error: %v", err)
		return nil, err
	}

	return account, nil
}

// Update applies patch to every account matching filter and reports the
// affected row count. Conditional completion updates rely on that count.
func (r *accountRepository) Update(patch Patch, filter Filter) (int64, error) {
	res := r.db.Model(&domain.Account{}).
		Where(filter.Conditions()).
		Updates(patch.Columns())
	if res.Error != nil {
		log.Printf("update account error: %v", res.Error)
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// VerifyPassword compares the plaintext against the stored hash of the
// account matching filter. Missing account is InvalidUser.
func (r *accountRepository) VerifyPassword(filter Filter, password string) (bool, error) {
	account, err := r.FindOne(filter)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, apperr.ErrInvalidUser
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	return err == nil, nil
}

func (r *accountRepository) Remove(id string) error {
	if err := r.db.Delete(&domain.Account{}, "id = ?", id).Error; err != nil {
		log.Printf("remove account error: %v", err)
		return err
	}
	return nil
}

// HashPassword applies the fixed-cost one-way hash used for all stored
// credentials. bcrypt.DefaultCost is 10 rounds.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
