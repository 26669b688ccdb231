package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "mymoney/internal/errors"
	"mymoney/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates the user's account. The unique index on user_id
// enforces the one-account rule, so a concurrent second create fails on
// the insert rather than slipping past a pre-check.
func (s *accountService) CreateAccount(userID uint, name string, balance int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	account := &models.Account{
		UserID:  userID,
		Name:    name,
		Balance: balance,
	}
	if err := s.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAccountExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetAccount retrieves the user's account.
func (s *accountService) GetAccount(userID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// RenameAccount updates the account name.
func (s *accountService) RenameAccount(userID uint, name string) error {
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	result := s.db.Model(&models.Account{}).Where("user_id = ?", userID).Update("name", name)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// GetAccountForUpdate retrieves the user's account with a row lock so the
// subsequent balance write cannot race a concurrent mutation. The lock
// clause is only valid on postgres; the sqlite test dialect has no row
// locks and serializes writers anyway.
func (s *accountService) GetAccountForUpdate(tx *gorm.DB, userID uint) (*models.Account, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var account models.Account
	if err := q.Where("user_id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// ApplyBalanceChange adds a signed delta to the account balance. Must run
// on the same transaction that locked the account.
func (s *accountService) ApplyBalanceChange(tx *gorm.DB, account *models.Account, delta int64) error {
	account.Balance += delta
	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
