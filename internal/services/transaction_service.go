package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "mymoney/internal/errors"
	"mymoney/internal/models"
	"mymoney/internal/pagination"
)

// transactionService implements the balance-consistency protocol: every
// transaction mutation pairs the row write with the account balance
// adjustment inside one database transaction, so the two are never
// observable in a mutually inconsistent state.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction records a new income or expense on the user's account
// and applies its effect to the balance.
func (s *transactionService) CreateTransaction(
	userID, categoryID uint,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if err := validateTransactionInput(transactionType, amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		account, err := s.accountService.GetAccountForUpdate(tx, userID)
		if err != nil {
			return err
		}

		if err := s.findUserCategory(tx, userID, categoryID); err != nil {
			return err
		}

		transaction := &models.Transaction{
			AccountID:   account.ID,
			CategoryID:  categoryID,
			Type:        transactionType,
			Amount:      amount,
			Description: description,
			Date:        date,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result = transaction
		return s.accountService.ApplyBalanceChange(tx, account, transaction.Effect())
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateTransaction replaces a transaction's fields. The balance is moved
// in one step: revert the old effect, apply the new one.
func (s *transactionService) UpdateTransaction(
	userID, transactionID, categoryID uint,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if err := validateTransactionInput(transactionType, amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The account lock must be taken before the row is read: concurrent
		// mutations of the same transaction serialize on the lock and each
		// reverts the effect the previous one committed, never a stale one.
		account, err := s.accountService.GetAccountForUpdate(tx, userID)
		if err != nil {
			return err
		}

		old, err := s.findUserTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}

		if err := s.findUserCategory(tx, userID, categoryID); err != nil {
			return err
		}

		delta := -old.Effect() + models.Effect(transactionType, amount)
		if err := s.accountService.ApplyBalanceChange(tx, account, delta); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"category_id": categoryID,
			"type":        transactionType,
			"amount":      amount,
			"description": description,
			"date":        date,
		}
		if err := tx.Model(old).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := tx.First(old, old.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result = old
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTransaction removes a transaction and reverts its effect on the
// account balance.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Lock first, read second, same as UpdateTransaction.
		account, err := s.accountService.GetAccountForUpdate(tx, userID)
		if err != nil {
			return err
		}

		transaction, err := s.findUserTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}

		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// Guard against rows with a type this code no longer understands;
		// the error rolls back the delete.
		switch transaction.Type {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return apperrors.ErrInvalidTransactionType
		}

		return s.accountService.ApplyBalanceChange(tx, account, -transaction.Effect())
	})
}

// GetUserTransactions retrieves a paginated list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.userScoped(s.db, userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.Limit, totalItems)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	return s.findUserTransaction(s.db, userID, transactionID)
}

// userScoped filters transactions through the owning account. Transactions
// carry no user_id of their own, so "not found" and "not yours" are
// indistinguishable to the caller.
func (s *transactionService) userScoped(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Model(&models.Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", userID)
}

func (s *transactionService) findUserTransaction(tx *gorm.DB, userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.userScoped(tx, userID).
		Where("transactions.id = ?", transactionID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// findUserCategory checks that the category exists and belongs to the user
// in a single ownership-scoped lookup.
func (s *transactionService) findUserCategory(tx *gorm.DB, userID, categoryID uint) error {
	var category models.Category
	err := tx.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func validateTransactionInput(transactionType models.TransactionType, amount int64) error {
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.ErrInvalidTransactionType
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return nil
}
