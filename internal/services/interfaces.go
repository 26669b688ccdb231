package services

import (
	"time"

	"gorm.io/gorm"

	"mymoney/internal/models"
	"mymoney/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(email, password, name string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// AccountServicer defines the contract for account-related business logic.
// GetAccountForUpdate and ApplyBalanceChange are the two halves of the
// balance read-modify-write and must run on the same database transaction.
type AccountServicer interface {
	CreateAccount(userID uint, name string, balance int64) (*models.Account, error)
	GetAccount(userID uint) (*models.Account, error)
	RenameAccount(userID uint, name string) error
	GetAccountForUpdate(tx *gorm.DB, userID uint) (*models.Account, error)
	ApplyBalanceChange(tx *gorm.DB, account *models.Account, delta int64) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	GetUserCategories(userID uint) ([]models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID uint, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID, categoryID uint, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress, requestID string, changes map[string]interface{})
}
