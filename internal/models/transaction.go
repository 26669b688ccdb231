package models

import "time"

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry. Amount is the
// magnitude in cents; the sign comes from the type (see Effect).
//
// There is deliberately no user_id column: ownership is resolved through
// the owning account, so a lookup scoped to another user is
// indistinguishable from a miss.
type Transaction struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	Account  Account  `gorm:"foreignKey:AccountID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// Effect returns the signed contribution of a transaction to an account
// balance: +amount for income, -amount for expense.
func Effect(transactionType TransactionType, amount int64) int64 {
	if transactionType == TransactionTypeIncome {
		return amount
	}
	return -amount
}

// Effect returns the transaction's signed contribution to the account balance.
func (t *Transaction) Effect() int64 {
	return Effect(t.Type, t.Amount)
}
