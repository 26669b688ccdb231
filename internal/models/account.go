package models

// Account is a user's single financial account. Balance is a denormalized
// running total kept in sync with the account's transactions; every
// transaction mutation adjusts it inside the same database transaction.
type Account struct {
	Base
	UserID  uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Balance int64  `gorm:"not null;default:0" json:"balance"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
