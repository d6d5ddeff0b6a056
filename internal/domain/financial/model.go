package financial

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	StatusPlanned = "planned"
	StatusSettled = "settled"

	SourceManual     = "manual"
	SourceCollection = "collection"
)

type Transaction struct {
	ID          uint       `gorm:"primaryKey"`
	EventID     uint       `gorm:"index;not null"`
	Type        string     `gorm:"not null"`
	Description string     `gorm:"not null"`
	Amount      float64    `gorm:"type:numeric(12,2);not null"`
	Status      string     `gorm:"not null"`
	PaidAt      *time.Time `gorm:""`
	CategoryID  *uint      `gorm:"index"`
	SourceType  string     `gorm:"not null;default:manual"`
	SourceID    *uint      `gorm:""`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "financial_transactions"
}

type TransactionWithCategory struct {
	Transaction
	CategoryName *string
}

type CreateTransactionInput struct {
	EventID     uint
	Type        string
	Description string
	Amount      float64
	Status      string
	PaidAt      *time.Time
	CategoryID  *uint
}

// CashflowPoint aggregates the settled income and expense of one UTC
// calendar date.
type CashflowPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
