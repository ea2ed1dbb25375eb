package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LogisticsExpense represents a shared import cost (freight, customs, storage,
// insurance) already expressed in the base currency. Type is the free-form
// expense label entered on the document ("Flete internacional", "Aduana / DGA");
// the basis resolver maps it to an allocation basis.
type LogisticsExpense struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Type       string
	Amount     decimal.Decimal
	IncurredAt time.Time
}

// NewLogisticsExpense creates a validated LogisticsExpense
func NewLogisticsExpense(
	expenseType string,
	amount decimal.Decimal,
	incurredAt time.Time,
) (*LogisticsExpense, error) {
	if expenseType == "" {
		return nil, fmt.Errorf("expense type cannot be empty")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("expense amount cannot be negative, got %s", amount)
	}

	return &LogisticsExpense{
		ID:         uuid.New(),
		Type:       expenseType,
		Amount:     amount,
		IncurredAt: incurredAt,
	}, nil
}
