package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a payment made to a supplier against a purchase order.
// Amount is recorded in the payment's own currency. Rate is the exchange rate
// into the base currency at payment time; it is ignored when the currency is
// already the base. BankCommission is recorded in the base currency.
// A payment that has not settled yet carries no realized base amount and
// contributes nothing to order totals.
type Payment struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Amount         decimal.Decimal
	Currency       Currency
	Rate           decimal.Decimal
	BankCommission decimal.Decimal
	PaidAt         time.Time
	Settled        bool
}

// NewPayment creates a validated Payment
func NewPayment(
	amount decimal.Decimal,
	currency Currency,
	rate, bankCommission decimal.Decimal,
	paidAt time.Time,
	settled bool,
) (*Payment, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("payment amount cannot be negative, got %s", amount)
	}
	if !currency.IsBase() && rate.Sign() <= 0 {
		return nil, fmt.Errorf("exchange rate must be positive for %s payments, got %s", currency, rate)
	}
	if bankCommission.IsNegative() {
		return nil, fmt.Errorf("bank commission cannot be negative, got %s", bankCommission)
	}

	return &Payment{
		ID:             uuid.New(),
		Amount:         amount,
		Currency:       currency,
		Rate:           rate,
		BankCommission: bankCommission,
		PaidAt:         paidAt,
		Settled:        settled,
	}, nil
}
