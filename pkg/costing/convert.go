package costing

import (
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// ToBaseAmount converts an amount in the given currency into the base
// currency. The base currency converts as identity regardless of rate.
// A non-positive rate on a foreign amount yields 0 rather than a negative
// or unbounded result; rejecting bad rates is the input layer's job.
func ToBaseAmount(amount decimal.Decimal, currency entities.Currency, rate decimal.Decimal) decimal.Decimal {
	if currency.IsBase() {
		return amount
	}
	if rate.Sign() <= 0 {
		return decimal.Zero
	}
	return amount.Mul(rate)
}

// ToNetBaseAmount returns the base amount plus the bank commission, both
// already expressed in the base currency.
func ToNetBaseAmount(baseAmount, baseCommission decimal.Decimal) decimal.Decimal {
	return baseAmount.Add(baseCommission)
}

// PaymentGrossBase returns the payment's amount converted to the base
// currency at its own recorded rate.
func PaymentGrossBase(p entities.Payment) decimal.Decimal {
	return ToBaseAmount(p.Amount, p.Currency, p.Rate)
}

// PaymentNetBase returns the payment's realized base amount including the
// bank commission. The second return is false for payments still pending,
// which carry no realized amount.
func PaymentNetBase(p entities.Payment) (decimal.Decimal, bool) {
	if !p.Settled {
		return decimal.Zero, false
	}
	return ToNetBaseAmount(PaymentGrossBase(p), p.BankCommission), true
}

// AverageExchangeRate returns the arithmetic mean of the exchange rates of
// the order's foreign-currency payments. Base-currency payments and
// non-positive rates are skipped. Returns 0 when no payment qualifies.
//
// This is a simple mean, not an amount-weighted one: it reports the typical
// rate paid, while order totals already carry each payment's own rate.
func AverageExchangeRate(payments []entities.Payment) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, p := range payments {
		if p.Currency.IsBase() || p.Rate.Sign() <= 0 {
			continue
		}
		sum = sum.Add(p.Rate)
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}
