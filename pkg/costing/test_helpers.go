package costing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// Fixture builders shared by the test suites in this package.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItem(sku string, qty int64, price, weightKg, volumeM3 string) entities.LineItem {
	return entities.LineItem{
		SKU:          sku,
		Quantity:     entities.Quantity(qty),
		UnitPrice:    dec(price),
		UnitWeightKg: dec(weightKg),
		UnitVolumeM3: dec(volumeM3),
	}
}

func settledPayment(amount string, currency entities.Currency, rate, commission string) entities.Payment {
	return entities.Payment{
		Amount:         dec(amount),
		Currency:       currency,
		Rate:           dec(rate),
		BankCommission: dec(commission),
		PaidAt:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Settled:        true,
	}
}

func pendingPayment(amount string, currency entities.Currency, rate string) entities.Payment {
	return entities.Payment{
		Amount:   dec(amount),
		Currency: currency,
		Rate:     dec(rate),
		PaidAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testExpense(label, amount string) entities.LogisticsExpense {
	return entities.LogisticsExpense{
		Type:       label,
		Amount:     dec(amount),
		IncurredAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func testReceipt(qty int64) entities.InventoryReceipt {
	return entities.InventoryReceipt{
		Quantity:   entities.Quantity(qty),
		ReceivedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}
