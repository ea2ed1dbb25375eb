package costing

import (
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// AggregateOrder computes the financial totals of one purchase order:
// what has been paid, what the import has cost so far, the realized cost per
// received unit, and how far along reception is.
//
// Degenerate input never fails: empty collections and zero quantities yield
// zero-valued totals. Pending payments contribute nothing. A negative paid or
// expense subtotal is clamped to 0 before entering the total investment so a
// stray negative component cannot drag the total below what the remaining
// components produce on their own.
func AggregateOrder(
	fobTotal decimal.Decimal,
	orderedQty entities.Quantity,
	payments []entities.Payment,
	expenses []entities.LogisticsExpense,
	receipts []entities.InventoryReceipt,
) OrderTotals {
	totalPaid := decimal.Zero
	for _, p := range payments {
		if net, ok := PaymentNetBase(p); ok {
			totalPaid = totalPaid.Add(net)
		}
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	totalInvestment := clampNonNegative(totalPaid).Add(clampNonNegative(totalExpenses))

	var receivedQty entities.Quantity
	for _, r := range receipts {
		receivedQty += r.Quantity
	}

	unitCost := decimal.Zero
	if receivedQty > 0 {
		unitCost = totalInvestment.Div(decimal.NewFromInt(int64(receivedQty))).Round(2)
	}

	fobUnitCost := decimal.Zero
	receptionPercent := decimal.Zero
	if orderedQty > 0 {
		ordered := decimal.NewFromInt(int64(orderedQty))
		fobUnitCost = fobTotal.Div(ordered).Round(2)
		receptionPercent = decimal.NewFromInt(int64(receivedQty)).Div(ordered).Mul(hundred).Round(2)
	}

	return OrderTotals{
		TotalPaid:        totalPaid.Round(2),
		TotalExpenses:    totalExpenses.Round(2),
		TotalInvestment:  totalInvestment.Round(2),
		ReceivedQty:      receivedQty,
		UnitCost:         unitCost,
		FOBUnitCost:      fobUnitCost,
		UnitsDifference:  orderedQty - receivedQty,
		ReceptionPercent: receptionPercent,
	}
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
