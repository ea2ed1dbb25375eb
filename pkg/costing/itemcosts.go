package costing

import (
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// DistributeOrderCosts assigns every line item of an order its slice of what
// the order has actually cost: a share of the merchandise payments and a share
// of the logistics expenses, both proportional to the item's fraction of the
// order's declared value.
//
// This on-screen breakdown always splits by declared value; the multi-basis
// engine in Distribute handles true expense allocation. Returns an empty
// result when there are no items or the declared total is zero.
func DistributeOrderCosts(
	items []entities.LineItem,
	expenses []entities.LogisticsExpense,
	payments []entities.Payment,
) []ItemCost {
	if len(items) == 0 {
		return nil
	}

	totalDeclared := decimal.Zero
	for _, item := range items {
		totalDeclared = totalDeclared.Add(item.Subtotal())
	}
	if totalDeclared.IsZero() {
		return nil
	}

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

	costs := make([]ItemCost, len(items))
	for i, item := range items {
		share := item.Subtotal().Div(totalDeclared)
		fobCost := totalPaid.Mul(share).Round(2)
		logisticsCost := totalExpenses.Mul(share).Round(2)
		totalCost := fobCost.Add(logisticsCost)

		unitCost := decimal.Zero
		if item.Quantity > 0 {
			unitCost = totalCost.Div(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		}

		costs[i] = ItemCost{
			SKU:           item.SKU,
			Quantity:      item.Quantity,
			Share:         share,
			FOBCost:       fobCost,
			LogisticsCost: logisticsCost,
			TotalCost:     totalCost,
			UnitCost:      unitCost,
		}
	}
	return costs
}
