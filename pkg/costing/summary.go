package costing

import (
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// SummarizeOrder rolls an order's items, payments and expenses up into the
// top-level figures shown on dashboards: units ordered, declared FOB value,
// money out the door, and the average realized exchange rate and unit cost.
func SummarizeOrder(
	items []entities.LineItem,
	payments []entities.Payment,
	expenses []entities.LogisticsExpense,
) OrderSummary {
	var totalUnits entities.Quantity
	totalFOB := decimal.Zero
	for _, item := range items {
		totalUnits += item.Quantity
		totalFOB = totalFOB.Add(item.Subtotal())
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

	totalCost := totalPaid.Add(totalExpenses)

	averageUnitCost := decimal.Zero
	if totalUnits > 0 {
		averageUnitCost = totalCost.Div(decimal.NewFromInt(int64(totalUnits))).Round(2)
	}

	return OrderSummary{
		TotalUnits:      totalUnits,
		TotalFOB:        totalFOB.Round(2),
		TotalPaid:       totalPaid.Round(2),
		TotalExpenses:   totalExpenses.Round(2),
		TotalCost:       totalCost.Round(2),
		AverageRate:     AverageExchangeRate(payments),
		AverageUnitCost: averageUnitCost,
	}
}
