package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

func TestSummarizeOrder(t *testing.T) {
	items := []entities.LineItem{
		testItem("SKU-A", 60, "10", "0", "0"),
		testItem("SKU-B", 40, "25", "0", "0"),
	}
	payments := []entities.Payment{
		settledPayment("1000", entities.USD, "60", "500"),
		settledPayment("4500", entities.DOP, "1", "0"),
	}
	expenses := []entities.LogisticsExpense{
		testExpense("Flete internacional", "3000"),
		testExpense("Aduana / DGA", "2000"),
	}

	summary := SummarizeOrder(items, payments, expenses)

	assert.Equal(t, entities.Quantity(100), summary.TotalUnits)
	assert.True(t, summary.TotalFOB.Equal(dec("1600")), "FOB %s", summary.TotalFOB)
	assert.True(t, summary.TotalPaid.Equal(dec("65000")), "paid %s", summary.TotalPaid)
	assert.True(t, summary.TotalExpenses.Equal(dec("5000")), "expenses %s", summary.TotalExpenses)
	assert.True(t, summary.TotalCost.Equal(dec("70000")), "cost %s", summary.TotalCost)
	assert.True(t, summary.AverageRate.Equal(dec("60")), "rate %s", summary.AverageRate)
	assert.True(t, summary.AverageUnitCost.Equal(dec("700")), "unit cost %s", summary.AverageUnitCost)
}

func TestSummarizeOrder_Empty(t *testing.T) {
	summary := SummarizeOrder(nil, nil, nil)

	assert.Equal(t, entities.Quantity(0), summary.TotalUnits)
	assert.True(t, summary.TotalFOB.IsZero())
	assert.True(t, summary.TotalPaid.IsZero())
	assert.True(t, summary.TotalCost.IsZero())
	assert.True(t, summary.AverageRate.IsZero())
	assert.True(t, summary.AverageUnitCost.IsZero())
}

func TestSummarizeOrder_ZeroUnitsNoDivision(t *testing.T) {
	payments := []entities.Payment{settledPayment("5000", entities.DOP, "1", "0")}

	summary := SummarizeOrder(nil, payments, nil)

	assert.True(t, summary.TotalCost.Equal(dec("5000")))
	assert.True(t, summary.AverageUnitCost.IsZero())
}
