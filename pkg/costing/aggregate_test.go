package costing

import (
	"testing"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

func TestAggregateOrder_FullOrder(t *testing.T) {
	// 1000 USD at 60 plus 500 commission nets 60500; a base-currency payment
	// of 4500 brings total paid to 65000. Expenses add 5000. 80 of 100
	// ordered units have arrived.
	payments := []entities.Payment{
		settledPayment("1000", entities.USD, "60", "500"),
		settledPayment("4500", entities.DOP, "1", "0"),
	}
	expenses := []entities.LogisticsExpense{
		testExpense("Flete internacional", "3000"),
		testExpense("Aduana / DGA", "2000"),
	}
	receipts := []entities.InventoryReceipt{
		testReceipt(30),
		testReceipt(50),
	}

	totals := AggregateOrder(dec("1000"), 100, payments, expenses, receipts)

	if !totals.TotalPaid.Equal(dec("65000")) {
		t.Errorf("expected total paid 65000, got %s", totals.TotalPaid)
	}
	if !totals.TotalExpenses.Equal(dec("5000")) {
		t.Errorf("expected total expenses 5000, got %s", totals.TotalExpenses)
	}
	if !totals.TotalInvestment.Equal(dec("70000")) {
		t.Errorf("expected total investment 70000, got %s", totals.TotalInvestment)
	}
	if totals.ReceivedQty != 80 {
		t.Errorf("expected received qty 80, got %d", totals.ReceivedQty)
	}
	if !totals.UnitCost.Equal(dec("875")) {
		t.Errorf("expected unit cost 875, got %s", totals.UnitCost)
	}
	if !totals.FOBUnitCost.Equal(dec("10")) {
		t.Errorf("expected FOB unit cost 10, got %s", totals.FOBUnitCost)
	}
	if totals.UnitsDifference != 20 {
		t.Errorf("expected units difference 20, got %d", totals.UnitsDifference)
	}
	if !totals.ReceptionPercent.Equal(dec("80")) {
		t.Errorf("expected reception percent 80, got %s", totals.ReceptionPercent)
	}
}

func TestAggregateOrder_EmptyReceipts(t *testing.T) {
	payments := []entities.Payment{settledPayment("1000", entities.USD, "60", "0")}

	totals := AggregateOrder(dec("1000"), 100, payments, nil, nil)

	if !totals.UnitCost.IsZero() {
		t.Errorf("expected unit cost 0 with no receipts, got %s", totals.UnitCost)
	}
	if !totals.ReceptionPercent.IsZero() {
		t.Errorf("expected reception percent 0 with no receipts, got %s", totals.ReceptionPercent)
	}
	if totals.UnitsDifference != 100 {
		t.Errorf("expected units difference 100, got %d", totals.UnitsDifference)
	}
}

func TestAggregateOrder_DegenerateInputs(t *testing.T) {
	totals := AggregateOrder(dec("0"), 0, nil, nil, nil)

	if !totals.TotalInvestment.IsZero() {
		t.Errorf("expected zero investment, got %s", totals.TotalInvestment)
	}
	if !totals.FOBUnitCost.IsZero() {
		t.Errorf("expected zero FOB unit cost, got %s", totals.FOBUnitCost)
	}
	if !totals.ReceptionPercent.IsZero() {
		t.Errorf("expected zero reception percent, got %s", totals.ReceptionPercent)
	}
	if totals.UnitsDifference != 0 {
		t.Errorf("expected zero units difference, got %d", totals.UnitsDifference)
	}
}

func TestAggregateOrder_PendingPaymentsContributeNothing(t *testing.T) {
	payments := []entities.Payment{
		pendingPayment("1000", entities.USD, "60"),
		settledPayment("2000", entities.DOP, "1", "0"),
	}

	totals := AggregateOrder(dec("1000"), 10, payments, nil, nil)

	if !totals.TotalPaid.Equal(dec("2000")) {
		t.Errorf("expected total paid 2000, got %s", totals.TotalPaid)
	}
}

func TestAggregateOrder_NegativeAddendClamped(t *testing.T) {
	// A negative expense subtotal (a correction entry larger than its
	// charges) must not pull the investment below what payments produce.
	payments := []entities.Payment{settledPayment("10000", entities.DOP, "1", "0")}
	expenses := []entities.LogisticsExpense{
		testExpense("Ajuste de flete", "-2500"),
	}

	totals := AggregateOrder(dec("1000"), 10, payments, expenses, nil)

	if !totals.TotalExpenses.Equal(dec("-2500")) {
		t.Errorf("expected reported expenses -2500, got %s", totals.TotalExpenses)
	}
	if !totals.TotalInvestment.Equal(dec("10000")) {
		t.Errorf("expected investment 10000 with clamped expenses, got %s", totals.TotalInvestment)
	}
}

func TestAggregateOrder_OverReceived(t *testing.T) {
	receipts := []entities.InventoryReceipt{testReceipt(120)}

	totals := AggregateOrder(dec("1000"), 100, nil, nil, receipts)

	if totals.UnitsDifference != -20 {
		t.Errorf("expected units difference -20, got %d", totals.UnitsDifference)
	}
	if !totals.ReceptionPercent.Equal(dec("120")) {
		t.Errorf("expected reception percent 120, got %s", totals.ReceptionPercent)
	}
}

func TestAggregateOrder_RoundsToTwoPlaces(t *testing.T) {
	payments := []entities.Payment{settledPayment("100", entities.DOP, "1", "0")}
	receipts := []entities.InventoryReceipt{testReceipt(3)}

	totals := AggregateOrder(dec("100"), 3, payments, nil, receipts)

	// 100/3 rounds half-up at two places.
	if !totals.UnitCost.Equal(dec("33.33")) {
		t.Errorf("expected unit cost 33.33, got %s", totals.UnitCost)
	}
	if !totals.FOBUnitCost.Equal(dec("33.33")) {
		t.Errorf("expected FOB unit cost 33.33, got %s", totals.FOBUnitCost)
	}
	if !totals.ReceptionPercent.Equal(dec("100")) {
		t.Errorf("expected reception percent 100, got %s", totals.ReceptionPercent)
	}
}
