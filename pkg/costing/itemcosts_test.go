package costing

import (
	"testing"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

func TestDistributeOrderCosts_SplitsByDeclaredValue(t *testing.T) {
	// Declared value: SKU-A 300, SKU-B 100 → shares 0.75 / 0.25.
	items := []entities.LineItem{
		testItem("SKU-A", 30, "10", "0", "0"),
		testItem("SKU-B", 10, "10", "0", "0"),
	}
	payments := []entities.Payment{
		settledPayment("20000", entities.DOP, "1", "0"),
	}
	expenses := []entities.LogisticsExpense{
		testExpense("Flete internacional", "4000"),
	}

	costs := DistributeOrderCosts(items, expenses, payments)

	if len(costs) != 2 {
		t.Fatalf("expected 2 item costs, got %d", len(costs))
	}

	if !costs[0].Share.Equal(dec("0.75")) {
		t.Errorf("expected SKU-A share 0.75, got %s", costs[0].Share)
	}
	if !costs[0].FOBCost.Equal(dec("15000")) {
		t.Errorf("expected SKU-A FOB cost 15000, got %s", costs[0].FOBCost)
	}
	if !costs[0].LogisticsCost.Equal(dec("3000")) {
		t.Errorf("expected SKU-A logistics cost 3000, got %s", costs[0].LogisticsCost)
	}
	if !costs[0].TotalCost.Equal(dec("18000")) {
		t.Errorf("expected SKU-A total cost 18000, got %s", costs[0].TotalCost)
	}
	if !costs[0].UnitCost.Equal(dec("600")) {
		t.Errorf("expected SKU-A unit cost 600, got %s", costs[0].UnitCost)
	}

	if !costs[1].FOBCost.Equal(dec("5000")) {
		t.Errorf("expected SKU-B FOB cost 5000, got %s", costs[1].FOBCost)
	}
	if !costs[1].TotalCost.Equal(dec("6000")) {
		t.Errorf("expected SKU-B total cost 6000, got %s", costs[1].TotalCost)
	}
	if !costs[1].UnitCost.Equal(dec("600")) {
		t.Errorf("expected SKU-B unit cost 600, got %s", costs[1].UnitCost)
	}
}

func TestDistributeOrderCosts_PendingPaymentsExcluded(t *testing.T) {
	items := []entities.LineItem{testItem("SKU-A", 10, "10", "0", "0")}
	payments := []entities.Payment{
		pendingPayment("99999", entities.USD, "60"),
		settledPayment("1000", entities.DOP, "1", "0"),
	}

	costs := DistributeOrderCosts(items, nil, payments)

	if !costs[0].FOBCost.Equal(dec("1000")) {
		t.Errorf("expected FOB cost 1000, got %s", costs[0].FOBCost)
	}
}

func TestDistributeOrderCosts_NoItems(t *testing.T) {
	costs := DistributeOrderCosts(nil, nil, nil)
	if len(costs) != 0 {
		t.Errorf("expected empty result for no items, got %d", len(costs))
	}
}

func TestDistributeOrderCosts_ZeroDeclaredValue(t *testing.T) {
	items := []entities.LineItem{
		testItem("SKU-A", 10, "0", "0", "0"),
		testItem("SKU-B", 0, "25", "0", "0"),
	}

	costs := DistributeOrderCosts(items, nil, nil)
	if len(costs) != 0 {
		t.Errorf("expected empty result for zero declared value, got %d", len(costs))
	}
}

func TestDistributeOrderCosts_ZeroQuantityItem(t *testing.T) {
	items := []entities.LineItem{
		testItem("SKU-A", 10, "10", "0", "0"),
		{SKU: "SKU-B", Quantity: 0, UnitPrice: dec("10")},
	}

	// SKU-B has declared value 0 and quantity 0: it gets a zero share and a
	// zero unit cost rather than a division error.
	costs := DistributeOrderCosts(items, nil, []entities.Payment{
		settledPayment("1000", entities.DOP, "1", "0"),
	})

	if !costs[1].Share.IsZero() {
		t.Errorf("expected zero share for SKU-B, got %s", costs[1].Share)
	}
	if !costs[1].UnitCost.IsZero() {
		t.Errorf("expected zero unit cost for SKU-B, got %s", costs[1].UnitCost)
	}
}
