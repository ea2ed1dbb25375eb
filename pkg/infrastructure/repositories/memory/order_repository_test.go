package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/costing"
	"github.com/imptrack/landedcost/pkg/domain/entities"
)

func newTestOrder(t *testing.T, number string) *entities.PurchaseOrder {
	t.Helper()

	order, err := entities.NewPurchaseOrder(
		number, "Acme Trading Co",
		100, decimal.RequireFromString("1000"), entities.USD, 10,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("NewPurchaseOrder failed: %v", err)
	}
	return order
}

func TestOrderRepository_SaveAndGet(t *testing.T) {
	repo := NewOrderRepository()
	order := newTestOrder(t, "PO-001")

	if err := repo.SaveOrder(order); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}

	got, err := repo.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if got.Number != "PO-001" {
		t.Errorf("expected PO-001, got %s", got.Number)
	}

	got, err = repo.GetOrderByNumber("PO-001")
	if err != nil {
		t.Fatalf("GetOrderByNumber failed: %v", err)
	}
	if got.ID != order.ID {
		t.Errorf("expected ID %s, got %s", order.ID, got.ID)
	}
}

func TestOrderRepository_NotFound(t *testing.T) {
	repo := NewOrderRepository()

	if _, err := repo.GetOrder(uuid.New()); err == nil {
		t.Error("expected error for unknown ID")
	}
	if _, err := repo.GetOrderByNumber("PO-404"); err == nil {
		t.Error("expected error for unknown number")
	}
}

func TestOrderRepository_DuplicateNumberRejected(t *testing.T) {
	repo := NewOrderRepository()

	if err := repo.SaveOrder(newTestOrder(t, "PO-001")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}
	if err := repo.SaveOrder(newTestOrder(t, "PO-001")); err == nil {
		t.Error("expected duplicate number error")
	}
}

func TestOrderRepository_ResaveSameOrder(t *testing.T) {
	repo := NewOrderRepository()
	order := newTestOrder(t, "PO-001")

	if err := repo.SaveOrder(order); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}

	item, _ := entities.NewLineItem("SKU-A", "Widget", 100,
		decimal.RequireFromString("10"), decimal.Zero, decimal.Zero)
	order.AddItem(*item)

	if err := repo.SaveOrder(order); err != nil {
		t.Fatalf("re-saving the same order failed: %v", err)
	}
}

func TestOrderRepository_GetAllOrdersSorted(t *testing.T) {
	repo := NewOrderRepository()
	if err := repo.LoadOrders([]*entities.PurchaseOrder{
		newTestOrder(t, "PO-003"),
		newTestOrder(t, "PO-001"),
		newTestOrder(t, "PO-002"),
	}); err != nil {
		t.Fatalf("LoadOrders failed: %v", err)
	}

	orders, err := repo.GetAllOrders()
	if err != nil {
		t.Fatalf("GetAllOrders failed: %v", err)
	}

	want := []string{"PO-001", "PO-002", "PO-003"}
	for i, number := range want {
		if orders[i].Number != number {
			t.Errorf("position %d: expected %s, got %s", i, number, orders[i].Number)
		}
	}
}

func TestOverrideRepository_FindBasis(t *testing.T) {
	repo := NewOverrideRepository()
	if err := repo.LoadOverrides(map[costing.ExpenseCategory]costing.Basis{
		costing.CategoryFreight: costing.BasisWeight,
	}); err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	basis, found, err := repo.FindBasis(costing.CategoryFreight)
	if err != nil {
		t.Fatalf("FindBasis failed: %v", err)
	}
	if !found || basis != costing.BasisWeight {
		t.Errorf("expected weight override, got %s found=%v", basis, found)
	}

	_, found, err = repo.FindBasis(costing.CategoryCustoms)
	if err != nil {
		t.Fatalf("FindBasis failed: %v", err)
	}
	if found {
		t.Error("expected no override for customs")
	}
}

func TestOverrideRepository_FailWith(t *testing.T) {
	repo := NewOverrideRepository()
	repo.FailWith(errors.New("storage offline"))

	if _, _, err := repo.FindBasis(costing.CategoryFreight); err == nil {
		t.Error("expected injected failure")
	}

	repo.FailWith(nil)
	if _, _, err := repo.FindBasis(costing.CategoryFreight); err != nil {
		t.Errorf("expected recovery after clearing failure, got %v", err)
	}
}
