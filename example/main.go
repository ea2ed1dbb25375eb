package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/application/services"
	"github.com/imptrack/landedcost/pkg/domain/entities"
	"github.com/imptrack/landedcost/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	order := buildSampleOrder()

	repo := memory.NewOrderRepository()
	if err := repo.SaveOrder(order); err != nil {
		fmt.Printf("failed to store order: %v\n", err)
		return
	}

	service := services.NewCostingService(repo, nil, false, nil)

	fmt.Println("Costing import order", order.Number, "from", order.Supplier)
	fmt.Println()

	report, err := service.OrderCostReport(ctx, order.ID)
	if err != nil {
		fmt.Printf("costing failed: %v\n", err)
		return
	}

	fmt.Println("Order totals:")
	fmt.Printf("  Total paid:       RD$ %s\n", report.Totals.TotalPaid)
	fmt.Printf("  Total expenses:   RD$ %s\n", report.Totals.TotalExpenses)
	fmt.Printf("  Total investment: RD$ %s\n", report.Totals.TotalInvestment)
	fmt.Printf("  Average rate:     %s\n", report.Summary.AverageRate)
	fmt.Printf("  Received: %d of %d units (%s%%)\n",
		report.Totals.ReceivedQty, order.OrderedQty, report.Totals.ReceptionPercent)
	fmt.Printf("  Unit cost: RD$ %s (FOB RD$ %s)\n",
		report.Totals.UnitCost, report.Totals.FOBUnitCost)
	fmt.Println()

	fmt.Println("Line item costs:")
	for _, item := range report.ItemCosts {
		fmt.Printf("  %s: %d units, share %s, landed RD$ %s (RD$ %s/unit)\n",
			item.SKU, item.Quantity, item.Share.Round(4), item.TotalCost, item.UnitCost)
	}
	fmt.Println()

	// Distribute one freight invoice across the order's line items.
	freight, _ := entities.NewLogisticsExpense(
		"Flete internacional",
		decimal.RequireFromString("5000"),
		time.Now(),
	)
	allocation, err := service.AllocateExpenseToItems(ctx, order.ID, *freight)
	if err != nil {
		fmt.Printf("allocation failed: %v\n", err)
		return
	}

	fmt.Printf("Allocating %s (RD$ %s) by %s:\n",
		allocation.ExpenseType, allocation.TotalAmount, allocation.Basis)
	for _, a := range allocation.Allocations {
		fmt.Printf("  %s: share %s, RD$ %s\n", a.Ref, a.Share.Round(4), a.Amount)
	}
}

func buildSampleOrder() *entities.PurchaseOrder {
	order, _ := entities.NewPurchaseOrder(
		"PO-2024-001", "Shenzhen Electronics Ltd",
		100, decimal.RequireFromString("1000"), entities.USD, 12,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)

	widget, _ := entities.NewLineItem("SKU-A", "Widget", 60,
		decimal.RequireFromString("10"),
		decimal.RequireFromString("0.5"),
		decimal.Zero)
	order.AddItem(*widget)

	gadget, _ := entities.NewLineItem("SKU-B", "Gadget", 40,
		decimal.RequireFromString("10"),
		decimal.RequireFromString("2"),
		decimal.Zero)
	order.AddItem(*gadget)

	paidAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wire, _ := entities.NewPayment(
		decimal.RequireFromString("1000"), entities.USD,
		decimal.RequireFromString("60"), decimal.RequireFromString("500"),
		paidAt, true)
	order.AddPayment(*wire)

	local, _ := entities.NewPayment(
		decimal.RequireFromString("4500"), entities.DOP,
		decimal.Zero, decimal.Zero,
		paidAt, true)
	order.AddPayment(*local)

	customs, _ := entities.NewLogisticsExpense("Aduana / DGA",
		decimal.RequireFromString("5000"), paidAt)
	order.AddExpense(*customs)

	receipt, _ := entities.NewInventoryReceipt(80,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	order.AddReceipt(*receipt)

	return order
}
