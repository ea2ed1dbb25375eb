package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/costing"
	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// OrderCostReport is the complete financial picture of one purchase order
type OrderCostReport struct {
	OrderID     uuid.UUID
	OrderNumber string
	Supplier    string
	Currency    entities.Currency
	Totals      costing.OrderTotals
	Summary     costing.OrderSummary
	ItemCosts   []costing.ItemCost
}

// ExpenseAllocation is the outcome of distributing one shared expense
type ExpenseAllocation struct {
	ExpenseType string
	Basis       costing.Basis
	TotalAmount decimal.Decimal
	Allocations []costing.Allocation
}

// DashboardRow is one order's line on the dashboard
type DashboardRow struct {
	OrderNumber      string
	Supplier         string
	TotalInvestment  decimal.Decimal
	UnitCost         decimal.Decimal
	ReceptionPercent decimal.Decimal
}

// DashboardSummary aggregates every order for the landing dashboard
type DashboardSummary struct {
	OrderCount       int
	TotalInvested    decimal.Decimal
	TotalExpenses    decimal.Decimal
	OrderedUnits     entities.Quantity
	ReceivedUnits    entities.Quantity
	ReceptionPercent decimal.Decimal
	Rows             []DashboardRow
}
