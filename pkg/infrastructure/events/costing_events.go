package events

import (
	"github.com/shopspring/decimal"
)

const (
	ExpenseAllocatedEvent       = "expense.allocated"
	SharedExpenseAllocatedEvent = "expense.shared_allocated"
	ReportBuiltEvent            = "report.built"
)

// ExpenseAllocated records one expense being distributed across an order's
// line items.
type ExpenseAllocated struct {
	OrderNumber string          `json:"order_number"`
	ExpenseType string          `json:"expense_type"`
	Basis       string          `json:"basis"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SharedExpenseAllocated records a shipment-level expense being distributed
// across several orders. The event is appended to each order's stream.
type SharedExpenseAllocated struct {
	ExpenseType string          `json:"expense_type"`
	Basis       string          `json:"basis"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderCount  int             `json:"order_count"`
}

// ReportBuilt records a cost report being produced for an order.
type ReportBuilt struct {
	OrderNumber     string          `json:"order_number"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
}

func NewExpenseAllocated(orderNumber, expenseType, basis string, totalAmount decimal.Decimal) Event {
	return NewEvent(ExpenseAllocatedEvent, orderNumber, ExpenseAllocated{
		OrderNumber: orderNumber,
		ExpenseType: expenseType,
		Basis:       basis,
		TotalAmount: totalAmount,
	})
}

func NewSharedExpenseAllocated(orderNumber, expenseType, basis string, totalAmount decimal.Decimal, orderCount int) Event {
	return NewEvent(SharedExpenseAllocatedEvent, orderNumber, SharedExpenseAllocated{
		ExpenseType: expenseType,
		Basis:       basis,
		TotalAmount: totalAmount,
		OrderCount:  orderCount,
	})
}

func NewReportBuilt(orderNumber string, totalInvestment decimal.Decimal) Event {
	return NewEvent(ReportBuiltEvent, orderNumber, ReportBuilt{
		OrderNumber:     orderNumber,
		TotalInvestment: totalInvestment,
	})
}
