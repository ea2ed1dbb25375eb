package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quantity represents an integer quantity of physical units
type Quantity int64

// PurchaseOrder represents an import purchase order placed with a supplier.
// It owns the line items, payments, logistics expenses and inventory receipts
// recorded against it. The costing engine consumes it as a read-only snapshot.
type PurchaseOrder struct {
	ID         uuid.UUID
	Number     string
	Supplier   string
	OrderedQty Quantity
	// FOBTotal is the declared merchandise value in the order's currency.
	FOBTotal decimal.Decimal
	Currency Currency
	// BoxCount is the number of shipping boxes; 0 means not reported.
	BoxCount int64
	PlacedAt time.Time
	Items    []LineItem
	Payments []Payment
	Expenses []LogisticsExpense
	Receipts []InventoryReceipt
}

// NewPurchaseOrder creates a validated PurchaseOrder
func NewPurchaseOrder(
	number, supplier string,
	orderedQty Quantity,
	fobTotal decimal.Decimal,
	currency Currency,
	boxCount int64,
	placedAt time.Time,
) (*PurchaseOrder, error) {
	if number == "" {
		return nil, fmt.Errorf("order number cannot be empty")
	}
	if orderedQty < 0 {
		return nil, fmt.Errorf("ordered quantity cannot be negative, got %d", orderedQty)
	}
	if fobTotal.IsNegative() {
		return nil, fmt.Errorf("FOB total cannot be negative, got %s", fobTotal)
	}
	if boxCount < 0 {
		return nil, fmt.Errorf("box count cannot be negative, got %d", boxCount)
	}

	return &PurchaseOrder{
		ID:         uuid.New(),
		Number:     number,
		Supplier:   supplier,
		OrderedQty: orderedQty,
		FOBTotal:   fobTotal,
		Currency:   currency,
		BoxCount:   boxCount,
		PlacedAt:   placedAt,
	}, nil
}

// AddItem appends a line item to the order
func (o *PurchaseOrder) AddItem(item LineItem) {
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
}

// AddPayment appends a payment to the order
func (o *PurchaseOrder) AddPayment(payment Payment) {
	payment.OrderID = o.ID
	o.Payments = append(o.Payments, payment)
}

// AddExpense appends a logistics expense to the order
func (o *PurchaseOrder) AddExpense(expense LogisticsExpense) {
	expense.OrderID = o.ID
	o.Expenses = append(o.Expenses, expense)
}

// AddReceipt appends an inventory receipt to the order
func (o *PurchaseOrder) AddReceipt(receipt InventoryReceipt) {
	receipt.OrderID = o.ID
	o.Receipts = append(o.Receipts, receipt)
}

// LineItem represents one product row within a purchase order
type LineItem struct {
	OrderID     uuid.UUID
	SKU         string
	Description string
	Quantity    Quantity
	// UnitPrice is in the order's currency.
	UnitPrice decimal.Decimal
	// UnitWeightKg and UnitVolumeM3 are optional; zero means unknown.
	UnitWeightKg decimal.Decimal
	UnitVolumeM3 decimal.Decimal
}

// NewLineItem creates a validated LineItem
func NewLineItem(
	sku, description string,
	quantity Quantity,
	unitPrice, unitWeightKg, unitVolumeM3 decimal.Decimal,
) (*LineItem, error) {
	if sku == "" {
		return nil, fmt.Errorf("SKU cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}
	if unitWeightKg.IsNegative() {
		return nil, fmt.Errorf("unit weight cannot be negative, got %s", unitWeightKg)
	}
	if unitVolumeM3.IsNegative() {
		return nil, fmt.Errorf("unit volume cannot be negative, got %s", unitVolumeM3)
	}

	return &LineItem{
		SKU:          sku,
		Description:  description,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		UnitWeightKg: unitWeightKg,
		UnitVolumeM3: unitVolumeM3,
	}, nil
}

// Subtotal returns quantity × unit price in the order's currency.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
