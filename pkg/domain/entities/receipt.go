package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InventoryReceipt records a physical reception of units against an order.
// It carries no monetary data.
type InventoryReceipt struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Quantity   Quantity
	ReceivedAt time.Time
}

// NewInventoryReceipt creates a validated InventoryReceipt
func NewInventoryReceipt(quantity Quantity, receivedAt time.Time) (*InventoryReceipt, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("received quantity cannot be negative, got %d", quantity)
	}

	return &InventoryReceipt{
		ID:         uuid.New(),
		Quantity:   quantity,
		ReceivedAt: receivedAt,
	}, nil
}
