// Package order_validator checks cross-record consistency of purchase order
// data before it reaches the costing engine. The engine itself tolerates any
// shape; validation exists so data-entry problems surface at load time with
// row context instead of as silently zeroed totals.
package order_validator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// ValidationResult contains the outcome of order validation
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation produced no errors.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateOrder checks one purchase order and its child records.
func ValidateOrder(order *entities.PurchaseOrder) ValidationResult {
	var result ValidationResult

	if order == nil {
		result.Errors = append(result.Errors, "order is nil")
		return result
	}
	if order.Number == "" {
		result.Errors = append(result.Errors, "order number is empty")
	}
	if order.OrderedQty < 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("order %s: ordered quantity is negative (%d)", order.Number, order.OrderedQty))
	}
	if order.FOBTotal.IsNegative() {
		result.Errors = append(result.Errors,
			fmt.Sprintf("order %s: FOB total is negative (%s)", order.Number, order.FOBTotal))
	}

	var lineUnits entities.Quantity
	for i, item := range order.Items {
		if err := checkOwnership(order.ID, item.OrderID); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s item %d (%s): %v", order.Number, i+1, item.SKU, err))
		}
		if item.Quantity < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s item %d (%s): quantity is negative (%d)",
					order.Number, i+1, item.SKU, item.Quantity))
		}
		if item.UnitPrice.IsNegative() {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s item %d (%s): unit price is negative (%s)",
					order.Number, i+1, item.SKU, item.UnitPrice))
		}
		lineUnits += item.Quantity
	}

	if len(order.Items) > 0 && lineUnits != order.OrderedQty {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("order %s: line items total %d units but ordered quantity is %d",
				order.Number, lineUnits, order.OrderedQty))
	}

	for i, p := range order.Payments {
		if err := checkOwnership(order.ID, p.OrderID); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s payment %d: %v", order.Number, i+1, err))
		}
		if !p.Currency.IsBase() && p.Rate.Sign() <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("order %s payment %d: non-positive rate %s for %s payment, converts to 0",
					order.Number, i+1, p.Rate, p.Currency))
		}
	}

	for i, e := range order.Expenses {
		if err := checkOwnership(order.ID, e.OrderID); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s expense %d (%s): %v", order.Number, i+1, e.Type, err))
		}
	}

	for i, r := range order.Receipts {
		if err := checkOwnership(order.ID, r.OrderID); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s receipt %d: %v", order.Number, i+1, err))
		}
		if r.Quantity < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("order %s receipt %d: quantity is negative (%d)", order.Number, i+1, r.Quantity))
		}
	}

	return result
}

// ValidateOrders checks a batch and additionally flags duplicate order numbers.
func ValidateOrders(orders []*entities.PurchaseOrder) ValidationResult {
	var result ValidationResult

	seen := make(map[string]bool, len(orders))
	for _, order := range orders {
		single := ValidateOrder(order)
		result.Errors = append(result.Errors, single.Errors...)
		result.Warnings = append(result.Warnings, single.Warnings...)

		if order == nil {
			continue
		}
		if seen[order.Number] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate order number: %s", order.Number))
		}
		seen[order.Number] = true
	}

	return result
}

func checkOwnership(orderID, childOrderID uuid.UUID) error {
	if childOrderID != uuid.Nil && childOrderID != orderID {
		return fmt.Errorf("belongs to a different order (%s)", childOrderID)
	}
	return nil
}
