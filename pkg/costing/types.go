package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// Basis represents the proportionality key used to allocate a shared cost
// across cost-bearing entities.
type Basis int

const (
	BasisUnits Basis = iota
	BasisWeight
	BasisVolume
	BasisValue
	BasisBoxes
)

func (b Basis) String() string {
	switch b {
	case BasisUnits:
		return "Units"
	case BasisWeight:
		return "Weight"
	case BasisVolume:
		return "Volume"
	case BasisValue:
		return "Value"
	case BasisBoxes:
		return "Boxes"
	default:
		return "Unknown"
	}
}

// ParseBasis parses a basis name into a Basis.
func ParseBasis(s string) (Basis, error) {
	switch s {
	case "units", "Units":
		return BasisUnits, nil
	case "weight", "Weight":
		return BasisWeight, nil
	case "volume", "Volume":
		return BasisVolume, nil
	case "value", "Value":
		return BasisValue, nil
	case "boxes", "Boxes":
		return BasisBoxes, nil
	default:
		return BasisUnits, fmt.Errorf("invalid basis: %s (expected: units, weight, volume, value, or boxes)", s)
	}
}

// ExpenseCategory is the closed set of configuration categories an expense
// label can map to. Persisted basis overrides are keyed by category.
type ExpenseCategory int

const (
	CategoryFreight ExpenseCategory = iota
	CategoryCustoms
	CategoryInsurance
	CategoryStorage
	CategoryTax
	CategoryOther
)

func (c ExpenseCategory) String() string {
	switch c {
	case CategoryFreight:
		return "Freight"
	case CategoryCustoms:
		return "Customs"
	case CategoryInsurance:
		return "Insurance"
	case CategoryStorage:
		return "Storage"
	case CategoryTax:
		return "Tax"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseExpenseCategory parses a category name into an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch s {
	case "freight", "Freight":
		return CategoryFreight, nil
	case "customs", "Customs":
		return CategoryCustoms, nil
	case "insurance", "Insurance":
		return CategoryInsurance, nil
	case "storage", "Storage":
		return CategoryStorage, nil
	case "tax", "Tax":
		return CategoryTax, nil
	case "other", "Other":
		return CategoryOther, nil
	default:
		return CategoryOther, fmt.Errorf("invalid expense category: %s", s)
	}
}

// Allocation is one entity's slice of a distributed cost. Share is a fraction
// in [0,1]; Amount and UnitCost are in the base currency, rounded to 2 places.
type Allocation struct {
	Ref      string
	Quantity entities.Quantity
	Share    decimal.Decimal
	Amount   decimal.Decimal
	UnitCost decimal.Decimal
}

// OrderShare is the order-level cost-bearing shape used when one shared
// expense is split across several orders on the same shipment.
type OrderShare struct {
	OrderRef string
	Quantity entities.Quantity
	// BoxCount is 0 when the order reported no box data.
	BoxCount int64
	// DeclaredValue is the order's FOB total converted to the base currency.
	DeclaredValue decimal.Decimal
}

// OrderTotals is the aggregate financial picture of one purchase order.
// Monetary fields are in the base currency, rounded to 2 places.
type OrderTotals struct {
	TotalPaid       decimal.Decimal
	TotalExpenses   decimal.Decimal
	TotalInvestment decimal.Decimal
	ReceivedQty     entities.Quantity
	// UnitCost is the realized cost per received unit; 0 until units arrive.
	UnitCost    decimal.Decimal
	FOBUnitCost decimal.Decimal
	// UnitsDifference is ordered minus received; negative when over-received.
	UnitsDifference  entities.Quantity
	ReceptionPercent decimal.Decimal
}

// ItemCost is one line item's share of an order's landed cost.
type ItemCost struct {
	SKU      string
	Quantity entities.Quantity
	// Share is the item's fraction of the order's declared value.
	Share         decimal.Decimal
	FOBCost       decimal.Decimal
	LogisticsCost decimal.Decimal
	TotalCost     decimal.Decimal
	UnitCost      decimal.Decimal
}

// OrderSummary is the top-level roll-up of an order for reporting.
type OrderSummary struct {
	TotalUnits      entities.Quantity
	TotalFOB        decimal.Decimal
	TotalPaid       decimal.Decimal
	TotalExpenses   decimal.Decimal
	TotalCost       decimal.Decimal
	AverageRate     decimal.Decimal
	AverageUnitCost decimal.Decimal
}
