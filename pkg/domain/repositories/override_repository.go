package repositories

import "github.com/imptrack/landedcost/pkg/costing"

// BasisOverrideRepository provides access to the persisted category→basis
// override table consulted by the basis resolver. A missing override is not
// an error; the second return is false. The read itself may fail, and
// callers degrade to built-in behavior when it does.
type BasisOverrideRepository interface {
	costing.OverrideLookup

	LoadOverrides(overrides map[costing.ExpenseCategory]costing.Basis) error
	GetAllOverrides() (map[costing.ExpenseCategory]costing.Basis, error)
}
