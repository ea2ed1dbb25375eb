package memory

import (
	"sync"

	"github.com/imptrack/landedcost/pkg/costing"
	"github.com/imptrack/landedcost/pkg/domain/repositories"
)

// OverrideRepository provides in-memory storage for the category→basis
// override table consulted by the basis resolver.
type OverrideRepository struct {
	mu        sync.RWMutex
	overrides map[costing.ExpenseCategory]costing.Basis
	failWith  error
}

// NewOverrideRepository creates a new in-memory override repository
func NewOverrideRepository() *OverrideRepository {
	return &OverrideRepository{
		overrides: make(map[costing.ExpenseCategory]costing.Basis),
	}
}

// Verify interface compliance
var _ repositories.BasisOverrideRepository = (*OverrideRepository)(nil)

// LoadOverrides loads the override table into the repository
func (r *OverrideRepository) LoadOverrides(overrides map[costing.ExpenseCategory]costing.Basis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for category, basis := range overrides {
		r.overrides[category] = basis
	}
	return nil
}

// FindBasis returns the persisted basis override for a category, if any
func (r *OverrideRepository) FindBasis(category costing.ExpenseCategory) (costing.Basis, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failWith != nil {
		return costing.BasisUnits, false, r.failWith
	}

	basis, ok := r.overrides[category]
	return basis, ok, nil
}

// GetAllOverrides returns a copy of the override table
func (r *OverrideRepository) GetAllOverrides() (map[costing.ExpenseCategory]costing.Basis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failWith != nil {
		return nil, r.failWith
	}

	out := make(map[costing.ExpenseCategory]costing.Basis, len(r.overrides))
	for category, basis := range r.overrides {
		out[category] = basis
	}
	return out, nil
}

// FailWith makes every subsequent read return err. Used to exercise the
// resolver's degradation path; pass nil to restore normal reads.
func (r *OverrideRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}
