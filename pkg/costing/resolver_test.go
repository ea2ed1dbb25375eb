package costing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubOverrides is an OverrideLookup with scripted answers per category.
type stubOverrides struct {
	basis map[ExpenseCategory]Basis
	err   error
}

func (s *stubOverrides) FindBasis(category ExpenseCategory) (Basis, bool, error) {
	if s.err != nil {
		return BasisUnits, false, s.err
	}
	b, ok := s.basis[category]
	return b, ok, nil
}

func TestResolve_KeywordTable(t *testing.T) {
	resolver := NewBasisResolver(false, nil, nil)

	tests := []struct {
		label string
		want  Basis
	}{
		{"Flete internacional", BasisBoxes},
		{"Transporte local", BasisBoxes},
		{"Almacenaje puerto", BasisBoxes},
		{"Aduana / DGA", BasisValue},
		{"Impuestos DGA", BasisValue},
		{"Seguro de carga", BasisValue},
		{"Servicios de broker", BasisValue},
		{"Otros gastos", BasisUnits},
		{"", BasisUnits},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.label))
		})
	}
}

func TestResolve_CaseInsensitiveSubstring(t *testing.T) {
	resolver := NewBasisResolver(false, nil, nil)

	assert.Equal(t, BasisBoxes, resolver.Resolve("FLETE marítimo contenedor"))
	assert.Equal(t, BasisValue, resolver.Resolve("pago de ADUANA santo domingo"))
}

func TestResolve_ConfiguredOverrideWins(t *testing.T) {
	overrides := &stubOverrides{basis: map[ExpenseCategory]Basis{
		CategoryFreight: BasisWeight,
	}}
	resolver := NewBasisResolver(true, overrides, nil)

	assert.Equal(t, BasisWeight, resolver.Resolve("Flete internacional"))

	// Categories without an override keep the keyword behavior.
	assert.Equal(t, BasisValue, resolver.Resolve("Aduana / DGA"))
}

func TestResolve_OverrideLookupErrorFallsThrough(t *testing.T) {
	overrides := &stubOverrides{err: errors.New("connection reset")}
	resolver := NewBasisResolver(true, overrides, nil)

	assert.NotPanics(t, func() {
		assert.Equal(t, BasisBoxes, resolver.Resolve("Flete internacional"))
		assert.Equal(t, BasisValue, resolver.Resolve("Seguro de carga"))
		assert.Equal(t, BasisUnits, resolver.Resolve("Otros"))
	})
}

func TestResolve_UnrecognizedLabelSkipsOverrides(t *testing.T) {
	// A label outside the category table never reaches the override lookup.
	overrides := &stubOverrides{err: errors.New("must not be called")}
	resolver := NewBasisResolver(true, overrides, nil)

	assert.Equal(t, BasisUnits, resolver.Resolve("Gasto misceláneo"))
}

func TestResolve_SwitchOffIgnoresOverrides(t *testing.T) {
	overrides := &stubOverrides{basis: map[ExpenseCategory]Basis{
		CategoryFreight: BasisWeight,
	}}
	resolver := NewBasisResolver(false, overrides, nil)

	assert.Equal(t, BasisBoxes, resolver.Resolve("Flete internacional"))
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		label    string
		category ExpenseCategory
		ok       bool
	}{
		{"Flete internacional", CategoryFreight, true},
		{"Transporte interno", CategoryFreight, true},
		{"Almacenaje", CategoryStorage, true},
		{"Aduana", CategoryCustoms, true},
		{"Broker fees", CategoryCustoms, true},
		{"Impuesto selectivo", CategoryTax, true},
		{"Seguro marítimo", CategoryInsurance, true},
		{"Papelería", CategoryOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			category, ok := CategoryFor(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.category, category)
		})
	}
}
