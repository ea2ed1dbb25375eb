package costing

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// OverrideLookup is a persisted category→basis override table. The read is
// fallible and side-effecting; resolution treats a failed or missing lookup
// as "no override" rather than an error.
type OverrideLookup interface {
	FindBasis(category ExpenseCategory) (Basis, bool, error)
}

// keywordRule maps substrings of an expense label to a basis and category.
// Labels come from data entry in Spanish ("Flete internacional",
// "Aduana / DGA"), matched case-insensitively.
type keywordRule struct {
	keyword  string
	basis    Basis
	category ExpenseCategory
}

var keywordRules = []keywordRule{
	{"flete", BasisBoxes, CategoryFreight},
	{"transporte", BasisBoxes, CategoryFreight},
	{"almacenaje", BasisBoxes, CategoryStorage},
	{"aduana", BasisValue, CategoryCustoms},
	{"impuesto", BasisValue, CategoryTax},
	{"seguro", BasisValue, CategoryInsurance},
	{"broker", BasisValue, CategoryCustoms},
}

// BasisResolver maps an expense's type label to the allocation basis used to
// distribute it. Resolution is total: every label resolves to some basis and
// no failure path reaches the caller.
//
// With the configured switch off the built-in keyword table decides alone.
// With it on, the label is mapped to a configuration category and a persisted
// override for that category is consulted first; a missing category, absent
// override, or lookup error falls through to the keyword table.
type BasisResolver struct {
	useConfigured bool
	overrides     OverrideLookup
	log           logrus.FieldLogger
}

// NewBasisResolver creates a resolver. overrides may be nil when
// useConfigured is false; log may be nil to silence fallback logging.
func NewBasisResolver(useConfigured bool, overrides OverrideLookup, log logrus.FieldLogger) *BasisResolver {
	if log == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.PanicLevel)
		log = logger
	}
	return &BasisResolver{
		useConfigured: useConfigured,
		overrides:     overrides,
		log:           log,
	}
}

// Resolve returns the allocation basis for an expense type label.
func (r *BasisResolver) Resolve(expenseType string) Basis {
	if r.useConfigured && r.overrides != nil {
		if category, ok := CategoryFor(expenseType); ok {
			basis, found, err := r.overrides.FindBasis(category)
			if err != nil {
				r.log.WithError(err).WithField("category", category.String()).
					Debug("basis override lookup failed, using keyword table")
			} else if found {
				return basis
			}
		}
	}
	return keywordBasis(expenseType)
}

// CategoryFor maps an expense label to its configuration category using the
// built-in keyword table. The second return is false for unrecognized labels.
func CategoryFor(expenseType string) (ExpenseCategory, bool) {
	label := strings.ToLower(expenseType)
	for _, rule := range keywordRules {
		if strings.Contains(label, rule.keyword) {
			return rule.category, true
		}
	}
	return CategoryOther, false
}

// keywordBasis is the total fallback: sizing-related labels distribute by
// boxes, duty/value-related labels by declared value, everything else evenly
// by unit count.
func keywordBasis(expenseType string) Basis {
	label := strings.ToLower(expenseType)
	for _, rule := range keywordRules {
		if strings.Contains(label, rule.keyword) {
			return rule.basis
		}
	}
	return BasisUnits
}
