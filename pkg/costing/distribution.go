package costing

import (
	"github.com/shopspring/decimal"

	"github.com/imptrack/landedcost/pkg/domain/entities"
)

// Distribute splits totalCost across an order's line items proportionally to
// the chosen basis. rate converts unit prices into the base currency for the
// declared-value basis; pass 1 when prices are already in base.
//
// Fallback policy, in order:
//   - totalCost = 0 or no items: every item gets a zero allocation outright.
//   - A basis whose governing sum (Σ weight, Σ volume, Σ value) is zero
//     degrades to unit-count distribution.
//   - If the requested basis still produces an all-zero distribution, the
//     routing escalates: requested basis → declared value → unit count.
//
// Unit-count distribution succeeds whenever Σ quantity > 0, so a successful
// distribution always satisfies Σ share = 1 and Σ amount = totalCost within
// rounding tolerance.
func Distribute(
	items []entities.LineItem,
	totalCost decimal.Decimal,
	basis Basis,
	rate decimal.Decimal,
) []Allocation {
	if len(items) == 0 {
		return nil
	}
	if totalCost.IsZero() {
		return zeroItemAllocations(items)
	}

	for _, b := range fallbackChain(basis) {
		allocs := distributeItemsByBasis(items, totalCost, b, rate)
		if !allZeroShares(allocs) {
			settleRounding(allocs, totalCost)
			return allocs
		}
	}

	return zeroItemAllocations(items)
}

// DistributeAcrossOrders splits a shared shipment cost across orders. This is
// the order-level instantiation of the same allocation: boxes are only known
// per order, so box-count distribution lives here. Orders without box data
// keep an explicit zero share under the box basis rather than being skipped.
func DistributeAcrossOrders(
	orders []OrderShare,
	totalCost decimal.Decimal,
	basis Basis,
) []Allocation {
	if len(orders) == 0 {
		return nil
	}
	if totalCost.IsZero() {
		return zeroOrderAllocations(orders)
	}

	for _, b := range fallbackChain(basis) {
		allocs := distributeOrdersByBasis(orders, totalCost, b)
		if !allZeroShares(allocs) {
			settleRounding(allocs, totalCost)
			return allocs
		}
	}

	return zeroOrderAllocations(orders)
}

// fallbackChain returns the escalation order for a requested basis:
// requested → declared value → unit count, without repeats.
func fallbackChain(basis Basis) []Basis {
	chain := []Basis{basis}
	if basis != BasisValue {
		chain = append(chain, BasisValue)
	}
	if basis != BasisUnits {
		chain = append(chain, BasisUnits)
	}
	return chain
}

func distributeItemsByBasis(
	items []entities.LineItem,
	totalCost decimal.Decimal,
	basis Basis,
	rate decimal.Decimal,
) []Allocation {
	weights := make([]decimal.Decimal, len(items))
	for i, item := range items {
		weights[i] = itemBasisWeight(item, basis, rate)
	}

	// A sizing or value basis with no usable data splits evenly instead of
	// dividing by zero. Box counts are not an item-level attribute, so the
	// box basis is left to the routing escalation.
	if sumIsZero(weights) && basis != BasisUnits && basis != BasisBoxes {
		for i, item := range items {
			weights[i] = itemBasisWeight(item, BasisUnits, rate)
		}
	}

	allocs := make([]Allocation, len(items))
	shares := proportionalShares(weights)
	for i, item := range items {
		allocs[i] = newAllocation(item.SKU, item.Quantity, shares[i], totalCost)
	}
	return allocs
}

func distributeOrdersByBasis(
	orders []OrderShare,
	totalCost decimal.Decimal,
	basis Basis,
) []Allocation {
	weights := make([]decimal.Decimal, len(orders))
	for i, o := range orders {
		weights[i] = orderBasisWeight(o, basis)
	}

	if sumIsZero(weights) && basis == BasisValue {
		for i, o := range orders {
			weights[i] = orderBasisWeight(o, BasisUnits)
		}
	}

	allocs := make([]Allocation, len(orders))
	shares := proportionalShares(weights)
	for i, o := range orders {
		allocs[i] = newAllocation(o.OrderRef, o.Quantity, shares[i], totalCost)
	}
	return allocs
}

func itemBasisWeight(item entities.LineItem, basis Basis, rate decimal.Decimal) decimal.Decimal {
	qty := decimal.NewFromInt(int64(item.Quantity))
	switch basis {
	case BasisWeight:
		return qty.Mul(item.UnitWeightKg)
	case BasisVolume:
		return qty.Mul(item.UnitVolumeM3)
	case BasisValue:
		return qty.Mul(item.UnitPrice).Mul(rate)
	case BasisUnits:
		return qty
	default:
		// Box counts exist at the order level only.
		return decimal.Zero
	}
}

func orderBasisWeight(o OrderShare, basis Basis) decimal.Decimal {
	switch basis {
	case BasisBoxes:
		return decimal.NewFromInt(o.BoxCount)
	case BasisValue:
		return o.DeclaredValue
	case BasisUnits:
		return decimal.NewFromInt(int64(o.Quantity))
	default:
		// Per-unit weight and volume are not carried at the order level.
		return decimal.Zero
	}
}

// proportionalShares normalizes weights into fractions of their sum.
// A zero sum yields all-zero shares, which the caller treats as a failed
// basis and escalates.
func proportionalShares(weights []decimal.Decimal) []decimal.Decimal {
	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(w)
	}

	shares := make([]decimal.Decimal, len(weights))
	for i, w := range weights {
		if total.IsZero() || w.IsZero() {
			shares[i] = decimal.Zero
			continue
		}
		shares[i] = w.Div(total)
	}
	return shares
}

func newAllocation(ref string, qty entities.Quantity, share, totalCost decimal.Decimal) Allocation {
	amount := totalCost.Mul(share).Round(2)
	unitCost := decimal.Zero
	if qty > 0 {
		unitCost = amount.Div(decimal.NewFromInt(int64(qty))).Round(2)
	}
	return Allocation{
		Ref:      ref,
		Quantity: qty,
		Share:    share,
		Amount:   amount,
		UnitCost: unitCost,
	}
}

// settleRounding folds the residual left by per-entity 2dp rounding into the
// largest allocation so the amounts sum back to totalCost exactly.
// Zero-share entities are never touched.
func settleRounding(allocs []Allocation, totalCost decimal.Decimal) {
	amountSum := decimal.Zero
	largest := -1
	for i, a := range allocs {
		if a.Share.IsZero() {
			continue
		}
		amountSum = amountSum.Add(a.Amount)
		if largest < 0 || a.Amount.GreaterThan(allocs[largest].Amount) {
			largest = i
		}
	}
	if largest < 0 {
		return
	}

	residual := totalCost.Sub(amountSum)
	if residual.IsZero() {
		return
	}

	a := &allocs[largest]
	a.Amount = a.Amount.Add(residual)
	if a.Quantity > 0 {
		a.UnitCost = a.Amount.Div(decimal.NewFromInt(int64(a.Quantity))).Round(2)
	}
}

func zeroItemAllocations(items []entities.LineItem) []Allocation {
	allocs := make([]Allocation, len(items))
	for i, item := range items {
		allocs[i] = Allocation{Ref: item.SKU, Quantity: item.Quantity}
	}
	return allocs
}

func zeroOrderAllocations(orders []OrderShare) []Allocation {
	allocs := make([]Allocation, len(orders))
	for i, o := range orders {
		allocs[i] = Allocation{Ref: o.OrderRef, Quantity: o.Quantity}
	}
	return allocs
}

func sumIsZero(weights []decimal.Decimal) bool {
	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(w)
	}
	return total.IsZero()
}

func allZeroShares(allocs []Allocation) bool {
	for _, a := range allocs {
		if !a.Share.IsZero() {
			return false
		}
	}
	return true
}
