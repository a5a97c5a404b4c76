package pricing

import "sahabat-belanja/internal/plan"

// ReconciledTotal scales a generator-supplied total price by the
// ratio of the effective unit price to the reference unit price. The
// generator's unit/total relationship is preserved instead of
// recomputing the total from the free-text quantity.
//
// A zero reference unit price cannot be scaled: the total is returned
// unchanged even when an override exists. Known limitation,
// reproduced deliberately.
func ReconciledTotal(unitPrice, totalPrice, effectivePrice float64) float64 {
	if unitPrice > 0 {
		return totalPrice * (effectivePrice / unitPrice)
	}
	return totalPrice
}

// MealTotal sums the reconciled cost of one meal's ingredient lines.
func MealTotal(ingredients []plan.IngredientDetail, overrides Overrides, region string) float64 {
	var sum float64
	for _, ing := range ingredients {
		eff := overrides.Effective(region, ing.Name, ing.UnitPrice)
		sum += ReconciledTotal(ing.UnitPrice, ing.TotalPrice, eff)
	}
	return sum
}

// TotalEffectiveCost sums the reconciled cost of the shopping list.
// At shopping-list granularity the estimated price is both the unit
// and the total reference, so the ratio collapses to
// override/estimatedPrice when a correction exists.
func TotalEffectiveCost(items []plan.ShoppingItem, overrides Overrides, region string) float64 {
	var sum float64
	for _, item := range items {
		eff := overrides.Effective(region, item.Name, item.EstimatedPrice)
		sum += ReconciledTotal(item.EstimatedPrice, item.EstimatedPrice, eff)
	}
	return sum
}
