package pricing

import (
	"sort"

	"sahabat-belanja/internal/plan"
)

// RecommendedShares is the fixed budget-allocation table per
// category. The six known shares sum to exactly 1.0.
var RecommendedShares = map[plan.Category]float64{
	plan.CategoryProtein:     0.35,
	plan.CategorySayur:       0.25,
	plan.CategoryKarbohidrat: 0.25,
	plan.CategoryBuah:        0.10,
	plan.CategoryBumbu:       0.03,
	plan.CategoryLainnya:     0.02,
}

// fallbackShare applies to categories outside the known set. With it,
// the allocated sum can exceed the budget; that over-approximation is
// accepted rather than renormalizing the table.
const fallbackShare = 0.05

// AllocationStatus says whether actual spend exceeds the allocation.
type AllocationStatus string

const (
	AllocationOver  AllocationStatus = "over"
	AllocationUnder AllocationStatus = "under"
)

// CategoryAllocation is the derived per-category comparison of actual
// reconciled spend against the recommended budget share. Recomputed
// whenever the shopping list, overrides, or budget change.
type CategoryAllocation struct {
	Category  plan.Category    `json:"category"`
	Actual    float64          `json:"actual"`
	Allocated float64          `json:"allocated"`
	Status    AllocationStatus `json:"status"`
}

// AnalyzeAllocations groups the shopping list by category, sums each
// group's reconciled spend, and compares it to the recommended share
// of the total budget. Items without a category fall into Lainnya;
// unrecognized categories keep their own group and take the fallback
// share. Output is sorted by actual spend, highest first.
func AnalyzeAllocations(items []plan.ShoppingItem, overrides Overrides, region string, budget float64) []CategoryAllocation {
	actuals := make(map[plan.Category]float64)
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = plan.CategoryLainnya
		}
		eff := overrides.Effective(region, item.Name, item.EstimatedPrice)
		actuals[cat] += ReconciledTotal(item.EstimatedPrice, item.EstimatedPrice, eff)
	}

	allocations := make([]CategoryAllocation, 0, len(actuals))
	for cat, actual := range actuals {
		share, ok := RecommendedShares[cat]
		if !ok {
			share = fallbackShare
		}
		allocated := budget * share
		status := AllocationUnder
		if actual > allocated {
			status = AllocationOver
		}
		allocations = append(allocations, CategoryAllocation{
			Category:  cat,
			Actual:    actual,
			Allocated: allocated,
			Status:    status,
		})
	}

	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Actual != allocations[j].Actual {
			return allocations[i].Actual > allocations[j].Actual
		}
		return allocations[i].Category < allocations[j].Category
	})
	return allocations
}
