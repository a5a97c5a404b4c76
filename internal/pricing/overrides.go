package pricing

import (
	"fmt"
	"math"
)

// Overrides maps region name to ingredient name to a user-corrected
// unit price. Keys are matched exactly: no case folding, trimming, or
// synonym handling, so "Beras" and "beras" are distinct entries. Two
// spellings of the same ingredient will silently miss each other;
// the correction surface pins the spelling by offering a fixed
// suggestion list.
type Overrides map[string]map[string]float64

// Set records a corrected price for (region, ingredient),
// overwriting any previous value. Prices must be finite and
// non-negative; nothing else is validated, the ingredient does not
// have to exist in any plan.
func (o Overrides) Set(region, ingredient string, price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("invalid price %v for %s/%s: must be a non-negative amount", price, region, ingredient)
	}
	m, ok := o[region]
	if !ok {
		m = make(map[string]float64)
		o[region] = m
	}
	m[ingredient] = price
	return nil
}

// Get returns the corrected price for (region, ingredient), if any.
func (o Overrides) Get(region, ingredient string) (float64, bool) {
	price, ok := o[region][ingredient]
	return price, ok
}

// Effective returns the corrected price when one exists, otherwise
// the generator's reference price.
func (o Overrides) Effective(region, ingredient string, reference float64) float64 {
	if price, ok := o.Get(region, ingredient); ok {
		return price
	}
	return reference
}

// ForRegion returns the override snapshot for one region. The result
// may be nil when the region has no contributions.
func (o Overrides) ForRegion(region string) map[string]float64 {
	return o[region]
}

// Contributions counts every stored (region, ingredient) pair.
func (o Overrides) Contributions() int {
	n := 0
	for _, m := range o {
		n += len(m)
	}
	return n
}

// ActiveRegions counts regions with at least one contribution.
func (o Overrides) ActiveRegions() int {
	n := 0
	for _, m := range o {
		if len(m) > 0 {
			n++
		}
	}
	return n
}
