package pricing

import (
	"math"
	"testing"

	"sahabat-belanja/internal/plan"
)

func TestReconciledTotal(t *testing.T) {
	t.Run("NoOverrideIsIdentity", func(t *testing.T) {
		for _, unitPrice := range []float64{0, 1, 500, 12000} {
			if got := ReconciledTotal(unitPrice, 5000, unitPrice); got != 5000 {
				t.Errorf("unitPrice=%v: expected 5000, got %v", unitPrice, got)
			}
		}
	})

	t.Run("OverrideScalesProportionally", func(t *testing.T) {
		if got := ReconciledTotal(1000, 5000, 2000); got != 10000 {
			t.Errorf("Expected 10000 with a 2x override, got %v", got)
		}
		if got := ReconciledTotal(1000, 5000, 500); got != 2500 {
			t.Errorf("Expected 2500 with a 0.5x override, got %v", got)
		}
	})

	t.Run("ZeroUnitPriceCannotScale", func(t *testing.T) {
		if got := ReconciledTotal(0, 3000, 9999); got != 3000 {
			t.Errorf("Expected the total to pass through unchanged, got %v", got)
		}
	})
}

func TestOverrides(t *testing.T) {
	t.Run("SetAndEffective", func(t *testing.T) {
		o := make(Overrides)
		if err := o.Set("Kota Bandung", "Beras", 12000); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		// The correction wins over any later reference price.
		for _, ref := range []float64{9000, 15000, 0} {
			if got := o.Effective("Kota Bandung", "Beras", ref); got != 12000 {
				t.Errorf("ref=%v: expected 12000, got %v", ref, got)
			}
		}

		// A new correction for the same key replaces the old one.
		if err := o.Set("Kota Bandung", "Beras", 13500); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if got := o.Effective("Kota Bandung", "Beras", 9000); got != 13500 {
			t.Errorf("Expected 13500 after rewrite, got %v", got)
		}
	})

	t.Run("MissingOverrideFallsBackToReference", func(t *testing.T) {
		o := make(Overrides)
		if got := o.Effective("Kota Bandung", "Beras", 9000); got != 9000 {
			t.Errorf("Expected the reference price 9000, got %v", got)
		}
	})

	t.Run("KeysMatchExactly", func(t *testing.T) {
		o := make(Overrides)
		_ = o.Set("Kota Bandung", "Beras", 12000)

		if got := o.Effective("Kota Bandung", "beras", 9000); got != 9000 {
			t.Errorf("Lower-cased key must not match, got %v", got)
		}
		if got := o.Effective("kota bandung", "Beras", 9000); got != 9000 {
			t.Errorf("Differently-cased region must not match, got %v", got)
		}
	})

	t.Run("RejectsInvalidPrices", func(t *testing.T) {
		o := make(Overrides)
		for _, price := range []float64{-1, math.Inf(-1), math.Inf(1), math.NaN()} {
			if err := o.Set("Kota Bandung", "Beras", price); err == nil {
				t.Errorf("Expected an error for price %v", price)
			}
		}
		// Zero is a legal corrected price.
		if err := o.Set("Kota Bandung", "Garam", 0); err != nil {
			t.Errorf("Expected zero to be accepted, got %v", err)
		}
	})

	t.Run("Counts", func(t *testing.T) {
		o := make(Overrides)
		_ = o.Set("Kota Bandung", "Beras", 12000)
		_ = o.Set("Kota Bandung", "Telur Ayam", 28000)
		_ = o.Set("Kota Medan", "Beras", 11000)

		if got := o.Contributions(); got != 3 {
			t.Errorf("Expected 3 contributions, got %d", got)
		}
		if got := o.ActiveRegions(); got != 2 {
			t.Errorf("Expected 2 active regions, got %d", got)
		}
	})
}

func TestMealTotal(t *testing.T) {
	ingredients := []plan.IngredientDetail{
		{Name: "Beras", Quantity: "200 gr", UnitPrice: 1000, TotalPrice: 5000},
		{Name: "Telur Ayam", Quantity: "2 butir", UnitPrice: 2000, TotalPrice: 4000},
		{Name: "Gratisan", Quantity: "secukupnya", UnitPrice: 0, TotalPrice: 3000},
	}

	t.Run("WithoutOverrides", func(t *testing.T) {
		got := MealTotal(ingredients, make(Overrides), "Kota Bandung")
		if got != 12000 {
			t.Errorf("Expected 12000, got %v", got)
		}
	})

	t.Run("WithOverrides", func(t *testing.T) {
		o := make(Overrides)
		_ = o.Set("Kota Bandung", "Beras", 2000)    // 2x -> 10000
		_ = o.Set("Kota Bandung", "Gratisan", 5000) // zero unit price, no effect

		got := MealTotal(ingredients, o, "Kota Bandung")
		if got != 17000 {
			t.Errorf("Expected 17000, got %v", got)
		}
	})

	t.Run("OverrideForAnotherRegionIsIgnored", func(t *testing.T) {
		o := make(Overrides)
		_ = o.Set("Kota Medan", "Beras", 2000)

		got := MealTotal(ingredients, o, "Kota Bandung")
		if got != 12000 {
			t.Errorf("Expected 12000, got %v", got)
		}
	})
}

func TestTotalEffectiveCost(t *testing.T) {
	items := []plan.ShoppingItem{
		{Name: "Beras", Category: plan.CategoryKarbohidrat, EstimatedPrice: 60000},
		{Name: "Ayam (Daging/Potong)", Category: plan.CategoryProtein, EstimatedPrice: 76000},
	}

	t.Run("RatioCollapsesToOverride", func(t *testing.T) {
		o := make(Overrides)
		_ = o.Set("Kota Bandung", "Beras", 55000)

		got := TotalEffectiveCost(items, o, "Kota Bandung")
		if got != 131000 {
			t.Errorf("Expected 131000, got %v", got)
		}
	})

	t.Run("EmptyOverridesSumReferences", func(t *testing.T) {
		got := TotalEffectiveCost(items, make(Overrides), "Kota Bandung")
		if got != 136000 {
			t.Errorf("Expected 136000, got %v", got)
		}
	})
}
