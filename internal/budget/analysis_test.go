package budget

import (
	"math"
	"testing"
)

// fixedTable pins minRational to 6000 for every city and lifestyle so
// classification boundaries are easy to reason about.
var fixedTable = RegionPriceTable{
	Default: RegionPrice{Sederhana: 6000, Normal: 6000, Mewah: 6000},
}

func prefsWithBudget(budget float64) UserPreferences {
	return UserPreferences{
		Budget:          budget,
		DurationDays:    7,
		NumberOfPeople:  4,
		PortionsPerMeal: 3,
		Lifestyle:       LifestyleNormal,
		City:            "Kota Uji",
	}
}

func TestAnalyzeCostPerMeal(t *testing.T) {
	t.Run("ExactDivision", func(t *testing.T) {
		a := Analyze(prefsWithBudget(504000), fixedTable)
		// 7 * 4 * 3 = 84 meals
		if a.CostPerMeal != 6000 {
			t.Errorf("Expected cost per meal 6000, got %v", a.CostPerMeal)
		}
	})

	t.Run("ZeroMealsFallsBackToOne", func(t *testing.T) {
		prefs := prefsWithBudget(250000)
		prefs.DurationDays = 0
		a := Analyze(prefs, fixedTable)
		if a.CostPerMeal != 250000 {
			t.Errorf("Expected cost per meal to equal the budget, got %v", a.CostPerMeal)
		}
	})
}

func TestAnalyzeClassification(t *testing.T) {
	// 84 meals at minRational 6000: budget 504000 sits exactly on the
	// success boundary, 378000 exactly on the danger boundary.
	cases := []struct {
		name     string
		budget   float64
		status   Status
		disabled bool
	}{
		{"RatioBelowDangerThreshold", 300000, StatusDanger, true},
		{"RatioExactlyThreeQuarters", 378000, StatusWarning, false},
		{"RatioJustBelowOne", 500000, StatusWarning, false},
		{"RatioExactlyOne", 504000, StatusSuccess, false},
		{"RatioAboveOne", 700000, StatusSuccess, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Analyze(prefsWithBudget(tc.budget), fixedTable)
			if a.Status != tc.status {
				t.Errorf("Expected status %q, got %q", tc.status, a.Status)
			}
			if a.Disabled != tc.disabled {
				t.Errorf("Expected disabled=%v, got %v", tc.disabled, a.Disabled)
			}
		})
	}
}

func TestAnalyzeEndToEndScenarios(t *testing.T) {
	t.Run("WeeklyFamilyBudgetIsVeryTight", func(t *testing.T) {
		a := Analyze(prefsWithBudget(500000), fixedTable)
		if math.Abs(a.CostPerMeal-5952.38) > 0.01 {
			t.Errorf("Expected cost per meal ~5952.38, got %v", a.CostPerMeal)
		}
		if a.Status != StatusWarning {
			t.Errorf("Expected warning, got %q", a.Status)
		}
		if a.Message != "Sangat Hemat" {
			t.Errorf("Unexpected message: %q", a.Message)
		}
	})

	t.Run("WeeklyFamilyBudgetIsTooLow", func(t *testing.T) {
		a := Analyze(prefsWithBudget(300000), fixedTable)
		if math.Abs(a.CostPerMeal-3571.43) > 0.01 {
			t.Errorf("Expected cost per meal ~3571.43, got %v", a.CostPerMeal)
		}
		if a.Status != StatusDanger {
			t.Errorf("Expected danger, got %q", a.Status)
		}
		if !a.Disabled {
			t.Error("Expected submission to be blocked")
		}
	})
}

func TestMinRationalPriceFallbacks(t *testing.T) {
	table := DefaultTable()

	t.Run("KnownCity", func(t *testing.T) {
		got := table.MinRationalPrice("Kota Administrasi Jakarta Selatan", LifestyleNormal)
		if got != 8000 {
			t.Errorf("Expected 8000 for Jakarta Selatan Normal, got %v", got)
		}
	})

	t.Run("UnknownCityUsesDefault", func(t *testing.T) {
		got := table.MinRationalPrice("Kota Antah Berantah", LifestyleNormal)
		if got != table.Default.Normal {
			t.Errorf("Expected default price %v, got %v", table.Default.Normal, got)
		}
	})

	t.Run("LifestyleTiersAscend", func(t *testing.T) {
		for city, r := range table.Regions {
			if !(r.Sederhana < r.Normal && r.Normal < r.Mewah) {
				t.Errorf("Tier prices for %s are not ascending: %+v", city, r)
			}
		}
	})
}

func TestParseLifestyle(t *testing.T) {
	if got := ParseLifestyle("Mewah"); got != LifestyleMewah {
		t.Errorf("Expected Mewah, got %q", got)
	}
	if got := ParseLifestyle("premium"); got != LifestyleNormal {
		t.Errorf("Expected fallback to Normal, got %q", got)
	}
}
