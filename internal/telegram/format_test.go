package telegram

import (
	"strings"
	"testing"

	"sahabat-belanja/internal/app"
	"sahabat-belanja/internal/budget"
	"sahabat-belanja/internal/plan"
	"sahabat-belanja/internal/pricing"
)

func TestFormatPlanParts(t *testing.T) {
	report := &app.PlanReport{
		Result: &plan.GenerationResult{
			DailyPlans: []plan.DayPlan{
				{
					Day:        1,
					Breakfast:  plan.Meal{Title: "Bubur Ayam"},
					Lunch:      plan.Meal{Title: "Ayam Goreng Lalapan"},
					Dinner:     plan.Meal{Title: "Tumis Kangkung"},
					DailyTotal: plan.NutritionalInfo{Calories: 1450, Protein: 53, Carbs: 180},
				},
			},
			ShoppingList: []plan.ShoppingItem{
				{Name: "Beras", Quantity: "5 kg", Category: plan.CategoryKarbohidrat, EstimatedPrice: 60000},
				{Name: "Ayam", Quantity: "1 kg", Category: plan.CategoryProtein, EstimatedPrice: 38000},
			},
			TotalEstimatedCost: 98000,
			BudgetAnalysis:     "Anggaran cukup untuk seminggu.",
		},
		TotalEffectiveCost: 101000,
		Allocations: []pricing.CategoryAllocation{
			{Category: plan.CategoryKarbohidrat, Actual: 60000, Allocated: 50000, Status: pricing.AllocationOver},
			{Category: plan.CategoryProtein, Actual: 38000, Allocated: 70000, Status: pricing.AllocationUnder},
		},
	}

	planOutput, shoppingOutput := formatPlanParts(report)

	if !strings.Contains(planOutput, "📅 *Rencana Menu*") {
		t.Error("Missing plan header")
	}
	if !strings.Contains(planOutput, "*Hari 1*") {
		t.Error("Missing day header")
	}
	if !strings.Contains(planOutput, "Ayam Goreng Lalapan") {
		t.Error("Missing lunch title")
	}
	if !strings.Contains(planOutput, "1450 dari 2150 kkal") {
		t.Error("Missing daily nutrition comparison")
	}
	if !strings.Contains(planOutput, "_Anggaran cukup untuk seminggu._") {
		t.Error("Missing budget analysis note")
	}

	if !strings.Contains(shoppingOutput, "🛒 *Daftar Belanja*") {
		t.Error("Missing shopping list header")
	}
	if !strings.Contains(shoppingOutput, "• Beras (5 kg) — Rp 60000") {
		t.Error("Missing shopping item line")
	}
	if !strings.Contains(shoppingOutput, "*Total estimasi AI*: Rp 98000") {
		t.Error("Missing estimated total")
	}
	if !strings.Contains(shoppingOutput, "*Total harga efektif*: Rp 101000") {
		t.Error("Missing effective total")
	}
	if !strings.Contains(shoppingOutput, "Karbohidrat") {
		t.Error("Missing over-allocation warning")
	}
}

func TestFormatAnalysis(t *testing.T) {
	out := formatAnalysis(budget.Analysis{
		CostPerMeal: 5952.38,
		MinRational: 8000,
		Status:      budget.StatusWarning,
		Message:     "Sangat Hemat",
		Reason:      "Anggaran di batas minimal.",
		Advice:      "Fokus pada protein nabati.",
	})

	if !strings.Contains(out, "🟡 *Sangat Hemat*") {
		t.Error("Missing status line")
	}
	if !strings.Contains(out, "Rp 5952") {
		t.Error("Missing cost per meal")
	}
	if !strings.Contains(out, "_Fokus pada protein nabati._") {
		t.Error("Missing advice line")
	}
}
