package telegram

import (
	"fmt"
	"strings"

	"sahabat-belanja/internal/app"
	"sahabat-belanja/internal/budget"
	"sahabat-belanja/internal/plan"
	"sahabat-belanja/internal/pricing"
)

func statusEmoji(status budget.Status) string {
	switch status {
	case budget.StatusDanger:
		return "🔴"
	case budget.StatusWarning:
		return "🟡"
	}
	return "🟢"
}

func formatAnalysis(a budget.Analysis) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s *%s*\n\n", statusEmoji(a.Status), a.Message))
	sb.WriteString(fmt.Sprintf("Biaya per porsi: Rp %.0f (minimal wajar Rp %.0f)\n\n", a.CostPerMeal, a.MinRational))
	sb.WriteString(a.Reason + "\n\n")
	sb.WriteString("_" + a.Advice + "_")
	return sb.String()
}

// formatPlanParts renders a generated plan as two messages: the menu
// and the shopping list. Telegram caps messages at 4096 characters,
// which is why the list travels separately.
func formatPlanParts(report *app.PlanReport) (string, string) {
	var pb strings.Builder
	pb.WriteString("📅 *Rencana Menu*\n\n")

	for _, day := range report.Result.DailyPlans {
		pb.WriteString(fmt.Sprintf("*Hari %d*\n", day.Day))
		pb.WriteString(fmt.Sprintf("🌅 %s\n", day.Breakfast.Title))
		pb.WriteString(fmt.Sprintf("☀️ %s\n", day.Lunch.Title))
		pb.WriteString(fmt.Sprintf("🌙 %s\n", day.Dinner.Title))
		pb.WriteString(fmt.Sprintf("_%.0f dari %.0f kkal standar harian_\n\n",
			day.DailyTotal.Calories, plan.DailyStandard.Calories))
	}

	if report.Result.BudgetAnalysis != "" {
		pb.WriteString("_" + report.Result.BudgetAnalysis + "_\n")
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Daftar Belanja*\n\n")
	for _, item := range report.Result.ShoppingList {
		sb.WriteString(fmt.Sprintf("• %s (%s) — Rp %.0f\n", item.Name, item.Quantity, item.EstimatedPrice))
	}
	sb.WriteString(fmt.Sprintf("\n*Total estimasi AI*: Rp %.0f\n", report.Result.TotalEstimatedCost))
	sb.WriteString(fmt.Sprintf("*Total harga efektif*: Rp %.0f\n", report.TotalEffectiveCost))

	var overs []string
	for _, alloc := range report.Allocations {
		if alloc.Status == pricing.AllocationOver {
			overs = append(overs, string(alloc.Category))
		}
	}
	if len(overs) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️ Kategori melebihi alokasi ideal: %s\n", strings.Join(overs, ", ")))
	}

	return pb.String(), sb.String()
}
