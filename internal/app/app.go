package app

import (
	"context"
	"fmt"
	"log"

	"sahabat-belanja/internal/auth"
	"sahabat-belanja/internal/budget"
	"sahabat-belanja/internal/config"
	"sahabat-belanja/internal/database"
	"sahabat-belanja/internal/harga"
	"sahabat-belanja/internal/llm"
	"sahabat-belanja/internal/metrics"
	"sahabat-belanja/internal/plan"
	"sahabat-belanja/internal/planner"
	"sahabat-belanja/internal/pricing"
	"sahabat-belanja/internal/report"
)

// App wires the analyzers, the generator boundary, and the
// repositories behind every surface (CLI, HTTP, Telegram).
type App struct {
	cfg *config.Config
	db  *database.DB

	generator    *planner.Generator
	health       llm.HealthChecker
	table        budget.RegionPriceTable
	priceStore   *pricing.Store
	planRepo     *plan.Repository
	metricsStore *metrics.Store
	hargaScraper *harga.Scraper
	hargaRepo    *harga.Repository
}

// NewApp creates and initializes a new App instance.
func NewApp(
	cfg *config.Config,
	db *database.DB,
	generator *planner.Generator,
	health llm.HealthChecker,
	table budget.RegionPriceTable,
	priceStore *pricing.Store,
	planRepo *plan.Repository,
	metricsStore *metrics.Store,
	hargaScraper *harga.Scraper,
	hargaRepo *harga.Repository,
) *App {
	return &App{
		cfg:          cfg,
		db:           db,
		generator:    generator,
		health:       health,
		table:        table,
		priceStore:   priceStore,
		planRepo:     planRepo,
		metricsStore: metricsStore,
		hargaScraper: hargaScraper,
		hargaRepo:    hargaRepo,
	}
}

// RegionTable exposes the static region price table.
func (a *App) RegionTable() budget.RegionPriceTable {
	return a.table
}

// Feasibility computes the budget verdict for a preference snapshot.
// Pure and instant; surfaces call it on every preference change.
func (a *App) Feasibility(prefs budget.UserPreferences) budget.Analysis {
	return budget.Analyze(prefs, a.table)
}

// PlanReport is a generated plan together with the derived figures
// the surfaces display.
type PlanReport struct {
	ID                 string                       `json:"id"`
	Analysis           budget.Analysis              `json:"analysis"`
	Result             *plan.GenerationResult       `json:"result"`
	TotalEffectiveCost float64                      `json:"totalEffectiveCost"`
	Allocations        []pricing.CategoryAllocation `json:"allocations"`
}

// GeneratePlan runs the full flow: feasibility gate, generation with
// the region's override snapshot as market context, reconciliation,
// allocation analysis, and history persistence. Generation failures
// come back as planner.ErrUnavailable; an infeasible budget as
// planner.ErrBudgetInfeasible.
func (a *App) GeneratePlan(ctx context.Context, phone string, prefs budget.UserPreferences) (*PlanReport, error) {
	overrides, err := a.priceStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	result, meta, err := a.generator.Generate(ctx, prefs, overrides.ForRegion(prefs.City))
	if recordErr := a.metricsStore.RecordMeta(ctx, meta); recordErr != nil {
		log.Printf("Warning: failed to record execution metric: %v", recordErr)
	}
	if err != nil {
		return nil, err
	}

	id, err := a.planRepo.Save(ctx, phone, prefs, result)
	if err != nil {
		return nil, fmt.Errorf("failed to save plan history: %w", err)
	}

	return &PlanReport{
		ID:                 id,
		Analysis:           budget.Analyze(prefs, a.table),
		Result:             result,
		TotalEffectiveCost: pricing.TotalEffectiveCost(result.ShoppingList, overrides, prefs.City),
		Allocations:        pricing.AnalyzeAllocations(result.ShoppingList, overrides, prefs.City, prefs.Budget),
	}, nil
}

// ReviewPlan re-derives the reconciled figures for a stored plan
// using the current overrides. Nothing is cached: corrections made
// after generation show up on the next review.
func (a *App) ReviewPlan(ctx context.Context, id string) (*PlanReport, error) {
	item, err := a.planRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("plan %s not found", id)
	}

	overrides, err := a.priceStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &PlanReport{
		ID:                 item.ID,
		Analysis:           budget.Analyze(item.Prefs, a.table),
		Result:             &item.Result,
		TotalEffectiveCost: pricing.TotalEffectiveCost(item.Result.ShoppingList, overrides, item.Prefs.City),
		Allocations:        pricing.AnalyzeAllocations(item.Result.ShoppingList, overrides, item.Prefs.City, item.Prefs.Budget),
	}, nil
}

// CorrectPrice records a crowd-sourced price correction for
// (region, ingredient). Validation is non-negativity only.
func (a *App) CorrectPrice(ctx context.Context, region, ingredient string, price float64) error {
	return a.priceStore.Set(ctx, region, ingredient, price)
}

// RegionOverrides returns the stored corrections for one region.
func (a *App) RegionOverrides(ctx context.Context, region string) (map[string]float64, error) {
	return a.priceStore.ForRegion(ctx, region)
}

// History lists a user's recent plans, newest first.
func (a *App) History(ctx context.Context, phone string, limit int) ([]plan.HistoryItem, error) {
	return a.planRepo.ListRecent(ctx, phone, limit)
}

// StorageReport builds the admin storage and contribution summary.
func (a *App) StorageReport(ctx context.Context) (metrics.StorageReport, error) {
	overrides, err := a.priceStore.Load(ctx)
	if err != nil {
		return metrics.StorageReport{}, err
	}
	return metrics.BuildStorageReport(a.cfg.DataDir, overrides.Contributions(), overrides.ActiveRegions()), nil
}

// Diagnostics pings the model provider and reports connectivity.
func (a *App) Diagnostics(ctx context.Context) llm.HealthStatus {
	return a.health.CheckStatus(ctx)
}

// DailyUsage reports token consumption for the last N days.
func (a *App) DailyUsage(ctx context.Context, days int) ([]metrics.DailyUsage, error) {
	return a.metricsStore.GetDailyUsage(ctx, days)
}

// ExportDatabase produces the admin's JSON backup for one user.
func (a *App) ExportDatabase(ctx context.Context, user auth.User) ([]byte, error) {
	overrides, err := a.priceStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	return report.ExportDatabase(user, overrides)
}

// ExportHistoryWorkbook renders a user's history as a spreadsheet.
func (a *App) ExportHistoryWorkbook(ctx context.Context, phone string) ([]byte, error) {
	items, err := a.planRepo.ListRecent(ctx, phone, 50)
	if err != nil {
		return nil, err
	}
	overrides, err := a.priceStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	f, err := report.BuildHistoryWorkbook(items, overrides)
	if err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// RefreshReferencePrices scrapes the market price page for a region
// and stores the batch for the correction surface.
func (a *App) RefreshReferencePrices(ctx context.Context, region string) (int, error) {
	prices, err := a.hargaScraper.FetchRegionPrices(ctx, region)
	if err != nil {
		return 0, err
	}
	if err := a.hargaRepo.SaveRegionPrices(ctx, region, prices); err != nil {
		return 0, err
	}
	return len(prices), nil
}

// ReferencePrices lists the stored scraped prices for a region.
func (a *App) ReferencePrices(ctx context.Context, region string) ([]harga.CommodityPrice, error) {
	return a.hargaRepo.RegionPrices(ctx, region)
}
