package report

import (
	"fmt"

	"sahabat-belanja/internal/plan"
	"sahabat-belanja/internal/pricing"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Riwayat"
	shoppingSheet = "Daftar Belanja"
)

// BuildHistoryWorkbook renders a user's plan history as a spreadsheet:
// one summary sheet across plans and a shopping-list sheet for the
// most recent plan, priced with the current overrides.
func BuildHistoryWorkbook(items []plan.HistoryItem, overrides pricing.Overrides) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, items, overrides); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := writeShoppingSheet(f, items[0], overrides); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet once real sheets exist.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, items []plan.HistoryItem, overrides pricing.Overrides) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headers := []string{"Tanggal", "Kota", "Gaya Hidup", "Durasi (Hari)", "Orang", "Budget (Rp)", "Estimasi AI (Rp)", "Biaya Efektif (Rp)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return err
		}
	}

	for row, item := range items {
		effective := pricing.TotalEffectiveCost(item.Result.ShoppingList, overrides, item.Prefs.City)
		values := []interface{}{
			item.CreatedAt.Format("2006-01-02"),
			item.Prefs.City,
			string(item.Prefs.Lifestyle),
			item.Prefs.DurationDays,
			item.Prefs.NumberOfPeople,
			item.Prefs.Budget,
			item.Result.TotalEstimatedCost,
			effective,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeShoppingSheet(f *excelize.File, item plan.HistoryItem, overrides pricing.Overrides) error {
	if _, err := f.NewSheet(shoppingSheet); err != nil {
		return fmt.Errorf("failed to create shopping sheet: %w", err)
	}

	headers := []string{"Bahan", "Jumlah", "Kategori", "Harga Estimasi (Rp)", "Harga Efektif (Rp)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(shoppingSheet, cell, h); err != nil {
			return err
		}
	}

	for row, line := range item.Result.ShoppingList {
		eff := overrides.Effective(item.Prefs.City, line.Name, line.EstimatedPrice)
		reconciled := pricing.ReconciledTotal(line.EstimatedPrice, line.EstimatedPrice, eff)
		values := []interface{}{
			line.Name,
			line.Quantity,
			string(line.Category),
			line.EstimatedPrice,
			reconciled,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(shoppingSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
