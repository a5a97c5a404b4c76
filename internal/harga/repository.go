package harga

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// CommonIngredients is the fixed suggestion list the correction
// surface offers, so contributed spellings match the generator's
// typical output.
var CommonIngredients = []string{
	"Ayam (Daging/Potong)", "Bawang Merah", "Bawang Putih", "Beras",
	"Cabai Merah Keriting", "Cabai Rawit Merah", "Daging Sapi", "Garam",
	"Gula Pasir", "Ikan Bandeng", "Ikan Kembung", "Kangkung", "Kecap Manis",
	"Minyak Goreng", "Sayur Bayam", "Susu UHT", "Tahu Putih", "Telur Ayam",
	"Tempe", "Tomat",
}

// Repository persists scraped reference prices.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new reference price repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// SaveRegionPrices replaces the stored reference prices for a region
// with a freshly scraped batch.
func (r *Repository) SaveRegionPrices(ctx context.Context, region string, prices []CommodityPrice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, p := range prices {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reference_prices (region, commodity, price, fetched_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT(region, commodity) DO UPDATE SET price = excluded.price, fetched_at = excluded.fetched_at`,
			region, p.Name, p.Price, now,
		); err != nil {
			return fmt.Errorf("failed to store reference price for %s: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// RegionPrices reads the stored reference prices for a region, sorted
// by commodity name.
func (r *Repository) RegionPrices(ctx context.Context, region string) ([]CommodityPrice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT commodity, price FROM reference_prices WHERE region = ?`, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference prices for %s: %w", region, err)
	}
	defer rows.Close()

	var prices []CommodityPrice
	for rows.Next() {
		var p CommodityPrice
		if err := rows.Scan(&p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan reference price row: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i].Name < prices[j].Name })
	return prices, nil
}
