package pricing

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"
)

// Store persists the override map to SQLite. The in-memory Overrides
// type stays the unit of computation; Store only loads and writes it.
type Store struct {
	db *sql.DB
}

// NewStore creates a new override store.
func NewStore(d *sql.DB) *Store {
	return &Store{db: d}
}

// Load reads every stored override. An empty table yields an empty,
// usable map: no overrides anywhere.
func (s *Store) Load(ctx context.Context) (Overrides, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT region, ingredient, price FROM price_overrides`)
	if err != nil {
		return nil, fmt.Errorf("failed to load price overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(Overrides)
	for rows.Next() {
		var (
			region, ingredient string
			price              float64
		)
		if err := rows.Scan(&region, &ingredient, &price); err != nil {
			return nil, fmt.Errorf("failed to scan price override row: %w", err)
		}
		if err := overrides.Set(region, ingredient, price); err != nil {
			return nil, err
		}
	}
	return overrides, rows.Err()
}

// Set upserts one correction, last write wins. There is no delete:
// contributions accumulate for the lifetime of the installation.
func (s *Store) Set(ctx context.Context, region, ingredient string, price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("invalid price %v for %s/%s: must be a non-negative amount", price, region, ingredient)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO price_overrides (region, ingredient, price, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(region, ingredient) DO UPDATE SET price = excluded.price, updated_at = excluded.updated_at`,
		region, ingredient, price, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to store price override: %w", err)
	}
	return nil
}

// ForRegion reads the override snapshot for one region.
func (s *Store) ForRegion(ctx context.Context, region string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ingredient, price FROM price_overrides WHERE region = ?`, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides for %s: %w", region, err)
	}
	defer rows.Close()

	snapshot := make(map[string]float64)
	for rows.Next() {
		var (
			ingredient string
			price      float64
		)
		if err := rows.Scan(&ingredient, &price); err != nil {
			return nil, fmt.Errorf("failed to scan override row: %w", err)
		}
		snapshot[ingredient] = price
	}
	return snapshot, rows.Err()
}
