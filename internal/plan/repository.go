package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"sahabat-belanja/internal/budget"

	"github.com/google/uuid"
)

// HistoryItem is one generated plan kept in a user's history.
type HistoryItem struct {
	ID        string                  `json:"id"`
	Phone     string                  `json:"phone"`
	Prefs     budget.UserPreferences  `json:"prefs"`
	Result    GenerationResult        `json:"result"`
	CreatedAt time.Time               `json:"createdAt"`
}

// Repository is a database-backed repository for plan history.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new plan history repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save inserts a generated plan into the user's history and returns
// the assigned ID.
func (r *Repository) Save(ctx context.Context, phone string, prefs budget.UserPreferences, result *GenerationResult) (string, error) {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal preferences: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO meal_plans (id, user_phone, prefs_data, plan_data, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, phone, string(prefsJSON), string(resultJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert meal plan: %w", err)
	}
	return id, nil
}

// ListRecent retrieves the N most recent plans for a user, newest
// first.
func (r *Repository) ListRecent(ctx context.Context, phone string, limit int) ([]HistoryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_phone, prefs_data, plan_data, created_at
		 FROM meal_plans WHERE user_phone = ? ORDER BY created_at DESC LIMIT ?`,
		phone, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans for %s: %w", phone, err)
	}
	defer rows.Close()

	var items []HistoryItem
	for rows.Next() {
		var (
			item       HistoryItem
			prefsData  string
			resultData string
		)
		if err := rows.Scan(&item.ID, &item.Phone, &prefsData, &resultData, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan row: %w", err)
		}
		if err := json.Unmarshal([]byte(prefsData), &item.Prefs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences for plan %s: %w", item.ID, err)
		}
		if err := json.Unmarshal([]byte(resultData), &item.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan %s: %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get retrieves a single plan by ID.
func (r *Repository) Get(ctx context.Context, id string) (*HistoryItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_phone, prefs_data, plan_data, created_at FROM meal_plans WHERE id = ?`, id)

	var (
		item       HistoryItem
		prefsData  string
		resultData string
	)
	if err := row.Scan(&item.ID, &item.Phone, &prefsData, &resultData, &item.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal plan %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(prefsData), &item.Prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences for plan %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(resultData), &item.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %s: %w", id, err)
	}
	return &item, nil
}
