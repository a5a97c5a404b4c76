package report

import (
	"encoding/json"
	"fmt"
	"time"

	"sahabat-belanja/internal/auth"
	"sahabat-belanja/internal/pricing"
)

// AppVersion is stamped into database exports.
const AppVersion = "1.13.0-STABLE"

// DatabaseExport is the admin's backup of the installation state.
type DatabaseExport struct {
	User       auth.User         `json:"user"`
	Overrides  pricing.Overrides `json:"overrides"`
	ExportedAt time.Time         `json:"exportedAt"`
	AppVersion string            `json:"appVersion"`
}

// ExportDatabase serializes the installation state as indented JSON.
// An empty override map exports as an empty object, not null.
func ExportDatabase(user auth.User, overrides pricing.Overrides) ([]byte, error) {
	if overrides == nil {
		overrides = make(pricing.Overrides)
	}
	export := DatabaseExport{
		User:       user,
		Overrides:  overrides,
		ExportedAt: time.Now().UTC(),
		AppVersion: AppVersion,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal database export: %w", err)
	}
	return data, nil
}
