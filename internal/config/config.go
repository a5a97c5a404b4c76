package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultHargaPanganURL = "https://panelharga.badanpangan.go.id/harga-eceran"

// Config holds the configuration for the application.
type Config struct {
	GeminiAPIKey string
	JWTSecret    string

	DataDir      string
	DatabasePath string

	// Comma-separated phone numbers that receive the admin role on login.
	AdminPhones []string

	// Source page for regional commodity reference prices.
	HargaPanganURL string

	// HTTP API
	ListenAddr string

	// Telegram Config (optional for CLI and server, required for the bot)
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
	AdminTelegramID        int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	var adminPhones []string
	if raw := os.Getenv("ADMIN_PHONES"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				adminPhones = append(adminPhones, p)
			}
		}
	}

	hargaURL := os.Getenv("HARGA_PANGAN_URL")
	if hargaURL == "" {
		hargaURL = defaultHargaPanganURL
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	var allowedIDs []int64
	if raw := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid TELEGRAM_ALLOWED_USER_IDS entry %q: %w", part, err)
			}
			allowedIDs = append(allowedIDs, id)
		}
	}

	var adminTelegramID int64
	if raw := os.Getenv("ADMIN_TELEGRAM_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID %q: %w", raw, err)
		}
		adminTelegramID = id
	}

	return &Config{
		GeminiAPIKey:           geminiAPIKey,
		JWTSecret:              jwtSecret,
		DataDir:                dataDir,
		DatabasePath:           filepath.Join(dataDir, "sahabat-belanja.db"),
		AdminPhones:            adminPhones,
		HargaPanganURL:         hargaURL,
		ListenAddr:             listenAddr,
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
		AdminTelegramID:        adminTelegramID,
	}, nil
}
