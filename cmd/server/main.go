package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"sahabat-belanja/internal/app"
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
	"sahabat-belanja/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	geminiClient, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	table := budget.DefaultTable()

	application := app.NewApp(
		cfg,
		db,
		planner.NewGenerator(geminiClient, table),
		geminiClient,
		table,
		pricing.NewStore(db.SQL),
		plan.NewRepository(db.SQL),
		metrics.NewStore(db.SQL),
		harga.NewScraper(cfg.HargaPanganURL),
		harga.NewRepository(db.SQL),
	)

	authService, err := auth.NewService(auth.NewRepository(db.SQL), cfg.JWTSecret, cfg.AdminPhones)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	srv := server.NewServer(application, authService)

	log.Printf("Starting sahabat-belanja API on %s", cfg.ListenAddr)
	if err := srv.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
