package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

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
	metricsStore := metrics.NewStore(db.SQL)

	application := app.NewApp(
		cfg,
		db,
		planner.NewGenerator(geminiClient, table),
		geminiClient,
		table,
		pricing.NewStore(db.SQL),
		plan.NewRepository(db.SQL),
		metricsStore,
		harga.NewScraper(cfg.HargaPanganURL),
		harga.NewRepository(db.SQL),
	)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "feasibility":
		runFeasibility(application, os.Args[2:])
	case "generate":
		runGenerate(ctx, application, os.Args[2:])
	case "correct-price":
		runCorrectPrice(ctx, application, os.Args[2:])
	case "prices":
		runPrices(ctx, application, os.Args[2:])
	case "refresh-harga":
		runRefreshHarga(ctx, application, os.Args[2:])
	case "diagnostics":
		status := application.Diagnostics(ctx)
		fmt.Printf("Status: %s\nModel: %s\n%s\n", status.Status, status.Model, status.Message)
	case "storage":
		report, err := application.StorageReport(ctx)
		if err != nil {
			log.Fatalf("Storage report failed: %v", err)
		}
		printJSON(report)
	case "export":
		runExport(ctx, application, os.Args[2:])
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metricsStore.Cleanup(ctx, *days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func prefsFlags(fs *flag.FlagSet) func() budget.UserPreferences {
	city := fs.String("city", "", "City for regional price lookup")
	budgetValue := fs.Float64("budget", 0, "Total budget in rupiah")
	days := fs.Int("days", 7, "Plan duration in days")
	people := fs.Int("people", 1, "Number of people")
	portions := fs.Int("portions", 3, "Portions (meals) per person per day")
	lifestyle := fs.String("lifestyle", "Normal", "Lifestyle tier: Sederhana, Normal, or Mewah")

	return func() budget.UserPreferences {
		return budget.UserPreferences{
			City:            *city,
			Budget:          *budgetValue,
			DurationDays:    *days,
			NumberOfPeople:  *people,
			PortionsPerMeal: *portions,
			Lifestyle:       budget.ParseLifestyle(*lifestyle),
		}
	}
}

func runFeasibility(application *app.App, args []string) {
	fs := flag.NewFlagSet("feasibility", flag.ExitOnError)
	prefs := prefsFlags(fs)
	fs.Parse(args)

	printJSON(application.Feasibility(prefs()))
}

func runGenerate(ctx context.Context, application *app.App, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	prefs := prefsFlags(fs)
	phone := fs.String("phone", "", "Phone number the plan is saved under")
	fs.Parse(args)

	report, err := application.GeneratePlan(ctx, *phone, prefs())
	if err != nil {
		log.Fatalf("Plan generation failed: %v", err)
	}
	printJSON(report)
}

func runCorrectPrice(ctx context.Context, application *app.App, args []string) {
	fs := flag.NewFlagSet("correct-price", flag.ExitOnError)
	region := fs.String("region", "", "Region the correction applies to")
	ingredient := fs.String("ingredient", "", "Ingredient name (exact match)")
	price := fs.Float64("price", 0, "Corrected price in rupiah")
	fs.Parse(args)

	if *region == "" || *ingredient == "" {
		log.Fatal("Both -region and -ingredient are required")
	}
	if err := application.CorrectPrice(ctx, *region, *ingredient, *price); err != nil {
		log.Fatalf("Price correction failed: %v", err)
	}
	fmt.Printf("Recorded %s = Rp %.0f for %s\n", *ingredient, *price, *region)
}

func runPrices(ctx context.Context, application *app.App, args []string) {
	fs := flag.NewFlagSet("prices", flag.ExitOnError)
	region := fs.String("region", "", "Region to list corrections for")
	fs.Parse(args)

	prices, err := application.RegionOverrides(ctx, *region)
	if err != nil {
		log.Fatalf("Failed to list prices: %v", err)
	}
	printJSON(prices)
}

func runRefreshHarga(ctx context.Context, application *app.App, args []string) {
	fs := flag.NewFlagSet("refresh-harga", flag.ExitOnError)
	region := fs.String("region", "", "Region to scrape reference prices for")
	fs.Parse(args)

	count, err := application.RefreshReferencePrices(ctx, *region)
	if err != nil {
		log.Fatalf("Reference price refresh failed: %v", err)
	}
	fmt.Printf("Stored %d reference prices for %s\n", count, *region)
}

func runExport(ctx context.Context, application *app.App, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	phone := fs.String("phone", "", "Phone number to export as")
	fs.Parse(args)

	user := auth.User{Phone: *phone, Name: *phone, Role: auth.RoleAdmin}
	data, err := application.ExportDatabase(ctx, user)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	os.Stdout.Write(data)
	fmt.Println()
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println("Usage: sahabat-belanja <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  feasibility      Check whether a budget is viable for a region and lifestyle")
	fmt.Println("  generate         Generate a meal plan and shopping list")
	fmt.Println("  correct-price    Record a market price correction")
	fmt.Println("  prices           List stored price corrections for a region")
	fmt.Println("  refresh-harga    Scrape and store regional reference prices")
	fmt.Println("  diagnostics      Check generator connectivity")
	fmt.Println("  storage          Print the storage and contribution report")
	fmt.Println("  export           Print the JSON database export")
	fmt.Println("  metrics-cleanup  Remove old metric records")
}
