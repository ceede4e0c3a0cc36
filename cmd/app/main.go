package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"warehouse/cmd"
	warehousehttp "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/in/tui"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const defaultSeedBatch = "A3, A3, B5, B5, C1, C1, A2, A2"

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	switch configs.Mode {
	case "server":
		startWebServer(&app, configs.HTTPPort)
	case "console":
		startConsole(&app)
	default:
		log.Fatalf("Unknown APP_MODE %q (want \"console\" or \"server\")", configs.Mode)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine, the defaults below cover local runs.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		Mode:              envOrDefault("APP_MODE", "console"),
		SeedBatch:         envOrDefault("SEED_BATCH", defaultSeedBatch),
		LowStockThreshold: envOrDefaultInt("LOW_STOCK_THRESHOLD", stock.DefaultLowStockThreshold),
		AlertLogCapacity:  envOrDefaultInt("ALERT_LOG_CAPACITY", stock.DefaultAlertLogCapacity),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, raw, err)
	}
	return value
}

func startConsole(app *cmd.CompositionRoot) {
	console := tui.NewApp(
		app.CreateAddStockCommandHandler(),
		app.CreatePackOrderCommandHandler(),
		app.CreateGetInventoryQueryHandler(),
		app.CreateGetPackedParcelsQueryHandler(),
		app.CreateGetAlertLogQueryHandler(),
	)

	if err := tui.Run(console); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetInventoryQueryHandler(),
		app.CreateGetAlertLogQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := warehousehttp.NewServer(
		app.CreateAddStockCommandHandler(),
		app.CreatePackOrderCommandHandler(),
		app.CreateGetInventoryQueryHandler(),
		app.CreateGetPackedParcelsQueryHandler(),
		app.CreateGetAlertLogQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
