// Agora debate server — exposes the session lifecycle API over HTTP and
// drives multi-model debates against an OpenRouter-compatible upstream.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/agora-labs/agora/pkg/analysis"
	"github.com/agora-labs/agora/pkg/analytics"
	"github.com/agora-labs/agora/pkg/api"
	"github.com/agora-labs/agora/pkg/cleanup"
	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/database"
	"github.com/agora-labs/agora/pkg/debate"
	"github.com/agora-labs/agora/pkg/events"
	"github.com/agora-labs/agora/pkg/metrics"
	"github.com/agora-labs/agora/pkg/pool"
	"github.com/agora-labs/agora/pkg/provider"
	"github.com/agora-labs/agora/pkg/resilience"
	"github.com/agora-labs/agora/pkg/rounds"
	"github.com/agora-labs/agora/pkg/services"
	"github.com/agora-labs/agora/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("AGORA_CONFIG", "./deploy/agora.yaml"),
		"Path to the YAML configuration file")
	flag.Parse()

	// Load .env from the config directory before anything reads the
	// environment.
	envPath := filepath.Join(filepath.Dir(*configPath), ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting Agora", "version", version.Full(), "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	sessionService := services.NewSessionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Upstream provider, instrumented for metrics and cost accounting.
	apiKey := os.Getenv(cfg.Provider.APIKeyEnv)
	if apiKey == "" {
		slog.Warn("Provider API key not set; upstream calls will be rejected",
			"env", cfg.Provider.APIKeyEnv)
	}
	collector := metrics.NewCollector()
	inCost := make(map[string]float64, len(cfg.Pool.Models))
	outCost := make(map[string]float64, len(cfg.Pool.Models))
	for _, m := range cfg.Pool.Models {
		inCost[m.ID] = m.InputCostPer1K
		outCost[m.ID] = m.OutputCostPer1K
	}
	prov := &provider.Observed{
		Inner:           provider.NewOpenRouter(cfg.Provider.BaseURL, apiKey, cfg.Provider.HTTPTimeout),
		Observer:        collector,
		InputCostPer1K:  inCost,
		OutputCostPer1K: outCost,
	}

	// Resilience and pool plumbing. Debaters and the analyzer assist share
	// breaker state per model but account under separate scopes.
	breakers := resilience.NewBreakerTable(cfg.Breaker)
	ledger := resilience.NewBudget()
	modelPool := pool.New(cfg.Pool)
	engine := pool.NewEngine(modelPool, cfg.Pool)
	debateGuard := resilience.NewGuard("debate", prov, breakers, ledger,
		cfg.Retry, cfg.Debate.TurnDeadline, modelPool.FallbackFor)
	assistGuard := resilience.NewGuard("analyzer", prov, breakers, ledger,
		cfg.Retry, cfg.Debate.TurnDeadline, modelPool.FallbackFor)

	// Observer bus plus the durable mirror used for replay across restarts.
	bus := events.NewBus()
	recorder := events.NewRecorder(bus, eventService)
	recorder.Start()
	defer recorder.Stop()

	orch := debate.NewOrchestrator(cfg.Debate, modelPool, engine, debateGuard, ledger,
		analysis.New(cfg.Analysis, assistGuard), rounds.New(cfg.Rounds, cfg.Debate),
		bus, sessionService, analytics.New())
	svc := debate.NewService(cfg.Debate, cfg.Retry, orch, modelPool, ledger, bus, sessionService)
	slog.Info("Debate service initialized", "models", len(cfg.Pool.Models))

	retention := cleanup.NewService(cfg.Retention, sessionService, eventService)
	retention.Start(ctx)
	defer retention.Stop()

	server := api.NewServer(api.Deps{
		Debate:   svc,
		Breakers: breakers,
		Pool:     modelPool,
		DB:       dbClient,
		History:  eventService,
		Metrics:  collector,
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := server.Run(runCtx, addr, cfg.Server.ShutdownTimeout); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
