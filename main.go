package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	analyticsapp "ispdesk/internal/analytics/application"
	analyticsevents "ispdesk/internal/analytics/application/events"
	catalog "ispdesk/internal/catalog/domain"
	catalogmemory "ispdesk/internal/catalog/infrastructure/memory"
	clientapp "ispdesk/internal/clients/application"
	clientmemory "ispdesk/internal/clients/infrastructure/memory"
	"ispdesk/internal/config"
	"ispdesk/internal/eventing"
	"ispdesk/internal/observability/metrics"
	reports "ispdesk/internal/reports/interfaces"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config load error: %v", err)
	}

	m := metrics.New()
	bus := eventing.NewInMemoryBus()
	registry := clientmemory.NewClientRegistry()

	tariffs := catalogmemory.NewTariffCatalog()
	for _, seed := range cfg.FixedTariffs {
		t, err := catalog.NewFixedTariff(seed.Name, seed.Price)
		if err != nil {
			logger.Fatalf("seed tariff %q error: %v", seed.Name, err)
		}
		if _, err := tariffs.Append(t); err != nil {
			logger.Fatalf("seed tariff %q error: %v", seed.Name, err)
		}
	}

	desk := clientapp.NewDeskService(registry, tariffs, bus, clientapp.SystemClock{}, m, logger)
	scheduler := analyticsapp.NewScheduler(desk, bus, m, cfg.StatsInterval(), logger)

	bus.SubscribeStatisticsComputed(func(_ context.Context, event analyticsevents.StatisticsComputed) error {
		snap := event.Snapshot
		logger.Printf("statistics: clients=%d active=%d revenue=%.2f avg_balance=%.2f",
			snap.TotalClients, snap.ActiveClients, snap.TotalRevenue, snap.AverageBalance)
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("ispdesk started: tariffs=%d stats_interval=%s", tariffs.Len(), cfg.StatsInterval())
	go scheduler.Start(ctx)

	<-ctx.Done()
	logger.Printf("shutting down")

	if err := exportRegistry(desk, cfg, logger); err != nil {
		logger.Printf("export error: %v", err)
	}
}

// exportRegistry writes the final registry report and statistics
// snapshot into the export directory.
func exportRegistry(desk *clientapp.DeskService, cfg config.Config, logger *log.Logger) error {
	ctx := context.Background()
	list := desk.Clients(ctx)
	snap := desk.Snapshot(ctx)

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return err
	}

	workbook, err := reports.BuildRegistryXLSX(list, snap)
	if err != nil {
		return err
	}
	xlsxPath := filepath.Join(cfg.ExportDir, "registry.xlsx")
	if err := os.WriteFile(xlsxPath, workbook, 0o644); err != nil {
		return err
	}

	payload, err := reports.MarshalSnapshot(snap)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(cfg.ExportDir, "statistics.json")
	if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return err
	}

	logger.Printf("exported %s and %s", xlsxPath, jsonPath)
	return nil
}
