package workers

import (
	"context"
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/observability"
)

// ReporterWorker logs the health snapshot and the wave spread on a fixed interval.
type ReporterWorker struct {
	log        *slog.Logger
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewReporterWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	monitoring *observability.MonitoringManager,
	interval time.Duration,
) *ReporterWorker {
	return &ReporterWorker{
		log:        log,
		registry:   registry,
		monitoring: monitoring,
		interval:   interval,
	}
}

// Run starts the reporting loop until context cancellation
func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			w.log.Info("Reporter stopped")
			return nil
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ReporterWorker) report() {
	stats := w.monitoring.GetLatest()
	waves := w.registry.Stats()
	w.log.Info("Server stats",
		"uptime", time.Duration(stats.UptimeSeconds*float64(time.Second)).Round(time.Second).String(),
		"ramMb", stats.AllocMemMb,
		"cpu", stats.CPUPercent,
		"goroutines", stats.Goroutines,
		"online", waves.TotalOnline,
		"waves", waves.WaveDistribution,
	)
}
