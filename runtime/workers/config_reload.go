package workers

import (
	"context"
	"log/slog"
	"time"

	"traffic-lab/domain"
)

type configReloader interface {
	ReloadConfig() (domain.DistributionConfig, error)
}

// ConfigReloadWorker pulls the distribution config from storage on a fixed interval,
// so edits made by another replica or straight in the store get picked up.
type ConfigReloadWorker struct {
	log      *slog.Logger
	reloader configReloader
	interval time.Duration
}

func NewConfigReloadWorker(log *slog.Logger, reloader configReloader, interval time.Duration) *ConfigReloadWorker {
	return &ConfigReloadWorker{
		log:      log,
		reloader: reloader,
		interval: interval,
	}
}

func (w *ConfigReloadWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// A failed reload keeps the running config, the next tick retries.
			if _, err := w.reloader.ReloadConfig(); err != nil {
				w.log.Warn("Periodic config reload failed", "error", err)
			}
		}
	}
}
