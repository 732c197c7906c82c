package runtime

import (
	"log/slog"
	"sync"

	"traffic-lab/contract"
	"traffic-lab/domain"
)

// ConfigProvider holds the in-memory DistributionConfig.
// It is mutated only by Reload, every other access is a read of a copy.
type ConfigProvider struct {
	mu     sync.RWMutex
	log    *slog.Logger
	source contract.ConfigSource
	config domain.DistributionConfig
}

func NewConfigProvider(log *slog.Logger, source contract.ConfigSource) *ConfigProvider {
	return &ConfigProvider{
		log:    log.With("component", "distribution_config"),
		source: source,
		config: domain.DefaultDistributionConfig(),
	}
}

// Get returns a snapshot, callers never see a half-applied reload.
func (p *ConfigProvider) Get() domain.DistributionConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config
}

func (p *ConfigProvider) WaveCount() int {
	return p.Get().WaveCount
}

// Reload replaces the config from the durable source.
// On failure the previous config is kept.
func (p *ConfigProvider) Reload() (domain.DistributionConfig, error) {
	cfg, err := p.source.LoadDistributionConfig()
	if err != nil {
		p.log.Error("Error loading distribution config, keeping previous", "error", err)
		return p.Get(), err
	}
	p.mu.Lock()
	p.config = cfg
	p.mu.Unlock()
	p.log.Info("Distribution config reloaded",
		"enabled", cfg.Enabled, "waveCount", cfg.WaveCount, "waveDelay", cfg.WaveDelay)
	return cfg, nil
}
