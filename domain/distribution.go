package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DistributionSettingKey = "postDistribution"
	DefaultWaveCount       = 3
	MaxWaveCount           = 10
	DefaultWaveDelay       = 2000 * time.Millisecond
)

type ConnectionHandle = uuid.UUID

// Connection is process-local and never persisted.
type Connection struct {
	UserID      string           `json:"userId"`
	Handle      ConnectionHandle `json:"connectionHandle"`
	Wave        int              `json:"wave"`
	ConnectedAt time.Time        `json:"connectedAt"`
}

type DistributionConfig struct {
	Enabled   bool
	WaveCount int
	WaveDelay time.Duration
}

func DefaultDistributionConfig() DistributionConfig {
	return DistributionConfig{
		Enabled:   true,
		WaveCount: DefaultWaveCount,
		WaveDelay: DefaultWaveDelay,
	}
}

// DistributionSetting is the stored shape of the postDistribution setting.
// Absent fields fall back to the defaults.
type DistributionSetting struct {
	Enabled     *bool  `json:"enabled,omitempty"`
	WaveCount   *int   `json:"waveCount,omitempty"`
	WaveDelayMs *int64 `json:"waveDelayMs,omitempty"`
}

func (s DistributionSetting) ToConfig() DistributionConfig {
	cfg := DefaultDistributionConfig()
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.WaveCount != nil && *s.WaveCount >= 1 && *s.WaveCount <= MaxWaveCount {
		cfg.WaveCount = *s.WaveCount
	}
	if s.WaveDelayMs != nil && *s.WaveDelayMs >= 0 {
		cfg.WaveDelay = time.Duration(*s.WaveDelayMs) * time.Millisecond
	}
	return cfg
}

// WaveStats is a snapshot of how online connections spread over waves.
type WaveStats struct {
	TotalOnline      int         `json:"totalOnlineUsers"`
	WaveDistribution map[int]int `json:"waveDistribution"`
}
