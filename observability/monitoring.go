package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

const (
	StatusStarting = "starting"
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// HealthStats is the latest process snapshot exposed on /health.
type HealthStats struct {
	RSSBytes      uint64    `json:"rss_bytes"`
	CPUPercent    float64   `json:"cpu_percent"`
	Status        string    `json:"status"`
	ProcessState  string    `json:"process_state,omitempty"`
	Goroutines    int       `json:"goroutines"`
	AllocMemMb    uint64    `json:"alloc_mem_mb"`
	NumGC         uint32    `json:"num_gc"`
	OnlineUsers   int       `json:"online_users"`
	CollectedAt   time.Time `json:"collected_at"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// MonitoringManager keeps the latest health snapshot for readers.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	startedAt   time.Time
	latestStats HealthStats
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		startedAt: time.Now(),
		latestStats: HealthStats{
			Status: StatusStarting,
		},
	}
}

// Update stores a new snapshot, filling in the Go runtime figures.
func (mm *MonitoringManager) Update(stats HealthStats) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats.Goroutines = runtime.NumGoroutine()
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC
	stats.UptimeSeconds = time.Since(mm.startedAt).Seconds()

	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()
	mm.log.Debug("Health snapshot updated",
		"rss", stats.RSSBytes, "cpu", stats.CPUPercent, "online", stats.OnlineUsers)
}

func (mm *MonitoringManager) GetLatest() HealthStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
