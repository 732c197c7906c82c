package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"traffic-lab/contract"
	"traffic-lab/observability"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker samples the server process and the online count into the MonitoringManager.
type HeartbeatWorker struct {
	log        *slog.Logger
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	monitoring *observability.MonitoringManager,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:        log,
		registry:   registry,
		monitoring: monitoring,
		interval:   interval,
	}
}

// Run collects a snapshot right away, then every interval.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	w.collect(p)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.collect(p)
		}
	}
}

// collect always pushes a snapshot so /health never serves a stale online count,
// a failed process sample is reported as degraded.
func (w *HeartbeatWorker) collect(p *process.Process) {
	stats := observability.HealthStats{
		Status:      observability.StatusOK,
		OnlineUsers: w.registry.Stats().TotalOnline,
		CollectedAt: time.Now().UTC(),
	}

	sample, err := sampleProcess(p)
	if err != nil {
		w.log.Error("Failed to sample server process", "err", err)
		stats.Status = observability.StatusDegraded
	} else {
		stats.RSSBytes = sample.rss
		stats.CPUPercent = sample.cpu
		stats.ProcessState = sample.state
	}
	w.monitoring.Update(stats)
}

type processSample struct {
	rss   uint64
	cpu   float64
	state string
}

func sampleProcess(p *process.Process) (processSample, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return processSample{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return processSample{}, err
	}
	state, err := p.Status()
	if err != nil {
		return processSample{}, err
	}
	return processSample{rss: memInfo.RSS, cpu: cpuPercent, state: state}, nil
}
