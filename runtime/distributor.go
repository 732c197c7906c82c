package runtime

import (
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/observability"
)

var _ contract.IDistributor = (*Distributor)(nil)

// Distributor staggers the delivery of a post over the connection waves.
//
// Delivery is at most once per wave per call, with no retry and no dedupe
// against earlier distributions of the same post. Scheduled steps are never
// cancelled by the distributor itself: the returned tasks are the only way to
// do so.
type Distributor struct {
	log       *slog.Logger
	registry  contract.IRegistry
	config    *ConfigProvider
	scheduler contract.Scheduler
}

func NewDistributor(log *slog.Logger, registry contract.IRegistry,
	config *ConfigProvider, scheduler contract.Scheduler) *Distributor {
	return &Distributor{
		log:       log.With("component", "distributor"),
		registry:  registry,
		config:    config,
		scheduler: scheduler,
	}
}

// Distribute sends the post to everybody, either at once or wave by wave.
// The config is read once so a concurrent reload cannot split the call.
func (d *Distributor) Distribute(post domain.DistributedPost, emitter contract.Emitter) []contract.Task {
	cfg := d.config.Get()
	newPost := event.NewPost(post)

	if !cfg.Enabled {
		emitter.Broadcast(newPost)
		observability.DistributionsTotal.WithLabelValues("broadcast").Inc()
		d.log.Info("Distribution disabled, broadcasting post to all users immediately", "postID", post.ID)
		return nil
	}

	d.log.Info("Distributing post across waves",
		"postID", post.ID, "waveCount", cfg.WaveCount, "waveDelay", cfg.WaveDelay)
	observability.DistributionsTotal.WithLabelValues("waves").Inc()

	tasks := make([]contract.Task, 0, cfg.WaveCount)
	for wave := 1; wave <= cfg.WaveCount; wave++ {
		delay := time.Duration(wave-1) * cfg.WaveDelay
		tasks = append(tasks, d.scheduler.AfterFunc(delay, func() {
			d.deliverWave(wave, post.ID, newPost, emitter)
		}))
	}
	return tasks
}

// deliverWave resolves membership when it fires, not when it was scheduled.
func (d *Distributor) deliverWave(wave int, postID string, e event.Outbound, emitter contract.Emitter) {
	members := d.registry.MembersOfWave(wave)
	if len(members) == 0 {
		d.log.Debug("Wave has no online users, skipping", "wave", wave, "postID", postID)
		return
	}
	d.log.Debug("Emitting post to wave", "wave", wave, "postID", postID, "users", len(members))
	for _, userID := range members {
		emitter.ToUser(userID, e)
	}
	observability.WaveDeliveriesTotal.WithLabelValues(observability.WaveLabel(wave)).Add(float64(len(members)))
}

// ReloadConfig replaces the distribution config, in-flight waves keep their captured values.
func (d *Distributor) ReloadConfig() (domain.DistributionConfig, error) {
	return d.config.Reload()
}

func (d *Distributor) Config() domain.DistributionConfig {
	return d.config.Get()
}
