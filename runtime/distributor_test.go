package runtime

import (
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualScheduler records callbacks so tests decide when each one fires.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (t *manualTask) Cancel() bool {
	if t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	return true
}

func (s *manualScheduler) AfterFunc(delay time.Duration, fn func()) contract.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &manualTask{delay: delay, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

func (s *manualScheduler) delays() []time.Duration {
	var delays []time.Duration
	for _, task := range s.tasks {
		delays = append(delays, task.delay)
	}
	return delays
}

// fire runs the task scheduled at the given index unless it was cancelled.
func (s *manualScheduler) fire(i int) {
	task := s.tasks[i]
	if task.cancelled || task.fired {
		return
	}
	task.fired = true
	task.fn()
}

type staticSource struct {
	cfg domain.DistributionConfig
	err error
}

func (s staticSource) LoadDistributionConfig() (domain.DistributionConfig, error) {
	return s.cfg, s.err
}

func newTestDistributor(t *testing.T, cfg domain.DistributionConfig) (*Distributor, *Registry, *manualScheduler) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	provider := NewConfigProvider(log, staticSource{cfg: cfg})
	_, err := provider.Reload()
	require.NoError(t, err)
	registry := NewRegistry(log, provider.WaveCount)
	scheduler := &manualScheduler{}
	return NewDistributor(log, registry, provider, scheduler), registry, scheduler
}

func samplePost() domain.DistributedPost {
	return domain.NewDistributedPost(domain.Post{
		ID:       uuid.NewString(),
		AuthorID: uuid.NewString(),
		Title:    "My site",
		MaxView:  domain.DefaultMaxView,
	}, domain.User{ID: uuid.NewString()})
}

func TestDistributor_Disabled_Broadcasts_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)

	// Given distribution is disabled
	distributor, registry, scheduler := newTestDistributor(t, domain.DistributionConfig{
		Enabled: false, WaveCount: 3, WaveDelay: time.Second,
	})
	registry.Register(uuid.NewString(), uuid.New())
	post := samplePost()

	// Then the post is broadcast exactly once and nobody is targeted
	emitter.EXPECT().Broadcast(event.NewPost(post)).Times(1)
	emitter.EXPECT().ToUser(gomock.Any(), gomock.Any()).Times(0)

	// When
	tasks := distributor.Distribute(post, emitter)

	req.Empty(tasks)
	req.Empty(scheduler.tasks)
}

func TestDistributor_Enabled_Schedules_Waves(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)

	// Given 3 waves 100ms apart
	distributor, registry, scheduler := newTestDistributor(t, domain.DistributionConfig{
		Enabled: true, WaveCount: 3, WaveDelay: 100 * time.Millisecond,
	})
	u1, u2 := uuid.NewString(), uuid.NewString()
	registry.Register(u1, uuid.New()) // wave 1
	registry.Register(u2, uuid.New()) // wave 2
	post := samplePost()
	newPost := event.NewPost(post)

	// When
	tasks := distributor.Distribute(post, emitter)

	// Then one step per wave at (w-1)*delay
	req.Len(tasks, 3)
	req.Equal([]time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}, scheduler.delays())

	// And wave 1 reaches u1 only
	emitter.EXPECT().ToUser(u1, newPost).Times(1)
	scheduler.fire(0)

	// And wave 2 reaches u2 only
	emitter.EXPECT().ToUser(u2, newPost).Times(1)
	scheduler.fire(1)

	// And wave 3 is empty, nothing is emitted
	scheduler.fire(2)
}

func TestDistributor_Membership_Is_Read_When_Wave_Fires(t *testing.T) {
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)

	distributor, registry, scheduler := newTestDistributor(t, domain.DistributionConfig{
		Enabled: true, WaveCount: 2, WaveDelay: time.Second,
	})
	early := uuid.NewString()
	earlyHandle := uuid.New()
	registry.Register(early, earlyHandle) // wave 1
	post := samplePost()
	newPost := event.NewPost(post)

	// Given the distribution was scheduled
	distributor.Distribute(post, emitter)

	// When the wave 1 member leaves and two users join before the steps fire
	registry.Unregister(earlyHandle)
	late1, late2 := uuid.NewString(), uuid.NewString()
	registry.Register(late1, uuid.New()) // wave 2
	registry.Register(late2, uuid.New()) // wave 1

	// Then the current members receive the post, not the ones present at scheduling
	emitter.EXPECT().ToUser(late2, newPost).Times(1)
	emitter.EXPECT().ToUser(late1, newPost).Times(1)
	emitter.EXPECT().ToUser(early, gomock.Any()).Times(0)
	scheduler.fire(0)
	scheduler.fire(1)
}

func TestDistributor_Cancelled_Tasks_Do_Not_Deliver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)

	distributor, registry, scheduler := newTestDistributor(t, domain.DistributionConfig{
		Enabled: true, WaveCount: 2, WaveDelay: time.Second,
	})
	registry.Register(uuid.NewString(), uuid.New())
	registry.Register(uuid.NewString(), uuid.New())

	tasks := distributor.Distribute(samplePost(), emitter)
	for _, task := range tasks {
		req.True(task.Cancel())
	}

	emitter.EXPECT().ToUser(gomock.Any(), gomock.Any()).Times(0)
	scheduler.fire(0)
	scheduler.fire(1)
}

func TestDistributor_Uses_Snapshot_Of_Config(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	source := &switchingSource{cfg: domain.DistributionConfig{Enabled: true, WaveCount: 2, WaveDelay: time.Second}}
	provider := NewConfigProvider(log, source)
	_, err := provider.Reload()
	req.NoError(err)
	scheduler := &manualScheduler{}
	distributor := NewDistributor(log, NewRegistry(log, provider.WaveCount), provider, scheduler)

	// Given a distribution started with 2 waves
	distributor.Distribute(samplePost(), emitter)

	// When the config is reloaded to 4 waves
	source.cfg = domain.DistributionConfig{Enabled: true, WaveCount: 4, WaveDelay: time.Second}
	cfg, err := distributor.ReloadConfig()
	req.NoError(err)
	req.Equal(4, cfg.WaveCount)

	// Then the first call kept its 2 steps
	req.Len(scheduler.tasks, 2)

	// And a new call uses the reloaded config
	distributor.Distribute(samplePost(), emitter)
	req.Len(scheduler.tasks, 6)
	req.Equal(4, distributor.Config().WaveCount)
}

type switchingSource struct {
	cfg domain.DistributionConfig
}

func (s *switchingSource) LoadDistributionConfig() (domain.DistributionConfig, error) {
	return s.cfg, nil
}

func TestTimerScheduler_Runs_And_Cancels(t *testing.T) {
	req := require.New(t)
	scheduler := NewTimerScheduler()

	var mu sync.Mutex
	var fired []int
	done := make(chan struct{})

	scheduler.AfterFunc(10*time.Millisecond, func() {
		mu.Lock()
		fired = append(fired, 1)
		mu.Unlock()
		close(done)
	})
	cancelled := scheduler.AfterFunc(time.Hour, func() {
		mu.Lock()
		fired = append(fired, 2)
		mu.Unlock()
	})
	req.True(cancelled.Cancel())
	req.False(cancelled.Cancel())

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("scheduled callback never ran")
	}

	mu.Lock()
	defer mu.Unlock()
	sort.Ints(fired)
	req.Equal([]int{1}, fired)
}
