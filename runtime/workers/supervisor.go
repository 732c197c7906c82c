package workers

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"traffic-lab/contract"
	"traffic-lab/errors"
	"traffic-lab/observability"
)

const (
	defaultRestartDelay    = 200 * time.Millisecond
	defaultMaxRestartDelay = 10 * time.Second
)

var _ contract.ISupervisor = (*Supervisor)(nil)

// Supervisor runs background workers under one cancellable context.
// A worker returning an error or panicking is restarted with a doubling delay,
// a worker returning nil is done for good.
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	workers         []contract.Worker
	restartDelay    time.Duration
	maxRestartDelay time.Duration
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{
		wg:              &sync.WaitGroup{},
		log:             log.With("component", "supervisor"),
		restartDelay:    defaultRestartDelay,
		maxRestartDelay: defaultMaxRestartDelay,
	}
}

// WithRestartDelay sets the first restart delay and its cap.
func (s *Supervisor) WithRestartDelay(initial, ceiling time.Duration) *Supervisor {
	s.restartDelay = initial
	s.maxRestartDelay = ceiling
	return s
}

// Run starts every added worker and blocks until all of them returned.
// If the parent cancels, we Cancel. If WE call s.Cancel(), only our children Cancel.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs one worker in its own goroutine until it finishes or ctx is done.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()
		delay := s.restartDelay

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			startedAt := time.Now()
			err := s.runOnce(ctx, worker, workerName)
			if err == nil {
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			// A worker that stayed up longer than the cap was healthy, its next crash starts over
			if time.Since(startedAt) > s.maxRestartDelay {
				delay = s.restartDelay
			}
			observability.WorkerRestartsTotal.WithLabelValues(workerName, restartReason(err)).Inc()
			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err, "in", delay)

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, s.maxRestartDelay)
		}
	}()
}

func (s *Supervisor) runOnce(ctx context.Context, worker contract.Worker, workerName string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Worker panicked", "name", workerName, "panic", r)
			err = errors.ErrWorkerPanic
		}
	}()
	return worker.Run(ctx)
}

func restartReason(err error) string {
	if stderrors.Is(err, errors.ErrWorkerPanic) {
		return "panic"
	}
	return "error"
}

// Stop cancels the supervised context, Run returns once every worker is out.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
