package runtime

import (
	"time"

	"traffic-lab/contract"
)

var (
	_ contract.Scheduler = TimerScheduler{}
	_ contract.Task      = (*timerTask)(nil)
)

// TimerScheduler runs callbacks on their own goroutine once the delay elapses.
type TimerScheduler struct{}

func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) AfterFunc(delay time.Duration, fn func()) contract.Task {
	return &timerTask{timer: time.AfterFunc(delay, fn)}
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() bool {
	return t.timer.Stop()
}
