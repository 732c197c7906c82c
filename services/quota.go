package services

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"
	"traffic-lab/observability"
	"traffic-lab/runtime"
)

const (
	ReupWindow        = 5 * time.Minute
	MaxReupsPerWindow = 2
)

// Decision is the outcome of a quota check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type IQuotaGovernor interface {
	TryConsume(ctx context.Context, userID string) (Decision, error)
}

// QuotaGovernor is a fixed window limiter on manual reups, stored on the user record.
// Load, check and persist run under a per-identity lock, and the persist
// happens before the caller is allowed to touch the post.
type QuotaGovernor struct {
	log   *slog.Logger
	users contract.IUserRepository
	locks *runtime.KeyLock
	now   func() time.Time
}

func NewQuotaGovernor(log *slog.Logger, users contract.IUserRepository, locks *runtime.KeyLock) *QuotaGovernor {
	return &QuotaGovernor{
		log:   log.With("component", "reup_quota"),
		users: users,
		locks: locks,
		now:   time.Now,
	}
}

func (g *QuotaGovernor) TryConsume(ctx context.Context, userID string) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	unlock := g.locks.Lock(userID)
	defer unlock()

	now := g.now()
	var decision Decision
	_, err := g.users.UpdateUser(userID, func(user *domain.User) error {
		decision = consume(&user.ReupQuota, now)
		if !decision.Allowed {
			return &errors.QuotaExceededError{RetryAfter: decision.RetryAfter, Remaining: decision.Remaining}
		}
		return nil
	})

	var quotaErr *errors.QuotaExceededError
	switch {
	case stderrors.As(err, &quotaErr):
		observability.ReupDecisionsTotal.WithLabelValues("manual", "denied").Inc()
		g.log.Debug("Reup quota exhausted", "userID", userID, "retryAfter", decision.RetryAfter)
		return decision, nil
	case err != nil:
		return Decision{}, err
	}
	observability.ReupDecisionsTotal.WithLabelValues("manual", "allowed").Inc()
	return decision, nil
}

// consume applies the window rules to the quota in place.
func consume(quota *domain.ReupQuota, now time.Time) Decision {
	if quota.WindowStart == nil || now.Sub(*quota.WindowStart) >= ReupWindow {
		quota.WindowStart = &now
		quota.Count = 0
	}
	if quota.Count >= MaxReupsPerWindow {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: ReupWindow - now.Sub(*quota.WindowStart),
		}
	}
	quota.Count++
	return Decision{Allowed: true, Remaining: MaxReupsPerWindow - quota.Count}
}
