package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/errors"
	"traffic-lab/observability"

	"github.com/samber/lo"
)

type IReupService interface {
	ManualReup(ctx context.Context, userID, postID string) (event.ReupSuccess, error)
	SmartReup(ctx context.Context, userID string) (event.SmartReupSuccess, error)
	SetAutoReup(ctx context.Context, userID, postID string, enabled bool) (domain.Post, error)
}

// ReupService re-promotes posts, either one picked by its owner (quota gated)
// or one picked by the owner's smart reup mode (not gated).
type ReupService struct {
	log         *slog.Logger
	users       contract.IUserRepository
	posts       contract.IPostRepository
	quota       IQuotaGovernor
	distributor contract.IDistributor
	registry    contract.IRegistry
	emitter     contract.Emitter
	intN        func(n int) int
	now         func() time.Time
}

func NewReupService(
	log *slog.Logger,
	users contract.IUserRepository,
	posts contract.IPostRepository,
	quota IQuotaGovernor,
	distributor contract.IDistributor,
	registry contract.IRegistry,
	emitter contract.Emitter,
) *ReupService {
	return &ReupService{
		log:         log.With("component", "reup"),
		users:       users,
		posts:       posts,
		quota:       quota,
		distributor: distributor,
		registry:    registry,
		emitter:     emitter,
		intN:        rand.IntN,
		now:         time.Now,
	}
}

// ManualReup re-promotes one post of the requester. Ownership is checked before
// the quota so a forbidden attempt never burns a reup.
func (s *ReupService) ManualReup(ctx context.Context, userID, postID string) (event.ReupSuccess, error) {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return event.ReupSuccess{}, err
	}
	post, err := s.posts.GetPost(postID)
	if err != nil {
		return event.ReupSuccess{}, err
	}
	if !post.OwnedBy(userID) {
		return event.ReupSuccess{}, errors.ErrNotPostOwner
	}

	decision, err := s.quota.TryConsume(ctx, userID)
	if err != nil {
		return event.ReupSuccess{}, err
	}
	if !decision.Allowed {
		return event.ReupSuccess{}, &errors.QuotaExceededError{
			RetryAfter: decision.RetryAfter,
			Remaining:  decision.Remaining,
		}
	}

	post, err = s.posts.UpdatePost(post.ID, func(p *domain.Post) error {
		p.MarkReup(s.now().UTC(), false)
		return nil
	})
	if err != nil {
		return event.ReupSuccess{}, err
	}
	s.distributor.Distribute(domain.NewDistributedPost(post, user), s.emitter)

	s.log.Info("Post reupped", "postID", post.ID, "userID", userID,
		"quotaUsed", MaxReupsPerWindow-decision.Remaining)
	return event.ReupSuccess{
		PostID:         post.ID,
		Message:        fmt.Sprintf("Reup done! %d reup(s) left", decision.Remaining),
		RemainingReups: decision.Remaining,
	}, nil
}

// SmartReup picks a post according to the user's reup mode and re-promotes it.
func (s *ReupService) SmartReup(ctx context.Context, userID string) (event.SmartReupSuccess, error) {
	if err := ctx.Err(); err != nil {
		return event.SmartReupSuccess{}, err
	}
	user, err := s.users.GetUser(userID)
	if err != nil {
		return event.SmartReupSuccess{}, err
	}
	settings := user.ReupSettings.Effective()

	owned, err := s.posts.ListByAuthor(userID)
	if err != nil {
		return event.SmartReupSuccess{}, err
	}
	eligible := lo.Filter(owned, func(p domain.Post, _ int) bool { return domain.Eligible(p) })

	var post domain.Post
	var recipient string
	switch settings.Mode {
	case domain.ReupModeSpecific:
		if len(settings.SpecificPostIDs) == 0 {
			return event.SmartReupSuccess{}, errors.ErrEmptySpecificSet
		}
		eligible = lo.Filter(eligible, func(p domain.Post, _ int) bool {
			return lo.Contains(settings.SpecificPostIDs, p.ID)
		})
		if post, err = leastViewed(eligible); err != nil {
			return event.SmartReupSuccess{}, err
		}
	case domain.ReupModeOneUser:
		if len(eligible) == 0 {
			return event.SmartReupSuccess{}, errors.ErrNoEligiblePost
		}
		post = eligible[s.intN(len(eligible))]
		if recipient, err = s.pickOtherUser(userID); err != nil {
			return event.SmartReupSuccess{}, err
		}
	default:
		if post, err = leastViewed(eligible); err != nil {
			return event.SmartReupSuccess{}, err
		}
	}

	post, err = s.posts.UpdatePost(post.ID, func(p *domain.Post) error {
		p.MarkReup(s.now().UTC(), true)
		return nil
	})
	if err != nil {
		return event.SmartReupSuccess{}, err
	}

	distributed := domain.NewDistributedPost(post, user)
	if settings.Mode == domain.ReupModeOneUser {
		s.emitter.ToUser(recipient, event.NewPost(distributed))
	} else {
		s.distributor.Distribute(distributed, s.emitter)
	}
	observability.ReupDecisionsTotal.WithLabelValues("smart", string(settings.Mode)).Inc()

	s.log.Info("Smart reup", "postID", post.ID, "userID", userID, "mode", settings.Mode,
		"currentView", post.CurrentView, "maxView", post.MaxView, "recipient", recipient)
	return event.SmartReupSuccess{
		PostID:      post.ID,
		PostTitle:   post.Title,
		CurrentView: post.CurrentView,
		MaxView:     post.MaxView,
		Mode:        settings.Mode,
		Recipient:   recipient,
		Message: fmt.Sprintf("Auto-reupped (%s): %q (%d/%d views)",
			settings.Mode, post.Title, post.CurrentView, post.MaxView),
	}, nil
}

// SetAutoReup lets the owner opt a post in or out of smart reup.
func (s *ReupService) SetAutoReup(ctx context.Context, userID, postID string, enabled bool) (domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return domain.Post{}, err
	}
	return s.posts.UpdatePost(postID, func(post *domain.Post) error {
		if !post.OwnedBy(userID) {
			return fmt.Errorf("%w: only post owner can change auto reup", errors.ErrForbidden)
		}
		post.AutoReupEnabled = lo.ToPtr(enabled)
		return nil
	})
}

// pickOtherUser draws uniformly among the distinct connected identities other than userID.
func (s *ReupService) pickOtherUser(userID string) (string, error) {
	others := lo.Uniq(lo.FilterMap(s.registry.AllConnected(), func(c domain.Connection, _ int) (string, bool) {
		return c.UserID, c.UserID != userID
	}))
	if len(others) == 0 {
		return "", errors.ErrNoOnlinePeer
	}
	sort.Strings(others)
	return others[s.intN(len(others))], nil
}

// leastViewed returns the post with the lowest currentView, newest createdAt on ties.
func leastViewed(posts []domain.Post) (domain.Post, error) {
	if len(posts) == 0 {
		return domain.Post{}, errors.ErrNoEligiblePost
	}
	return lo.MinBy(posts, func(a, b domain.Post) bool {
		if a.CurrentView != b.CurrentView {
			return a.CurrentView < b.CurrentView
		}
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}
