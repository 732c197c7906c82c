package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/domain/points"
	"traffic-lab/errors"
	"traffic-lab/observability"
)

type IViewTracker interface {
	Start(ctx context.Context, viewerID, postID, link string) (domain.ViewingSession, error)
	End(ctx context.Context, viewerID, viewID, postID string) (int, error)
}

// ViewTracker drives a viewing session from start to end and settles the points.
type ViewTracker struct {
	log     *slog.Logger
	posts   contract.IPostRepository
	views   contract.IViewRepository
	emitter contract.Emitter
	now     func() time.Time
}

func NewViewTracker(log *slog.Logger, posts contract.IPostRepository,
	views contract.IViewRepository, emitter contract.Emitter) *ViewTracker {
	return &ViewTracker{
		log:     log.With("component", "view_tracker"),
		posts:   posts,
		views:   views,
		emitter: emitter,
		now:     time.Now,
	}
}

// Start opens a session, bumps the post view count and tells everybody the count changed.
func (t *ViewTracker) Start(ctx context.Context, viewerID, postID, link string) (domain.ViewingSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.ViewingSession{}, err
	}
	if viewerID == "" || postID == "" {
		return domain.ViewingSession{}, fmt.Errorf("%w: userId and postId are required", errors.ErrInvalidInput)
	}
	if _, err := t.posts.GetPost(postID); err != nil {
		return domain.ViewingSession{}, err
	}

	view, err := t.views.CreateView(domain.ViewingSession{
		ViewerID:  viewerID,
		PostID:    postID,
		Link:      link,
		StartTime: t.now().UTC(),
	})
	if err != nil {
		return domain.ViewingSession{}, err
	}
	if _, err = t.posts.IncrementView(postID); err != nil {
		return domain.ViewingSession{}, err
	}

	t.emitter.Broadcast(event.NewPostViewUpdate(postID, event.ViewIncrement))
	t.log.Debug("View started", "viewID", view.ID, "viewerID", viewerID, "postID", postID)
	return view, nil
}

// End closes the session of viewerID and returns the points earned.
// The author debited is always the one of the post the session was opened on,
// postID is optional and must match it when given.
// A session that already ended yields 0 and moves nothing.
func (t *ViewTracker) End(ctx context.Context, viewerID, viewID, postID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if viewID == "" {
		return 0, fmt.Errorf("%w: viewId is required", errors.ErrInvalidInput)
	}
	view, err := t.views.GetView(viewID)
	if err != nil {
		return 0, err
	}
	if view.ViewerID != viewerID {
		return 0, fmt.Errorf("%w: only the viewer can end this view", errors.ErrForbidden)
	}
	if postID != "" && postID != view.PostID {
		return 0, fmt.Errorf("%w: postId does not match the view", errors.ErrInvalidInput)
	}
	postID = view.PostID
	post, err := t.posts.GetPost(postID)
	if err != nil {
		return 0, err
	}

	_, transfer, err := t.views.EndView(viewID, post.AuthorID, t.now().UTC(), points.ForView)
	if err != nil {
		return 0, err
	}
	if transfer.AlreadyEnded {
		t.log.Debug("View already ended, nothing to transfer", "viewID", viewID)
		return 0, nil
	}

	if transfer.Points > 0 {
		t.emitter.ToUser(transfer.ViewerID, event.NewPointsAwarded(transfer, postID))
		t.emitter.ToUser(transfer.AuthorID, event.NewPointsDeducted(transfer, postID))
		observability.PointsTransferredTotal.WithLabelValues("view").Add(float64(transfer.Points))
		t.log.Info("Points transferred",
			"viewerID", transfer.ViewerID, "authorID", transfer.AuthorID,
			"points", transfer.Points, "duration", transfer.Duration)
	}
	t.emitter.Broadcast(event.NewPostViewUpdate(postID, event.ViewUpdate))
	return transfer.Points, nil
}
