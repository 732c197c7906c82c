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

	"github.com/go-playground/validator/v10"
)

const (
	DefaultClickPageSize = 20
	MaxClickPageSize     = 100
)

type StartClickRequest struct {
	ViewerID  string `json:"-" validate:"required"`
	PostID    string `json:"postId" validate:"required"`
	ParentURL string `json:"parentUrl" validate:"required"`
	ChildURL  string `json:"childUrl" validate:"required"`
	Keyword   string `json:"keyword" validate:"required"`
	ViewID    string `json:"viewId" validate:"required"`
}

type ClickPage struct {
	History     []domain.ClickEvent `json:"history"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
	TotalClicks int                 `json:"totalClicks"`
}

type IClickTracker interface {
	StartClick(ctx context.Context, request StartClickRequest) (domain.ClickEvent, error)
	EndClick(ctx context.Context, clickID string) (int, error)
	ListClicks(ctx context.Context, page, limit int) (ClickPage, error)
}

// ClickTracker records layer-2 clicks nested in a view and credits the viewer.
type ClickTracker struct {
	log      *slog.Logger
	clicks   contract.IClickRepository
	emitter  contract.Emitter
	validate *validator.Validate
	intN     points.IntN
	now      func() time.Time
}

func NewClickTracker(log *slog.Logger, clicks contract.IClickRepository, emitter contract.Emitter) *ClickTracker {
	return &ClickTracker{
		log:      log.With("component", "click_tracker"),
		clicks:   clicks,
		emitter:  emitter,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (t *ClickTracker) StartClick(ctx context.Context, request StartClickRequest) (domain.ClickEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClickEvent{}, err
	}
	if err := t.validate.Struct(request); err != nil {
		return domain.ClickEvent{}, fmt.Errorf("%w: missing required fields: %v", errors.ErrInvalidInput, err)
	}
	return t.clicks.CreateClick(domain.ClickEvent{
		ViewerID:  request.ViewerID,
		PostID:    request.PostID,
		ParentURL: request.ParentURL,
		ChildURL:  request.ChildURL,
		Keyword:   request.Keyword,
		ViewID:    request.ViewID,
		StartTime: t.now().UTC(),
	})
}

// EndClick settles the click with the layer-2 policy, a second call returns 0.
func (t *ClickTracker) EndClick(ctx context.Context, clickID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if clickID == "" {
		return 0, fmt.Errorf("%w: clickId is required", errors.ErrInvalidInput)
	}
	click, transfer, err := t.clicks.EndClick(clickID, t.now().UTC(), func(d float64) int {
		return points.ForClick(d, t.intN)
	})
	if err != nil {
		return 0, err
	}
	if transfer.AlreadyEnded {
		return 0, nil
	}
	if transfer.Points > 0 {
		t.emitter.ToUser(transfer.ViewerID, event.NewPointsAwarded(transfer, click.PostID))
		observability.PointsTransferredTotal.WithLabelValues("click").Add(float64(transfer.Points))
	}
	t.log.Debug("Click ended", "clickID", clickID, "points", transfer.Points, "duration", transfer.Duration)
	return transfer.Points, nil
}

// ListClicks is 1-indexed, out of range values fall back to the defaults.
func (t *ClickTracker) ListClicks(ctx context.Context, page, limit int) (ClickPage, error) {
	if err := ctx.Err(); err != nil {
		return ClickPage{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxClickPageSize {
		limit = DefaultClickPageSize
	}
	clicks, total, err := t.clicks.ListClicks((page-1)*limit, limit)
	if err != nil {
		return ClickPage{}, err
	}
	if clicks == nil {
		clicks = []domain.ClickEvent{}
	}
	return ClickPage{
		History:     clicks,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
		TotalClicks: total,
	}, nil
}
