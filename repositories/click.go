package repositories

import (
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.IClickRepository = (*ClickRepository)(nil)

// Keys:
//
//	click:{id}                    -> ClickEvent
//	click_at:{startPadded}:{id}   -> empty, global listing index
type ClickRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewClickRepository(db *badger.DB, log *slog.Logger) *ClickRepository {
	return &ClickRepository{db: db, log: log}
}

const clickAtPrefix = "click_at:"

func clickKey(id string) []byte {
	return []byte("click:" + id)
}

func (c ClickRepository) CreateClick(click domain.ClickEvent) (domain.ClickEvent, error) {
	if click.ID == "" {
		click.ID = uuid.NewString()
	}
	if click.StartTime.IsZero() {
		click.StartTime = time.Now().UTC()
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, clickKey(click.ID), click); err != nil {
			return err
		}
		return txn.Set([]byte(clickAtPrefix+paddedTime(click.StartTime)+":"+click.ID), nil)
	})
	return click, err
}

// EndClick closes the click and credits the viewer only, nobody is debited for layer-2 clicks.
func (c ClickRepository) EndClick(id string, now time.Time, policy func(float64) int) (
	domain.ClickEvent, domain.Transfer, error) {
	var click domain.ClickEvent
	var transfer domain.Transfer

	err := updateWithRetry(c.db, func(txn *badger.Txn) error {
		click, transfer = domain.ClickEvent{}, domain.Transfer{}
		if err := getJSON(txn, clickKey(id), errors.ErrClickNotFound, &click); err != nil {
			return err
		}
		transfer.ViewerID = click.ViewerID
		if click.Ended() {
			transfer.AlreadyEnded = true
			return nil
		}

		transfer.Duration = click.Close(now, 0)
		points := policy(transfer.Duration)
		click.PointsAwarded = points
		transfer.Points = points

		if points > 0 {
			var viewer domain.User
			if err := getJSON(txn, userKey(click.ViewerID), errors.ErrUserNotFound, &viewer); err != nil {
				return err
			}
			viewer.Points += points
			viewer.UpdatedAt = now
			if err := setJSON(txn, userKey(viewer.ID), viewer); err != nil {
				return err
			}
			transfer.ViewerTotal = viewer.Points
		}
		return setJSON(txn, clickKey(id), click)
	})
	if err != nil {
		return domain.ClickEvent{}, domain.Transfer{}, err
	}
	return click, transfer, nil
}

// ListClicks pages over every click, newest first, with the total count.
func (c ClickRepository) ListClicks(skip, limit int) ([]domain.ClickEvent, int, error) {
	var clicks []domain.ClickEvent
	var total int
	err := c.db.View(func(txn *badger.Txn) error {
		suffixes := collectKeys(txn, []byte(clickAtPrefix), true)
		total = len(suffixes)
		for _, suffix := range lo.Slice(suffixes, skip, skip+limit) {
			var click domain.ClickEvent
			if err := getJSON(txn, clickKey(idFromIndex(suffix)), errors.ErrClickNotFound, &click); err != nil {
				return err
			}
			clicks = append(clicks, click)
		}
		return nil
	})
	return clicks, total, err
}
