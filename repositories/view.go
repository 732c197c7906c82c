package repositories

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.IViewRepository = (*ViewRepository)(nil)

// Keys:
//
//	view:{id}                              -> ViewingSession
//	view_post:{postID}:{startPadded}:{id}  -> empty, per post listing index
type ViewRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewViewRepository(db *badger.DB, log *slog.Logger) *ViewRepository {
	return &ViewRepository{db: db, log: log}
}

func viewKey(id string) []byte {
	return []byte("view:" + id)
}

func viewPostPrefix(postID string) []byte {
	return []byte("view_post:" + postID + ":")
}

func (v ViewRepository) CreateView(view domain.ViewingSession) (domain.ViewingSession, error) {
	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	if view.StartTime.IsZero() {
		view.StartTime = time.Now().UTC()
	}
	indexKey := string(viewPostPrefix(view.PostID)) + paddedTime(view.StartTime) + ":" + view.ID
	err := v.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, viewKey(view.ID), view); err != nil {
			return err
		}
		return txn.Set([]byte(indexKey), nil)
	})
	return view, err
}

func (v ViewRepository) GetView(id string) (domain.ViewingSession, error) {
	var view domain.ViewingSession
	err := v.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, viewKey(id), errors.ErrViewNotFound, &view)
	})
	return view, err
}

// EndView closes the session and moves the awarded points from the author to the viewer.
// Reading the session, the terminal check and both balance writes share one transaction,
// so two concurrent ends cannot both transfer: the loser conflicts, replays and sees the session ended.
func (v ViewRepository) EndView(id, authorID string, now time.Time, policy func(float64) int) (
	domain.ViewingSession, domain.Transfer, error) {
	var view domain.ViewingSession
	var transfer domain.Transfer

	err := updateWithRetry(v.db, func(txn *badger.Txn) error {
		view, transfer = domain.ViewingSession{}, domain.Transfer{}
		if err := getJSON(txn, viewKey(id), errors.ErrViewNotFound, &view); err != nil {
			return err
		}
		transfer.ViewerID = view.ViewerID
		transfer.AuthorID = authorID
		if view.Ended() {
			transfer.AlreadyEnded = true
			return nil
		}

		transfer.Duration = view.Close(now, 0)
		points := policy(transfer.Duration)
		view.PointsAwarded = points
		transfer.Points = points

		if points > 0 {
			viewerTotal, authorTotal, err := movePoints(txn, view.ViewerID, authorID, points)
			if err != nil {
				return err
			}
			transfer.ViewerTotal = viewerTotal
			transfer.AuthorTotal = authorTotal
		}
		return setJSON(txn, viewKey(id), view)
	})
	if err != nil {
		return domain.ViewingSession{}, domain.Transfer{}, err
	}
	return view, transfer, nil
}

// movePoints credits the viewer and debits the author by the same amount.
// Balances are not floored, an author may go negative.
func movePoints(txn *badger.Txn, viewerID, authorID string, points int) (int, int, error) {
	var viewer domain.User
	if err := getJSON(txn, userKey(viewerID), errors.ErrUserNotFound, &viewer); err != nil {
		return 0, 0, err
	}
	if viewerID == authorID {
		return viewer.Points, viewer.Points, nil
	}
	var author domain.User
	if err := getJSON(txn, userKey(authorID), errors.ErrUserNotFound, &author); err != nil {
		return 0, 0, err
	}
	now := time.Now().UTC()
	viewer.Points += points
	viewer.UpdatedAt = now
	author.Points -= points
	author.UpdatedAt = now
	if err := setJSON(txn, userKey(viewerID), viewer); err != nil {
		return 0, 0, err
	}
	if err := setJSON(txn, userKey(authorID), author); err != nil {
		return 0, 0, err
	}
	return viewer.Points, author.Points, nil
}

// ListByPost pages over the sessions of a post, newest first, and returns the total count.
func (v ViewRepository) ListByPost(postID string, skip, limit int) ([]domain.ViewingSession, int, error) {
	var views []domain.ViewingSession
	var total int
	err := v.db.View(func(txn *badger.Txn) error {
		suffixes := collectKeys(txn, viewPostPrefix(postID), true)
		total = len(suffixes)
		for _, suffix := range lo.Slice(suffixes, skip, skip+limit) {
			var view domain.ViewingSession
			if err := getJSON(txn, viewKey(idFromIndex(suffix)), errors.ErrViewNotFound, &view); err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	return views, total, err
}

// LinkStats counts sessions per link, most viewed first.
func (v ViewRepository) LinkStats(postID string) ([]domain.LinkStat, error) {
	counts := make(map[string]int)
	err := v.db.View(func(txn *badger.Txn) error {
		for _, suffix := range collectKeys(txn, viewPostPrefix(postID), false) {
			var view domain.ViewingSession
			if err := getJSON(txn, viewKey(idFromIndex(suffix)), errors.ErrViewNotFound, &view); err != nil {
				return err
			}
			counts[view.Link]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	stats := lo.MapToSlice(counts, func(link string, count int) domain.LinkStat {
		return domain.LinkStat{Link: link, Count: count}
	})
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Link < stats[j].Link
	})
	return stats, nil
}

// idFromIndex takes the trailing id of "{padded}:{id}".
func idFromIndex(suffix string) string {
	return suffix[strings.LastIndex(suffix, ":")+1:]
}
