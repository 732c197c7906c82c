package repositories

import (
	"log/slog"
	"sort"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var _ contract.IPostRepository = (*PostRepository)(nil)

// Keys:
//
//	post:{id}                     -> Post
//	post_author:{authorID}:{id}   -> empty, ownership index
type PostRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewPostRepository(db *badger.DB, log *slog.Logger) *PostRepository {
	return &PostRepository{db: db, log: log, now: time.Now}
}

func postKey(id string) []byte {
	return []byte("post:" + id)
}

func postAuthorPrefix(authorID string) []byte {
	return []byte("post_author:" + authorID + ":")
}

// CreatePost assigns an id when missing and fills the view counters defaults.
func (p PostRepository) CreatePost(post domain.Post) (domain.Post, error) {
	now := p.now().UTC()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.MaxView <= 0 {
		post.MaxView = domain.DefaultMaxView
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	post.LastDistributedAt = now

	err := p.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, postKey(post.ID), post); err != nil {
			return err
		}
		return txn.Set(append(postAuthorPrefix(post.AuthorID), post.ID...), nil)
	})
	if err != nil {
		return domain.Post{}, err
	}
	p.log.Debug("Post created", "postID", post.ID, "authorID", post.AuthorID)
	return post, nil
}

func (p PostRepository) GetPost(id string) (domain.Post, error) {
	var post domain.Post
	err := p.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, postKey(id), errors.ErrPostNotFound, &post)
	})
	return post, err
}

// UpdatePost applies mutate to the stored post in one transaction, replayed on conflict,
// so counters written concurrently (IncrementView) are never lost. Id and author cannot change.
func (p PostRepository) UpdatePost(id string, mutate func(post *domain.Post) error) (domain.Post, error) {
	var post domain.Post
	err := updateWithRetry(p.db, func(txn *badger.Txn) error {
		post = domain.Post{}
		if err := getJSON(txn, postKey(id), errors.ErrPostNotFound, &post); err != nil {
			return err
		}
		authorID := post.AuthorID
		if err := mutate(&post); err != nil {
			return err
		}
		post.ID = id
		post.AuthorID = authorID
		post.UpdatedAt = p.now().UTC()
		return setJSON(txn, postKey(id), post)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// IncrementView bumps currentView by one inside a transaction, concurrent starts never lose a count.
func (p PostRepository) IncrementView(id string) (domain.Post, error) {
	var post domain.Post
	err := updateWithRetry(p.db, func(txn *badger.Txn) error {
		post = domain.Post{}
		if err := getJSON(txn, postKey(id), errors.ErrPostNotFound, &post); err != nil {
			return err
		}
		post.CurrentView++
		return setJSON(txn, postKey(id), post)
	})
	return post, err
}

// ListByAuthor returns the author's posts, newest createdAt first.
func (p PostRepository) ListByAuthor(authorID string) ([]domain.Post, error) {
	var posts []domain.Post
	err := p.db.View(func(txn *badger.Txn) error {
		for _, id := range collectKeys(txn, postAuthorPrefix(authorID), false) {
			var post domain.Post
			if err := getJSON(txn, postKey(id), errors.ErrPostNotFound, &post); err != nil {
				return err
			}
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}
