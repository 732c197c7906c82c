package repositories

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"time"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IUserRepository = (*UserRepository)(nil)

const userPrefix = "user:"

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func userKey(id string) []byte {
	return []byte(userPrefix + id)
}

func (u UserRepository) GetUser(id string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(id), errors.ErrUserNotFound, &user)
	})
	return user, err
}

// SaveUser upserts the whole record, the caller owns the read-modify-write.
func (u UserRepository) SaveUser(user domain.User) error {
	if user.ID == "" {
		return errors.ErrEmptyIdentity
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.UpdatedAt = time.Now().UTC()
	return u.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, userKey(user.ID), user)
	})
}

// CreateUser writes user only when no record exists under its id.
// The stored record is returned with false when the id is already taken.
func (u UserRepository) CreateUser(user domain.User) (domain.User, bool, error) {
	if user.ID == "" {
		return domain.User{}, false, errors.ErrEmptyIdentity
	}
	var stored domain.User
	var created bool
	err := updateWithRetry(u.db, func(txn *badger.Txn) error {
		stored, created = domain.User{}, false
		err := getJSON(txn, userKey(user.ID), errors.ErrUserNotFound, &stored)
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			return err
		}
		stored, created = user, true
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = time.Now().UTC()
		}
		stored.UpdatedAt = stored.CreatedAt
		return setJSON(txn, userKey(user.ID), stored)
	})
	if err != nil {
		return domain.User{}, false, err
	}
	return stored, created, nil
}

func (u UserRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user domain.User
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &user)
			}); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	return users, err
}

// UpdateUser is the read-modify-write used by every partial update of a user,
// so concurrent writers such as point transfers never overwrite each other.
func (u UserRepository) UpdateUser(id string, mutate func(user *domain.User) error) (domain.User, error) {
	var user domain.User
	err := updateWithRetry(u.db, func(txn *badger.Txn) error {
		user = domain.User{}
		if err := getJSON(txn, userKey(id), errors.ErrUserNotFound, &user); err != nil {
			return err
		}
		if err := mutate(&user); err != nil {
			return err
		}
		user.ID = id
		user.UpdatedAt = time.Now().UTC()
		return setJSON(txn, userKey(id), user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
