package repositories

import (
	"sync"
	"sync/atomic"
	"testing"

	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewUserRepository(db, log)
	user := domain.User{
		ID:     uuid.NewString(),
		Email:  "alice@example.com",
		Role:   domain.RoleUser,
		Points: domain.DefaultPoints,
		ReupSettings: domain.ReupSettings{
			Mode:            domain.ReupModeSpecific,
			SpecificPostIDs: []string{"p1", "p2"},
		},
	}

	req.NoError(repository.SaveUser(user))

	fetched, err := repository.GetUser(user.ID)
	req.NoError(err)
	req.Equal(user.Email, fetched.Email)
	req.Equal(domain.DefaultPoints, fetched.Points)
	req.Equal(user.ReupSettings, fetched.ReupSettings)
	req.False(fetched.CreatedAt.IsZero())
}

func TestUserRepository_Get_Unknown(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewUserRepository(db, log)

	_, err := repository.GetUser("nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestUserRepository_Save_Requires_ID(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)

	err := NewUserRepository(db, log).SaveUser(domain.User{Email: "x@example.com"})
	req.ErrorIs(err, errors.ErrEmptyIdentity)
}

func TestUserRepository_List(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewUserRepository(db, log)

	for i := 0; i < 3; i++ {
		req.NoError(repository.SaveUser(domain.User{ID: uuid.NewString()}))
	}

	users, err := repository.ListUsers()
	req.NoError(err)
	req.Len(users, 3)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewUserRepository(db, log)
	id := uuid.NewString()
	req.NoError(repository.SaveUser(domain.User{ID: id, Points: 10}))

	// When the mutation succeeds
	updated, err := repository.UpdateUser(id, func(user *domain.User) error {
		user.Points += 5
		return nil
	})
	req.NoError(err)
	req.Equal(15, updated.Points)

	// When the mutation fails nothing is written
	_, err = repository.UpdateUser(id, func(user *domain.User) error {
		user.Points = 0
		return errors.ErrForbidden
	})
	req.ErrorIs(err, errors.ErrForbidden)
	fetched, err := repository.GetUser(id)
	req.NoError(err)
	req.Equal(15, fetched.Points)

	_, err = repository.UpdateUser("missing", func(*domain.User) error { return nil })
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_CreateUser_Writes_Only_When_Absent(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewUserRepository(db, log)
	id := uuid.NewString()

	// Given many first creations racing on the same id
	var createdCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := repository.CreateUser(domain.User{ID: id, Points: domain.DefaultPoints})
			req.NoError(err)
			if created {
				createdCount.Add(1)
			}
		}()
	}
	wg.Wait()
	req.Equal(int32(1), createdCount.Load())

	// When the balance moves and the id is created again
	_, err := repository.UpdateUser(id, func(user *domain.User) error {
		user.Points -= 10
		return nil
	})
	req.NoError(err)
	stored, created, err := repository.CreateUser(domain.User{ID: id, Points: domain.DefaultPoints})

	// Then the stored record wins
	req.NoError(err)
	req.False(created)
	req.Equal(domain.DefaultPoints-10, stored.Points)

	_, _, err = repository.CreateUser(domain.User{})
	req.ErrorIs(err, errors.ErrEmptyIdentity)
}
