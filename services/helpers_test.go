package services

import (
	"log/slog"
	"testing"

	"traffic-lab/domain"
	"traffic-lab/mocks"
	"traffic-lab/repositories"
	"traffic-lab/runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	log      *slog.Logger
	users    *repositories.UserRepository
	posts    *repositories.PostRepository
	views    *repositories.ViewRepository
	clicks   *repositories.ClickRepository
	messages *repositories.MessageRepository
	settings *repositories.SettingRepository
	ctrl     *gomock.Controller
	emitter  *mocks.MockEmitter
	locks    *runtime.KeyLock
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	return testEnv{
		log:      log,
		users:    repositories.NewUserRepository(db, log),
		posts:    repositories.NewPostRepository(db, log),
		views:    repositories.NewViewRepository(db, log),
		clicks:   repositories.NewClickRepository(db, log),
		messages: repositories.NewMessageRepository(db, log),
		settings: repositories.NewSettingRepository(db, log),
		ctrl:     ctrl,
		emitter:  mocks.NewMockEmitter(ctrl),
		locks:    runtime.NewKeyLock(),
	}
}

func (e testEnv) seedUser(t *testing.T, user domain.User) domain.User {
	t.Helper()
	if user.Points == 0 {
		user.Points = domain.DefaultPoints
	}
	require.NoError(t, e.users.SaveUser(user))
	return user
}

// seedPost creates the post then forces the counters and dates the test cares about.
func (e testEnv) seedPost(t *testing.T, post domain.Post) domain.Post {
	t.Helper()
	created, err := e.posts.CreatePost(post)
	require.NoError(t, err)
	created, err = e.posts.UpdatePost(created.ID, func(p *domain.Post) error {
		p.CurrentView = post.CurrentView
		p.AutoReupEnabled = post.AutoReupEnabled
		if !post.CreatedAt.IsZero() {
			p.CreatedAt = post.CreatedAt
		}
		return nil
	})
	require.NoError(t, err)
	return created
}
