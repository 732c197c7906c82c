//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"traffic-lab/domain"
	"traffic-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Emitter pushes outbound events to live connections.
// Delivery is best effort, an absent target is a silent no-op.
type Emitter interface {
	Broadcast(e event.Outbound)
	ToUser(userID string, e event.Outbound)
	ToConnection(handle domain.ConnectionHandle, e event.Outbound)
}

type IRegistry interface {
	Register(userID string, handle domain.ConnectionHandle) int
	Unregister(handle domain.ConnectionHandle)
	MembersOfWave(wave int) []string
	AllConnected() []domain.Connection
	Stats() domain.WaveStats
}

// Task is the handle of a scheduled callback.
type Task interface {
	// Cancel prevents the callback from running, it reports false when it already ran or was cancelled.
	Cancel() bool
}

type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Task
}

// IDistributor delivers a post to the connected users, wave by wave when enabled.
type IDistributor interface {
	Distribute(post domain.DistributedPost, emitter Emitter) []Task
	ReloadConfig() (domain.DistributionConfig, error)
	Config() domain.DistributionConfig
}

type ConfigSource interface {
	LoadDistributionConfig() (domain.DistributionConfig, error)
}

type IUserRepository interface {
	GetUser(id string) (domain.User, error)
	SaveUser(user domain.User) error
	// CreateUser writes user unless its id is taken, in which case the
	// stored record comes back with false.
	CreateUser(user domain.User) (domain.User, bool, error)
	// UpdateUser applies mutate to the stored record in one transaction.
	// An error from mutate aborts the write and is returned as is.
	UpdateUser(id string, mutate func(user *domain.User) error) (domain.User, error)
	ListUsers() ([]domain.User, error)
}

type IPostRepository interface {
	CreatePost(post domain.Post) (domain.Post, error)
	GetPost(id string) (domain.Post, error)
	// UpdatePost applies mutate to the stored record in one transaction.
	// An error from mutate aborts the write and is returned as is.
	UpdatePost(id string, mutate func(post *domain.Post) error) (domain.Post, error)
	IncrementView(id string) (domain.Post, error)
	ListByAuthor(authorID string) ([]domain.Post, error)
}

type IViewRepository interface {
	CreateView(view domain.ViewingSession) (domain.ViewingSession, error)
	GetView(id string) (domain.ViewingSession, error)
	// EndView closes the session and moves the points in one transaction.
	// A session that already ended is returned untouched with Transfer.AlreadyEnded set.
	EndView(id, authorID string, now time.Time, policy func(float64) int) (domain.ViewingSession, domain.Transfer, error)
	ListByPost(postID string, skip, limit int) ([]domain.ViewingSession, int, error)
	LinkStats(postID string) ([]domain.LinkStat, error)
}

type IClickRepository interface {
	CreateClick(click domain.ClickEvent) (domain.ClickEvent, error)
	EndClick(id string, now time.Time, policy func(float64) int) (domain.ClickEvent, domain.Transfer, error)
	ListClicks(skip, limit int) ([]domain.ClickEvent, int, error)
}

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	LatestMessages(limit int) ([]domain.Message, error)
}

type ISettingRepository interface {
	GetSetting(key string) (domain.SystemSetting, error)
	PutSetting(setting domain.SystemSetting) error
	ListSettings() ([]domain.SystemSetting, error)
	SaveRelease(release domain.ExtensionRelease) error
	LatestRelease() (domain.ExtensionRelease, error)
}
