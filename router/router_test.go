package router

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/errors"
	"traffic-lab/mocks"
	"traffic-lab/runtime"
	"traffic-lab/services"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubViews struct {
	start func(viewerID, postID, link string) (domain.ViewingSession, error)
	end   func(viewerID, viewID, postID string) (int, error)
}

func (s stubViews) Start(_ context.Context, viewerID, postID, link string) (domain.ViewingSession, error) {
	return s.start(viewerID, postID, link)
}

func (s stubViews) End(_ context.Context, viewerID, viewID, postID string) (int, error) {
	return s.end(viewerID, viewID, postID)
}

type stubReup struct {
	manual func(userID, postID string) (event.ReupSuccess, error)
	smart  func(userID string) (event.SmartReupSuccess, error)
}

func (s stubReup) ManualReup(_ context.Context, userID, postID string) (event.ReupSuccess, error) {
	return s.manual(userID, postID)
}

func (s stubReup) SmartReup(_ context.Context, userID string) (event.SmartReupSuccess, error) {
	return s.smart(userID)
}

func (s stubReup) SetAutoReup(context.Context, string, string, bool) (domain.Post, error) {
	return domain.Post{}, nil
}

type stubChat struct {
	send func(userID, content string) (domain.Message, error)
	get  func(limit int) ([]domain.Message, error)
}

func (s stubChat) SendMessage(_ context.Context, userID, content string) (domain.Message, error) {
	return s.send(userID, content)
}

func (s stubChat) GetMessages(_ context.Context, limit int) ([]domain.Message, error) {
	return s.get(limit)
}

type fixture struct {
	router   *Router
	registry *runtime.Registry
	emitter  *mocks.MockEmitter
	session  Session
}

func newFixture(t *testing.T, views services.IViewTracker, reup services.IReupService, chat services.IChatService) fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log, func() int { return 3 })
	emitter := mocks.NewMockEmitter(gomock.NewController(t))
	return fixture{
		router:   NewRouter(log, registry, views, reup, chat, emitter),
		registry: registry,
		emitter:  emitter,
		session:  Session{Handle: uuid.New(), UserID: "alice"},
	}
}

func (f fixture) dispatch(frame string) {
	f.router.Dispatch(context.Background(), f.session.Handle, f.session.UserID, []byte(frame))
}

func TestRouter_JoinRoom_Assigns_Wave(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, stubViews{}, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewWaveAssignment(1))

	// When
	f.dispatch(`{"event":"join_room","payload":"alice"}`)

	// Then
	req.Equal([]string{"alice"}, f.registry.MembersOfWave(1))
}

func TestRouter_JoinRoom_For_Someone_Else(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, stubViews{}, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle,
		event.NewError(event.ErrorName, "forbidden: cannot act for another user"))

	f.dispatch(`{"event":"join_room","payload":{"userId":"mallory"}}`)

	req.Zero(f.registry.Stats().TotalOnline)
}

func TestRouter_Disconnect_Unregisters(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, stubViews{}, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, gomock.Any())
	f.dispatch(`{"event":"join_room","payload":{}}`)
	req.Equal(1, f.registry.Stats().TotalOnline)

	f.router.Disconnect(f.session.Handle, f.session.UserID)
	f.router.Disconnect(f.session.Handle, f.session.UserID)

	req.Zero(f.registry.Stats().TotalOnline)
}

func TestRouter_ViewStart_Replies_View_Id(t *testing.T) {
	req := require.New(t)
	var viewer string
	views := stubViews{start: func(viewerID, postID, link string) (domain.ViewingSession, error) {
		viewer = viewerID
		return domain.ViewingSession{ID: "v1", PostID: postID, Link: link}, nil
	}}
	f := newFixture(t, views, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewViewStarted("v1"))

	f.dispatch(`{"event":"view_start","payload":{"postId":"p1","link":"https://a.b"}}`)

	req.Equal("alice", viewer)
}

func TestRouter_ViewEnd_Errors(t *testing.T) {
	views := stubViews{end: func(viewerID, viewID, postID string) (int, error) {
		return 0, errors.ErrViewNotFound
	}}
	f := newFixture(t, views, stubReup{}, stubChat{})
	gomock.InOrder(
		f.emitter.EXPECT().ToConnection(f.session.Handle,
			event.NewError(event.ViewErrorName, errors.ErrViewNotFound.Error())),
		f.emitter.EXPECT().ToConnection(f.session.Handle, gomock.Cond(func(e event.Outbound) bool {
			return e.Name == event.ViewErrorName
		})),
	)

	f.dispatch(`{"event":"view_end","payload":{"viewId":"v1","postId":"p1"}}`)
	f.dispatch(`{"event":"view_end","payload":{"postId":"p1"}}`)
}

func TestRouter_ViewEnd_Is_Ended_As_The_Connected_User(t *testing.T) {
	req := require.New(t)
	var endedBy string
	views := stubViews{end: func(viewerID, viewID, postID string) (int, error) {
		endedBy = viewerID
		return 0, fmt.Errorf("%w: only the viewer can end this view", errors.ErrForbidden)
	}}
	f := newFixture(t, views, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewError(event.ViewErrorName,
		"forbidden: only the viewer can end this view"))

	// When a frame tries to end a view of someone else
	f.dispatch(`{"event":"view_end","payload":{"viewId":"v1","postId":"p1"}}`)

	// Then the session user is the one checked and the refusal is a view_error
	req.Equal("alice", endedBy)
}

func TestRouter_Reup_Quota_Exceeded(t *testing.T) {
	retryAfter := 4 * time.Minute
	reup := stubReup{manual: func(userID, postID string) (event.ReupSuccess, error) {
		return event.ReupSuccess{}, &errors.QuotaExceededError{RetryAfter: retryAfter, Remaining: 0}
	}}
	f := newFixture(t, stubViews{}, reup, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewReupError(event.ReupError{
		Message:             "no reup left, please wait 4 minute(s)",
		CooldownRemainingMs: lo.ToPtr(retryAfter.Milliseconds()),
		RemainingReups:      lo.ToPtr(0),
	}))

	f.dispatch(`{"event":"reup_post","payload":{"postId":"p1","userId":"alice"}}`)
}

func TestRouter_Reup_Success(t *testing.T) {
	success := event.ReupSuccess{PostID: "p1", Message: "Reup done! 1 reup(s) left", RemainingReups: 1}
	reup := stubReup{manual: func(userID, postID string) (event.ReupSuccess, error) {
		return success, nil
	}}
	f := newFixture(t, stubViews{}, reup, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewReupSuccess(success))

	f.dispatch(`{"event":"reup_post","payload":{"postId":"p1","userId":"alice"}}`)
}

func TestRouter_SmartReup_Unexpected_Error_Is_Hidden(t *testing.T) {
	reup := stubReup{smart: func(userID string) (event.SmartReupSuccess, error) {
		return event.SmartReupSuccess{}, fmt.Errorf("disk on fire")
	}}
	f := newFixture(t, stubViews{}, reup, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewError(event.SmartReupErrorName, internalErrorMessage))

	f.dispatch(`{"event":"smart_reup_request","payload":{"userId":"alice"}}`)
}

func TestRouter_SendMessage_Error(t *testing.T) {
	chat := stubChat{send: func(userID, content string) (domain.Message, error) {
		return domain.Message{}, errors.ErrEmptyMessage
	}}
	f := newFixture(t, stubViews{}, stubReup{}, chat)
	f.emitter.EXPECT().ToConnection(f.session.Handle,
		event.NewError(event.MessageErrorName, errors.ErrEmptyMessage.Error()))

	f.dispatch(`{"event":"send_message","payload":{"userId":"alice","content":" "}}`)
}

func TestRouter_GetMessages(t *testing.T) {
	req := require.New(t)
	messages := []domain.Message{{ID: uuid.New(), UserID: "bob", Content: "hi"}}
	var asked int
	chat := stubChat{get: func(limit int) ([]domain.Message, error) {
		asked = limit
		return messages, nil
	}}
	f := newFixture(t, stubViews{}, stubReup{}, chat)
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewMessagesLoaded(messages))

	f.dispatch(`{"event":"get_messages","payload":{"limit":20}}`)

	req.Equal(20, asked)
}

func TestRouter_Unknown_And_Malformed_Frames(t *testing.T) {
	f := newFixture(t, stubViews{}, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, gomock.Cond(func(e event.Outbound) bool {
		return e.Name == event.ErrorName
	})).Times(2)

	f.dispatch(`{"event":"dance"}`)
	f.dispatch(`{{{`)
}

func TestRouter_Recovers_From_Panic(t *testing.T) {
	views := stubViews{start: func(string, string, string) (domain.ViewingSession, error) {
		panic("boom")
	}}
	f := newFixture(t, views, stubReup{}, stubChat{})
	f.emitter.EXPECT().ToConnection(f.session.Handle, event.NewError(event.ErrorName, internalErrorMessage))

	f.dispatch(`{"event":"view_start","payload":{"postId":"p1","link":"https://a.b"}}`)
}
