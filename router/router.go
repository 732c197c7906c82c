// Package router turns realtime frames into service calls and service outcomes into private replies.
package router

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"traffic-lab/contract"
	"traffic-lab/domain"
	"traffic-lab/domain/event"
	"traffic-lab/errors"
	"traffic-lab/observability"
	"traffic-lab/services"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const internalErrorMessage = "internal error"

// Session is the authenticated connection a frame came from.
type Session struct {
	Handle domain.ConnectionHandle
	UserID string
}

type Router struct {
	log      *slog.Logger
	registry contract.IRegistry
	views    services.IViewTracker
	reup     services.IReupService
	chat     services.IChatService
	emitter  contract.Emitter
	validate *validator.Validate
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, views services.IViewTracker,
	reup services.IReupService, chat services.IChatService, emitter contract.Emitter) *Router {
	return &Router{
		log:      log.With("component", "event_router"),
		registry: registry,
		views:    views,
		reup:     reup,
		chat:     chat,
		emitter:  emitter,
		validate: validator.New(),
	}
}

// Dispatch decodes a raw frame and handles it. Undecodable frames get a private error event.
func (r *Router) Dispatch(ctx context.Context, handle domain.ConnectionHandle, userID string, raw []byte) {
	session := Session{Handle: handle, UserID: userID}
	in, err := event.Decode(raw)
	if err != nil {
		r.log.Warn("Rejected realtime frame", "connID", handle.String(), "error", err)
		observability.RecordInbound("unknown", err)
		r.emitter.ToConnection(handle, event.NewError(event.ErrorName, err.Error()))
		return
	}
	r.Handle(ctx, session, in)
}

// Disconnect is raised by the transport once the connection is gone.
func (r *Router) Disconnect(handle domain.ConnectionHandle, userID string) {
	r.Handle(context.Background(), Session{Handle: handle, UserID: userID}, event.Disconnect{})
}

// Handle runs one inbound event. A handler failure becomes the private error event of
// that event and never escapes, a panic included.
func (r *Router) Handle(ctx context.Context, session Session, in event.Inbound) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("Panic while handling realtime event",
				"event", in.Name(), "connID", session.Handle.String(), "panic", rec)
			observability.RecordInbound(string(in.Name()), errors.ErrWorkerPanic)
			r.emitter.ToConnection(session.Handle, event.NewError(event.ErrorName, internalErrorMessage))
		}
	}()

	var err error
	var errorEvent event.OutboundName
	switch e := in.(type) {
	case event.JoinRoom:
		errorEvent, err = event.ErrorName, r.joinRoom(session, e)
	case event.ViewStart:
		errorEvent, err = event.ViewErrorName, r.viewStart(ctx, session, e)
	case event.ViewEnd:
		errorEvent, err = event.ViewErrorName, r.viewEnd(ctx, session, e)
	case event.ReupPost:
		errorEvent, err = event.ReupErrorName, r.reupPost(ctx, session, e)
	case event.SmartReupRequest:
		errorEvent, err = event.SmartReupErrorName, r.smartReup(ctx, session, e)
	case event.SendMessage:
		errorEvent, err = event.MessageErrorName, r.sendMessage(ctx, session, e)
	case event.GetMessages:
		errorEvent, err = event.MessageErrorName, r.getMessages(ctx, session, e)
	case event.Disconnect:
		r.registry.Unregister(session.Handle)
	default:
		errorEvent, err = event.ErrorName, fmt.Errorf("%w %q", errors.ErrUnknownEvent, in.Name())
	}

	observability.RecordInbound(string(in.Name()), err)
	if err != nil {
		r.replyError(session, in.Name(), errorEvent, err)
	}
}

func (r *Router) joinRoom(session Session, e event.JoinRoom) error {
	userID, err := r.identity(session, e.UserID)
	if err != nil {
		return err
	}
	wave := r.registry.Register(userID, session.Handle)
	r.emitter.ToConnection(session.Handle, event.NewWaveAssignment(wave))
	r.log.Info("User joined", "userID", userID, "connID", session.Handle.String(), "wave", wave)
	return nil
}

func (r *Router) viewStart(ctx context.Context, session Session, e event.ViewStart) error {
	userID, err := r.identity(session, e.UserID)
	if err != nil {
		return err
	}
	e.UserID = userID
	if err = r.check(e); err != nil {
		return err
	}
	view, err := r.views.Start(ctx, userID, e.PostID, e.Link)
	if err != nil {
		return err
	}
	r.emitter.ToConnection(session.Handle, event.NewViewStarted(view.ID))
	return nil
}

func (r *Router) viewEnd(ctx context.Context, session Session, e event.ViewEnd) error {
	if err := r.check(e); err != nil {
		return err
	}
	_, err := r.views.End(ctx, session.UserID, e.ViewID, e.PostID)
	return err
}

func (r *Router) reupPost(ctx context.Context, session Session, e event.ReupPost) error {
	userID, err := r.identity(session, e.UserID)
	if err != nil {
		return err
	}
	e.UserID = userID
	if err = r.check(e); err != nil {
		return err
	}
	success, err := r.reup.ManualReup(ctx, userID, e.PostID)
	if err != nil {
		return err
	}
	r.emitter.ToConnection(session.Handle, event.NewReupSuccess(success))
	return nil
}

func (r *Router) smartReup(ctx context.Context, session Session, e event.SmartReupRequest) error {
	userID, err := r.identity(session, e.UserID)
	if err != nil {
		return err
	}
	success, err := r.reup.SmartReup(ctx, userID)
	if err != nil {
		return err
	}
	r.emitter.ToConnection(session.Handle, event.NewSmartReupSuccess(success))
	return nil
}

// sendMessage replies nothing on success, the sender gets the broadcast like everybody else.
func (r *Router) sendMessage(ctx context.Context, session Session, e event.SendMessage) error {
	userID, err := r.identity(session, e.UserID)
	if err != nil {
		return err
	}
	_, err = r.chat.SendMessage(ctx, userID, e.Content)
	return err
}

func (r *Router) getMessages(ctx context.Context, session Session, e event.GetMessages) error {
	messages, err := r.chat.GetMessages(ctx, e.Limit)
	if err != nil {
		return err
	}
	r.emitter.ToConnection(session.Handle, event.NewMessagesLoaded(messages))
	return nil
}

// identity resolves the identity a payload acts for. It defaults to the authenticated one
// and may never differ from it.
func (r *Router) identity(session Session, claimed string) (string, error) {
	if claimed == "" {
		claimed = session.UserID
	}
	if claimed == "" {
		return "", fmt.Errorf("%w: userId is required", errors.ErrInvalidInput)
	}
	if session.UserID != "" && claimed != session.UserID {
		return "", fmt.Errorf("%w: cannot act for another user", errors.ErrForbidden)
	}
	return claimed, nil
}

func (r *Router) check(payload any) error {
	if err := r.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return nil
}

func (r *Router) replyError(session Session, name event.InboundName, errorEvent event.OutboundName, err error) {
	message := err.Error()
	if !errors.IsExpected(err) {
		r.log.Error("Error handling realtime event", "event", name, "userID", session.UserID, "error", err)
		message = internalErrorMessage
	} else {
		r.log.Debug("Realtime event refused", "event", name, "userID", session.UserID, "error", err)
	}

	if errorEvent == event.ReupErrorName {
		r.emitter.ToConnection(session.Handle, event.NewReupError(reupError(message, err)))
		return
	}
	r.emitter.ToConnection(session.Handle, event.NewError(errorEvent, message))
}

func reupError(message string, err error) event.ReupError {
	reupErr := event.ReupError{Message: message}
	var quotaErr *errors.QuotaExceededError
	if stderrors.As(err, &quotaErr) {
		reupErr.CooldownRemainingMs = lo.ToPtr(quotaErr.RetryAfter.Milliseconds())
		reupErr.RemainingReups = lo.ToPtr(quotaErr.Remaining)
	}
	return reupErr
}
