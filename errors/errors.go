package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrNotFound        = fmt.Errorf("not found")
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrPostNotFound    = fmt.Errorf("post %w", ErrNotFound)
	ErrViewNotFound    = fmt.Errorf("view %w", ErrNotFound)
	ErrClickNotFound   = fmt.Errorf("click record %w", ErrNotFound)
	ErrSettingNotFound = fmt.Errorf("setting %w", ErrNotFound)
	ErrReleaseNotFound = fmt.Errorf("no extension release %w", ErrNotFound)
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrNotPostOwner    = fmt.Errorf("%w: only post owner can reup", ErrForbidden)
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrEmptyMessage    = fmt.Errorf("%w: message cannot be empty", ErrInvalidInput)
	ErrMessageTooLong  = fmt.Errorf("%w: message too long (max 500 characters)", ErrInvalidInput)
	ErrInvalidReupMode = fmt.Errorf("%w: reup mode must be one of normal, specific, one-user", ErrInvalidInput)
	ErrEmptySpecificSet = fmt.Errorf(
		"%w: specificPostIds must be a non-empty array when mode is \"specific\"", ErrInvalidInput)
	ErrInvalidContent = fmt.Errorf(
		"%w: invalid content format, must be: https://domain### keyword!!! (spaces optional)", ErrInvalidInput)
	ErrUnknownEvent     = fmt.Errorf("%w: unknown event", ErrInvalidInput)
	ErrQuotaExceeded    = fmt.Errorf("quota exceeded")
	ErrUnavailable      = fmt.Errorf("unavailable")
	ErrNoEligiblePost   = fmt.Errorf("%w: no post to reup (all reached maxView or are disabled)", ErrUnavailable)
	ErrNoOnlinePeer     = fmt.Errorf("%w: no other user is online to receive the post", ErrUnavailable)
	ErrUnauthorized     = fmt.Errorf("unauthorized")
	ErrInvalidToken     = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrVersionExists    = fmt.Errorf("%w: version already exists", ErrInvalidInput)
	ErrEmptyIdentity    = fmt.Errorf("%w: user identity is required", ErrInvalidInput)
	ErrConnectionClosed = fmt.Errorf("connection closed")
)

// QuotaExceededError carries how long the caller has to wait before the window resets.
type QuotaExceededError struct {
	RetryAfter time.Duration
	Remaining  int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("no reup left, please wait %d minute(s)", MinutesCeil(e.RetryAfter))
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}

// MinutesCeil rounds a duration up to whole minutes, the way users are told to wait.
func MinutesCeil(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Minute - 1) / time.Minute)
}

// HTTPStatus maps the error taxonomy onto a status code.
// Anything outside the taxonomy is a 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case stderrors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	case stderrors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsExpected reports whether err belongs to the taxonomy, so its message is safe to show.
func IsExpected(err error) bool {
	return HTTPStatus(err) != http.StatusInternalServerError
}
