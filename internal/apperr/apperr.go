// Package apperr holds the error kinds the gymlog core reports to its callers.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
)

func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
}

// Unavailable marks a failed store read. Errors that already carry a kind are returned as they are.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if Classified(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}

// Classified reports whether err already carries one of the kinds.
func Classified(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnavailable)
}

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text safe to show a client: the error itself for
// caller mistakes, the fallback for everything else.
func PublicMessage(err error, fallback string) string {
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrNotFound) {
		return err.Error()
	}
	return fallback
}
