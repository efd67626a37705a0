package jwtecho

import (
	"errors"

	"github.com/labstack/echo/v4"
)

var (
	ErrRejectHandlerNil = errors.New("reject handler cannot be nil")
	ErrContextKeyEmpty  = errors.New("context key cannot be empty")
)

// Option configures the Echo middleware.
type Option func(*config) error

// WithRejectHandler sets the handler that answers rejected requests.
func WithRejectHandler(handler func(echo.Context, error) error) Option {
	return func(cfg *config) error {
		if handler == nil {
			return ErrRejectHandlerNil
		}
		cfg.rejectHandler = handler
		return nil
	}
}

// WithContextKey sets the echo.Context key the claims are stored under.
func WithContextKey(key string) Option {
	return func(cfg *config) error {
		if key == "" {
			return ErrContextKeyEmpty
		}
		cfg.contextKey = key
		return nil
	}
}
