package jwtgin

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrRejectHandlerNil = errors.New("reject handler cannot be nil")
	ErrContextKeyEmpty  = errors.New("context key cannot be empty")
)

// Option defines a functional option for configuring the middleware
type Option func(*config) error

// WithRejectHandler sets the handler that answers rejected requests. The
// chain is aborted after it returns.
func WithRejectHandler(handler func(*gin.Context, error)) Option {
	return func(cfg *config) error {
		if handler == nil {
			return ErrRejectHandlerNil
		}
		cfg.rejectHandler = handler
		return nil
	}
}

// WithContextKey sets the gin.Context key the claims are stored under.
func WithContextKey(key string) Option {
	return func(cfg *config) error {
		if key == "" {
			return ErrContextKeyEmpty
		}
		cfg.contextKey = key
		return nil
	}
}
