package grpc

import (
	"errors"

	"github.com/elgris/jwtgate/core"
)

var (
	ErrErrorHandlerNil = errors.New("error handler cannot be nil")
	ErrLoggerNil       = errors.New("logger cannot be nil")
)

// Option configures the interceptor.
type Option func(*Interceptor) error

// Logger is the slog-compatible interface shared with core.
type Logger = core.Logger

// WithErrorHandler sets the handler that converts rejections and faults.
//
// Default: DefaultErrorHandler
func WithErrorHandler(handler ErrorHandler) Option {
	return func(i *Interceptor) error {
		if handler == nil {
			return ErrErrorHandlerNil
		}
		i.errorHandler = handler
		return nil
	}
}

// WithExcludedMethods lists full method names, such as
// "/grpc.health.v1.Health/Check", that skip the check.
func WithExcludedMethods(methods ...string) Option {
	return func(i *Interceptor) error {
		for _, method := range methods {
			i.excludedMethods[method] = true
		}
		return nil
	}
}

// WithLogger sets an optional logger.
func WithLogger(logger Logger) Option {
	return func(i *Interceptor) error {
		if logger == nil {
			return ErrLoggerNil
		}
		i.logger = logger
		return nil
	}
}
