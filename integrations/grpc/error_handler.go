package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/elgris/jwtgate/core"
)

// ErrorHandler turns a rejection or a token fault into the error returned to
// the gRPC runtime.
type ErrorHandler func(err error) error

// DefaultErrorHandler maps a *core.Rejection to codes.Unauthenticated with
// the rejection's message. Every other error is returned as is.
func DefaultErrorHandler(err error) error {
	var rejection *core.Rejection
	if errors.As(err, &rejection) {
		return status.Error(codes.Unauthenticated, rejection.Message)
	}
	return err
}
