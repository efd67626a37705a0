package grpc

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/elgris/jwtgate/core"
)

// AuthorizationMetadataKey is the metadata key holding the bearer header.
// gRPC lowercases incoming metadata keys.
const AuthorizationMetadataKey = "authorization"

// ErrCoreNil is returned by New when no core is given.
var ErrCoreNil = errors.New("core cannot be nil")

// Interceptor provides JWT validation for gRPC servers.
type Interceptor struct {
	core            *core.Core
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	logger          Logger
}

// New creates a new interceptor over c.
func New(c *core.Core, opts ...Option) (*Interceptor, error) {
	if c == nil {
		return nil, ErrCoreNil
	}

	interceptor := &Interceptor{
		core:            c,
		errorHandler:    DefaultErrorHandler,
		excludedMethods: make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	return interceptor, nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that checks
// the bearer token and makes the claims available in the request context.
func (i *Interceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if i.excluded(info.FullMethod) {
			return handler(ctx, req)
		}

		checkedCtx, err := i.check(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}

		return handler(checkedCtx, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that checks
// the bearer token and makes the claims available in the stream context.
func (i *Interceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excluded(info.FullMethod) {
			return handler(srv, ss)
		}

		checkedCtx, err := i.check(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{
			ServerStream: ss,
			ctx:          checkedCtx,
		})
	}
}

func (i *Interceptor) excluded(method string) bool {
	if !i.excludedMethods[method] {
		return false
	}
	if i.logger != nil {
		i.logger.Debug("skipping JWT validation for excluded method",
			"method", method)
	}
	return true
}

func (i *Interceptor) check(ctx context.Context, method string) (context.Context, error) {
	d := i.core.Check(ctx, http.MethodPost, authorization(ctx))

	switch d.Kind {
	case core.DecisionAuthenticated:
		return core.SetClaims(ctx, d.Claims), nil
	case core.DecisionPreflight:
		return ctx, nil
	default:
		if i.logger != nil {
			i.logger.Debug("gRPC call not authenticated",
				"method", method,
				"outcome", string(d.Outcome))
		}
		return ctx, i.errorHandler(d.Err)
	}
}

// authorization returns the first "authorization" metadata value, or "".
func authorization(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(AuthorizationMetadataKey)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context with JWT claims.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
