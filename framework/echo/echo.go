// Package jwtecho adapts the jwtgate core to Echo.
package jwtecho

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elgris/jwtgate/core"
	"github.com/elgris/jwtgate/validator"
)

// DefaultClaimsKey is the echo.Context key the claims are stored under.
const DefaultClaimsKey = "claims"

// ErrCoreNil is returned by New when no core is given.
var ErrCoreNil = errors.New("core cannot be nil")

type config struct {
	rejectHandler func(echo.Context, error) error
	contextKey    string
}

// New returns Echo middleware that runs every request through c.
//
// Rejections are written by the reject handler (401 and the plain text
// message by default). Token faults are returned from the middleware as
// errors, so Echo's HTTPErrorHandler answers them.
func New(c *core.Core, opts ...Option) (echo.MiddlewareFunc, error) {
	if c == nil {
		return nil, ErrCoreNil
	}

	cfg := &config{
		rejectHandler: DefaultRejectHandler,
		contextKey:    DefaultClaimsKey,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			req := ec.Request()
			d := c.Check(req.Context(), req.Method, req.Header.Get(core.AuthorizationHeader))

			switch d.Kind {
			case core.DecisionPreflight:
				if err := next(ec); err != nil {
					return err
				}
				if !ec.Response().Committed {
					return ec.NoContent(d.Status)
				}
				return nil
			case core.DecisionAuthenticated:
				ec.SetRequest(req.WithContext(core.SetClaims(req.Context(), d.Claims)))
				ec.Set(cfg.contextKey, d.Claims)
				return next(ec)
			case core.DecisionRejected:
				return cfg.rejectHandler(ec, d.Err)
			default:
				return d.Err
			}
		}
	}, nil
}

// DefaultRejectHandler writes the status and message of a *core.Rejection
// as plain text.
func DefaultRejectHandler(ec echo.Context, err error) error {
	var rejection *core.Rejection
	if errors.As(err, &rejection) {
		return ec.String(rejection.Status, rejection.Message)
	}
	return ec.String(http.StatusUnauthorized, core.MessageMissingOrInvalidHeader)
}

// GetClaims returns the claims of an authenticated request.
func GetClaims(ec echo.Context) (validator.Claims, error) {
	return core.GetClaims(ec.Request().Context())
}
