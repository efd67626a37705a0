// Package jwtgin adapts the jwtgate core to Gin.
package jwtgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elgris/jwtgate/core"
	"github.com/elgris/jwtgate/validator"
)

// DefaultClaimsKey is the gin.Context key the claims are stored under.
const DefaultClaimsKey = "claims"

var (
	ErrCoreNil       = errors.New("core cannot be nil")
	ErrMissingClaims = errors.New("no JWT claims found in context")
	ErrInvalidClaims = errors.New("invalid JWT claims type")
)

type config struct {
	rejectHandler func(*gin.Context, error)
	contextKey    string
}

// New returns a Gin middleware that runs every request through c.
//
// Token faults abort the chain with status 500 and are attached to the
// context with AbortWithError, so a recovery or logging middleware earlier in
// the chain can inspect c.Errors.
func New(c *core.Core, opts ...Option) (gin.HandlerFunc, error) {
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

	return func(gc *gin.Context) {
		d := c.Check(gc.Request.Context(), gc.Request.Method, gc.GetHeader(core.AuthorizationHeader))

		switch d.Kind {
		case core.DecisionPreflight:
			gc.Status(d.Status)
			gc.Next()
		case core.DecisionAuthenticated:
			gc.Request = gc.Request.WithContext(core.SetClaims(gc.Request.Context(), d.Claims))
			gc.Set(cfg.contextKey, d.Claims)
			gc.Next()
		case core.DecisionRejected:
			cfg.rejectHandler(gc, d.Err)
			gc.Abort()
		default:
			_ = gc.AbortWithError(http.StatusInternalServerError, d.Err)
		}
	}, nil
}

// DefaultRejectHandler writes the status and message of a *core.Rejection
// as plain text and aborts the chain.
func DefaultRejectHandler(gc *gin.Context, err error) {
	status, message := http.StatusUnauthorized, core.MessageMissingOrInvalidHeader

	var rejection *core.Rejection
	if errors.As(err, &rejection) {
		status, message = rejection.Status, rejection.Message
	}

	gc.Abort()
	gc.String(status, message)
}

// GetClaims returns the claims stored under contextKey. An empty contextKey
// means DefaultClaimsKey.
func GetClaims(gc *gin.Context, contextKey string) (validator.Claims, error) {
	if contextKey == "" {
		contextKey = DefaultClaimsKey
	}
	claims, exists := gc.Get(contextKey)
	if !exists {
		return validator.Claims{}, ErrMissingClaims
	}

	validatedClaims, ok := claims.(validator.Claims)
	if !ok {
		return validator.Claims{}, ErrInvalidClaims
	}

	return validatedClaims, nil
}
