package core

import (
	"context"

	"github.com/elgris/jwtgate/validator"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	claimsKey contextKey = iota
)

// SetClaims stores claims in the context. Adapters call it once per
// authenticated request, with the claims of that request's own token.
func SetClaims(ctx context.Context, claims validator.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims retrieves the claims stored by SetClaims.
func GetClaims(ctx context.Context) (validator.Claims, error) {
	claims, ok := ctx.Value(claimsKey).(validator.Claims)
	if !ok {
		return validator.Claims{}, ErrClaimsNotFound
	}
	return claims, nil
}

// HasClaims checks if claims exist in the context without retrieving them.
func HasClaims(ctx context.Context) bool {
	_, ok := ctx.Value(claimsKey).(validator.Claims)
	return ok
}
