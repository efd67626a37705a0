package jwtgate

import (
	"context"

	"github.com/elgris/jwtgate/core"
	"github.com/elgris/jwtgate/validator"
)

// GetClaims retrieves the claims the gate attached to the request context.
//
// Example:
//
//	claims, err := jwtgate.GetClaims(r.Context())
//	if err != nil {
//	    http.Error(w, "failed to get claims", http.StatusInternalServerError)
//	    return
//	}
//	fmt.Println(claims.Subject())
func GetClaims(ctx context.Context) (validator.Claims, error) {
	return core.GetClaims(ctx)
}

// MustGetClaims retrieves claims from the context or panics.
// Use only behind the gate, where authenticated requests always carry claims.
func MustGetClaims(ctx context.Context) validator.Claims {
	claims, err := core.GetClaims(ctx)
	if err != nil {
		panic(err)
	}
	return claims
}

// HasClaims checks if claims exist in the context. OPTIONS requests pass the
// gate without claims.
func HasClaims(ctx context.Context) bool {
	return core.HasClaims(ctx)
}
