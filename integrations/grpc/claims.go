package grpc

import (
	"context"

	"github.com/elgris/jwtgate/core"
	"github.com/elgris/jwtgate/validator"
)

// GetClaims retrieves the claims of an authenticated call.
//
// Example:
//
//	claims, err := jwtgrpc.GetClaims(ctx)
//	if err != nil {
//	    return nil, status.Error(codes.Internal, "failed to get claims")
//	}
//	fmt.Println(claims.Subject())
func GetClaims(ctx context.Context) (validator.Claims, error) {
	return core.GetClaims(ctx)
}

// MustGetClaims retrieves the claims or panics.
// Use only when you are certain claims exist (e.g., after interceptor has run).
func MustGetClaims(ctx context.Context) validator.Claims {
	claims, err := core.GetClaims(ctx)
	if err != nil {
		panic(err)
	}
	return claims
}

// HasClaims checks if claims exist in the context.
func HasClaims(ctx context.Context) bool {
	return core.HasClaims(ctx)
}
