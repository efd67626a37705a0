// Package testtoken mints tokens for tests. Tokens come from two independent
// libraries, golang-jwt and lestrrat-go/jwx, so the gate is exercised against
// tokens it did not build itself.
package testtoken

import (
	"maps"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
)

// Sign returns claims signed with secret using HS256.
func Sign(tb testing.TB, secret []byte, claims map[string]any) string {
	tb.Helper()
	return SignWith(tb, jwt.SigningMethodHS256, secret, claims)
}

// SignWith returns claims signed by method with key.
func SignWith(tb testing.TB, method jwt.SigningMethod, key any, claims map[string]any) string {
	tb.Helper()

	token := jwt.NewWithClaims(method, jwt.MapClaims(maps.Clone(claims)))
	signed, err := token.SignedString(key)
	if err != nil {
		tb.Fatalf("signing %s token: %v", method.Alg(), err)
	}
	return signed
}

// Unsigned returns an alg "none" token.
func Unsigned(tb testing.TB, claims map[string]any) string {
	tb.Helper()
	return SignWith(tb, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims)
}

// SignJWX returns claims signed with secret using HS256 through jwx.
func SignJWX(tb testing.TB, secret []byte, claims map[string]any) string {
	tb.Helper()

	token := jwxjwt.New()
	for k, v := range claims {
		if err := token.Set(k, v); err != nil {
			tb.Fatalf("setting claim %q: %v", k, err)
		}
	}

	signed, err := jwxjwt.Sign(token, jwxjwt.WithKey(jwa.HS256, secret))
	if err != nil {
		tb.Fatalf("signing jwx token: %v", err)
	}
	return string(signed)
}
