package core

import "strings"

// AuthorizationHeader is the header the gate reads. net/http canonicalises
// header names, so lookups through http.Header.Get are case-insensitive.
const AuthorizationHeader = "Authorization"

const bearerPrefix = "Bearer "

// BearerToken returns the part of value after the case-sensitive "Bearer "
// prefix. The remainder is returned as is, even when empty; deciding whether
// it is a token is the verifier's job. Without the prefix it returns "", false.
func BearerToken(value string) (string, bool) {
	if token, ok := strings.CutPrefix(value, bearerPrefix); ok {
		return token, true
	}
	return "", false
}
