/*
Package validator verifies HMAC-signed JSON Web Tokens against a shared secret
using github.com/golang-jwt/jwt/v5.

Verification never panics and never returns a bare error. It returns a
Result tagged with one of three kinds:

  - KindVerified: the signature matched and the time claims are valid.
    Result.Claims holds the decoded payload.
  - KindSignatureInvalid: the token parsed but its signature does not match
    the secret.
  - KindFault: anything else. The token is malformed, expired, not yet
    valid, or uses an algorithm outside the HMAC family. Result.Err wraps
    the golang-jwt sentinel, so callers can use errors.Is with
    jwt.ErrTokenMalformed, jwt.ErrTokenExpired and friends, or with
    ErrUnsupportedAlgorithm.

Callers that only want to turn signature mismatches into a client error can
switch on Kind and leave every other case to their own fault handling:

	secret, err := validator.NewSecret([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
	    log.Fatal(err)
	}

	v, err := validator.New(secret, validator.WithLeeway(30*time.Second))
	if err != nil {
	    log.Fatal(err)
	}

	switch res := v.Verify(token); res.Kind {
	case validator.KindVerified:
	    fmt.Println(res.Claims.Subject())
	case validator.KindSignatureInvalid:
	    // 401
	default:
	    // res.Err
	}

# Secret

Secret copies the key on construction and never exposes it again. Formatting
a Secret with fmt, slog or encoding/json yields a redacted placeholder.

# Claims

Claims is read-only. Map returns a deep copy, so handlers that mutate the
returned map cannot affect another reader of the same Claims.
*/
package validator
