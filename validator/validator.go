package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnsupportedAlgorithm is wrapped into the fault of a token whose alg
// header is not one of HS256, HS384 or HS512.
var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// ErrUnsignedToken is wrapped into the fault of a token whose signature
// segment is empty.
var ErrUnsignedToken = errors.New("token is not signed")

// Validator verifies tokens against a single Secret. It is safe for
// concurrent use.
type Validator struct {
	secret   Secret
	leeway   time.Duration
	timeFunc func() time.Time
	parser   *jwt.Parser
}

// New sets up a new Validator with the required secret and options.
func New(secret Secret, opts ...Option) (*Validator, error) {
	if secret.IsZero() {
		return nil, ErrSecretEmpty
	}

	v := &Validator{secret: secret}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	parserOpts := []jwt.ParserOption{jwt.WithLeeway(v.leeway)}
	if v.timeFunc != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(v.timeFunc))
	}
	v.parser = jwt.NewParser(parserOpts...)

	return v, nil
}

// Verify parses token and checks its signature and time claims. golang-jwt
// checks the signature before the claims, so a badly signed expired token
// reports KindSignatureInvalid rather than an expiry fault.
func (v *Validator) Verify(token string) Result {
	claims := jwt.MapClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, v.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			if strings.HasSuffix(token, ".") {
				return Fault(fmt.Errorf("could not parse the token: %w: %w", ErrUnsignedToken, err))
			}
			return SignatureInvalid(fmt.Errorf("could not verify the token signature: %w", err))
		}
		return Fault(fmt.Errorf("could not parse the token: %w", err))
	}

	return Verified(NewClaims(claims))
}

// keyFunc hands out the secret only for HMAC tokens. Any other alg, "none"
// included, ends up as a fault and never as KindSignatureInvalid.
func (v *Validator) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, token.Header["alg"])
	}
	return v.secret.key, nil
}
