package core

import (
	"errors"
	"fmt"
)

// Response bodies written for rejected requests.
const (
	MessageMissingOrInvalidHeader = "Missing or invalid Authorization header"
	MessageInvalidToken           = "Invalid token"
)

var (
	// ErrMissingOrMalformedHeader is returned when the Authorization header is
	// absent or does not start with "Bearer ".
	ErrMissingOrMalformedHeader = errors.New("missing or malformed authorization header")

	// ErrSignatureInvalid is returned when the token signature does not match
	// the secret.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrTokenFault matches every *TokenFault.
	ErrTokenFault = errors.New("token fault")

	// ErrClaimsNotFound is returned when claims cannot be retrieved from context.
	ErrClaimsNotFound = errors.New("claims not found in context")
)

// Rejection is the error carried by a DecisionRejected. It holds the status
// and body the adapter must write.
type Rejection struct {
	Status  int
	Message string

	// Err is ErrMissingOrMalformedHeader or wraps ErrSignatureInvalid.
	Err error
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("rejected with %d: %s", e.Status, e.Err)
}

func (e *Rejection) Unwrap() error {
	return e.Err
}

// TokenFault wraps a verification failure that is not a signature mismatch:
// a malformed token, an expired one, an unsupported algorithm. It is not
// meant to be recovered by the gate.
type TokenFault struct {
	Err error
}

func (e *TokenFault) Error() string {
	return fmt.Sprintf("%s: %s", ErrTokenFault, e.Err)
}

func (e *TokenFault) Unwrap() error {
	return e.Err
}

// Is allows the error to support equality to ErrTokenFault.
func (e *TokenFault) Is(target error) bool {
	return target == ErrTokenFault
}
