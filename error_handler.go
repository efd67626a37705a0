package jwtgate

import (
	"errors"
	"io"
	"net/http"

	"github.com/elgris/jwtgate/core"
)

// Re-exported so callers of the root package can match gate errors without
// importing core.
var (
	ErrMissingOrMalformedHeader = core.ErrMissingOrMalformedHeader
	ErrSignatureInvalid         = core.ErrSignatureInvalid
	ErrTokenFault               = core.ErrTokenFault
	ErrClaimsNotFound           = core.ErrClaimsNotFound
)

// ErrorHandler writes the response for a request the gate did not forward.
//
// The reject handler receives a *core.Rejection carrying the status and the
// body to write. The fault handler receives a *core.TokenFault; it stands in
// for the transport's generic fault boundary.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultRejectHandler writes the rejection status with its message as a
// plain-text body. Errors that are not a *core.Rejection get a bare 401.
func DefaultRejectHandler(w http.ResponseWriter, _ *http.Request, err error) {
	status, message := http.StatusUnauthorized, core.MessageMissingOrInvalidHeader

	var rejection *core.Rejection
	if errors.As(err, &rejection) {
		status, message = rejection.Status, rejection.Message
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

// DefaultFaultHandler answers 500, the way a server without any fault
// handling of its own would treat an unhandled error.
func DefaultFaultHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
