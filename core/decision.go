package core

import (
	"github.com/elgris/jwtgate/validator"
)

// DecisionKind tags a Decision. The zero value is DecisionFault.
type DecisionKind int

const (
	DecisionFault DecisionKind = iota
	DecisionPreflight
	DecisionAuthenticated
	DecisionRejected
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionPreflight:
		return "preflight"
	case DecisionAuthenticated:
		return "authenticated"
	case DecisionRejected:
		return "rejected"
	default:
		return "fault"
	}
}

// Outcome is the label under which a Decision is logged and counted.
type Outcome string

const (
	OutcomePreflight        Outcome = "preflight"
	OutcomeMissingHeader    Outcome = "missing_header"
	OutcomeAuthenticated    Outcome = "authenticated"
	OutcomeSignatureInvalid Outcome = "signature_invalid"
	OutcomeFault            Outcome = "fault"
)

// Decision is what Core.Check tells an adapter to do.
//
//   - DecisionPreflight: record Status, then call the next handler.
//   - DecisionAuthenticated: store Claims on the request, call the next handler.
//   - DecisionRejected: write Status and Message, stop. Err is a *Rejection.
//   - DecisionFault: hand Err, a *TokenFault, to the transport's fault handling.
type Decision struct {
	Kind    DecisionKind
	Outcome Outcome
	Status  int
	Message string
	Claims  validator.Claims
	Err     error
}
