package validator

import (
	"errors"
	"time"
)

// Option is how options for the Validator are set up.
// Options return errors to enable validation during construction.
type Option func(*Validator) error

// WithLeeway sets the clock skew tolerated when checking exp, nbf and iat.
//
// Default: 0 (no clock skew allowed)
func WithLeeway(leeway time.Duration) Option {
	return func(v *Validator) error {
		if leeway < 0 {
			return errors.New("leeway cannot be negative")
		}
		v.leeway = leeway
		return nil
	}
}

// WithTimeFunc overrides the clock used for time-based claims.
func WithTimeFunc(now func() time.Time) Option {
	return func(v *Validator) error {
		if now == nil {
			return errors.New("time func cannot be nil")
		}
		v.timeFunc = now
		return nil
	}
}
