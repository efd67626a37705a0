package jwtgate

import (
	"errors"

	"go.opentelemetry.io/otel/trace"

	"github.com/elgris/jwtgate/core"
	"github.com/elgris/jwtgate/validator"
)

// Option configures the Gate.
// Returns error for validation failures.
type Option func(*Gate) error

// Sentinel errors for configuration validation
var (
	ErrVerifierNil      = errors.New("verifier cannot be nil (use WithSecret or WithVerifier)")
	ErrRejectHandlerNil = errors.New("reject handler cannot be nil")
	ErrFaultHandlerNil  = errors.New("fault handler cannot be nil")
	ErrLoggerNil        = errors.New("logger cannot be nil")
	ErrMetricsNil       = errors.New("metrics cannot be nil")
	ErrTracerNil        = errors.New("tracer cannot be nil")
)

// WithSecret builds a validator.Validator for secret and uses it as the
// verifier. The secret is copied.
func WithSecret(secret []byte, opts ...validator.Option) Option {
	return func(g *Gate) error {
		s, err := validator.NewSecret(secret)
		if err != nil {
			return err
		}
		v, err := validator.New(s, opts...)
		if err != nil {
			return err
		}
		g.verifier = v
		return nil
	}
}

// WithVerifier sets the verifier used to check tokens.
func WithVerifier(v core.Verifier) Option {
	return func(g *Gate) error {
		if v == nil {
			return ErrVerifierNil
		}
		g.verifier = v
		return nil
	}
}

// WithRejectHandler sets the handler for requests rejected with 401.
//
// Default: DefaultRejectHandler
func WithRejectHandler(h ErrorHandler) Option {
	return func(g *Gate) error {
		if h == nil {
			return ErrRejectHandlerNil
		}
		g.rejectHandler = h
		return nil
	}
}

// WithFaultHandler sets the handler for token faults: malformed, expired or
// otherwise unverifiable tokens.
//
// Default: DefaultFaultHandler
func WithFaultHandler(h ErrorHandler) Option {
	return func(g *Gate) error {
		if h == nil {
			return ErrFaultHandlerNil
		}
		g.faultHandler = h
		return nil
	}
}

// WithLogger sets an optional logger for the gate and its core.
//
// The logger interface is compatible with log/slog.Logger; see
// NewLogrusLogger, NewZapLogger and NewZerologLogger for the others.
func WithLogger(logger Logger) Option {
	return func(g *Gate) error {
		if logger == nil {
			return ErrLoggerNil
		}
		g.logger = logger
		return nil
	}
}

// WithMetrics sets an optional metrics sink, typically NewPrometheusMetrics.
func WithMetrics(metrics core.Metrics) Option {
	return func(g *Gate) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		g.metrics = metrics
		return nil
	}
}

// WithTracerProvider traces verifications with a tracer from tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Gate) error {
		if tp == nil {
			return ErrTracerNil
		}
		g.coreOpts = append(g.coreOpts, core.WithTracerProvider(tp))
		return nil
	}
}
