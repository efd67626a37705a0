package core

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/elgris/jwtgate/core"

// Option is a function that configures the Core.
// Options return errors to enable validation during construction.
type Option func(*Core) error

// Sentinel errors for configuration validation.
var (
	ErrVerifierNil = errors.New("verifier is required but not set (use WithVerifier option)")
	ErrLoggerNil   = errors.New("logger cannot be nil")
	ErrMetricsNil  = errors.New("metrics cannot be nil")
	ErrTracerNil   = errors.New("tracer cannot be nil")
)

// New creates a new Core instance with the provided options.
//
// The Core must be configured with a Verifier using WithVerifier.
//
// Example:
//
//	v, err := validator.New(secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := core.New(
//	    core.WithVerifier(v),
//	    core.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Core, error) {
	c := &Core{
		tracer: noop.NewTracerProvider().Tracer(instrumentationName),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.verifier == nil {
		return nil, ErrVerifierNil
	}

	return c, nil
}

// WithVerifier sets the verifier for the Core. This is a required option.
func WithVerifier(v Verifier) Option {
	return func(c *Core) error {
		if v == nil {
			return ErrVerifierNil
		}
		c.verifier = v
		return nil
	}
}

// WithLogger sets an optional logger for the Core. *slog.Logger satisfies
// Logger directly. The token and the secret are never logged.
func WithLogger(logger Logger) Option {
	return func(c *Core) error {
		if logger == nil {
			return ErrLoggerNil
		}
		c.logger = logger
		return nil
	}
}

// WithMetrics sets an optional metrics sink for the Core.
func WithMetrics(metrics Metrics) Option {
	return func(c *Core) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		c.metrics = metrics
		return nil
	}
}

// WithTracer sets the tracer used for the verification span.
//
// Default: a no-op tracer
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Core) error {
		if tracer == nil {
			return ErrTracerNil
		}
		c.tracer = tracer
		return nil
	}
}

// WithTracerProvider is like WithTracer, taking the tracer from tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Core) error {
		if tp == nil {
			return ErrTracerNil
		}
		c.tracer = tp.Tracer(instrumentationName)
		return nil
	}
}
