package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/elgris/jwtgate/validator"
)

// Verifier verifies a raw token. *validator.Validator implements it.
type Verifier interface {
	Verify(token string) validator.Result
}

// Logger defines an optional logging interface compatible with log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics receives one IncOutcome per Check, and one ObserveVerification per
// call into the Verifier.
type Metrics interface {
	IncOutcome(outcome Outcome)
	ObserveVerification(outcome Outcome, duration time.Duration)
}

var errEmptyResult = errors.New("verifier returned a fault without an error")

// Core is the framework-agnostic authentication gate. It holds no per-request
// state and is safe for concurrent use.
type Core struct {
	verifier Verifier
	logger   Logger
	metrics  Metrics
	tracer   trace.Tracer
}

// Check decides what happens to a request with the given method and raw
// Authorization header value. It never blocks and never calls the verifier
// for OPTIONS requests or requests without a bearer header.
func (c *Core) Check(ctx context.Context, method, authorization string) Decision {
	if method == http.MethodOptions {
		c.logDebug("passing OPTIONS request through without validation")
		return c.decide(Decision{
			Kind:    DecisionPreflight,
			Outcome: OutcomePreflight,
			Status:  http.StatusOK,
		})
	}

	token, ok := BearerToken(authorization)
	if !ok {
		c.logWarn("missing or malformed Authorization header", "method", method)
		return c.decide(Decision{
			Kind:    DecisionRejected,
			Outcome: OutcomeMissingHeader,
			Status:  http.StatusUnauthorized,
			Message: MessageMissingOrInvalidHeader,
			Err: &Rejection{
				Status:  http.StatusUnauthorized,
				Message: MessageMissingOrInvalidHeader,
				Err:     ErrMissingOrMalformedHeader,
			},
		})
	}

	return c.verify(ctx, method, token)
}

func (c *Core) verify(ctx context.Context, method, token string) Decision {
	_, span := c.tracer.Start(ctx, "jwtgate.Verify", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	start := time.Now()
	res := c.verifier.Verify(token)
	duration := time.Since(start)

	var d Decision
	switch res.Kind {
	case validator.KindVerified:
		c.logDebug("token verified", "subject", res.Claims.Subject(), "duration", duration)
		d = Decision{
			Kind:    DecisionAuthenticated,
			Outcome: OutcomeAuthenticated,
			Claims:  res.Claims,
		}
	case validator.KindSignatureInvalid:
		err := fmt.Errorf("%w: %w", ErrSignatureInvalid, res.Err)
		c.logWarn("token signature invalid", "method", method, "error", res.Err, "duration", duration)
		d = Decision{
			Kind:    DecisionRejected,
			Outcome: OutcomeSignatureInvalid,
			Status:  http.StatusUnauthorized,
			Message: MessageInvalidToken,
			Err: &Rejection{
				Status:  http.StatusUnauthorized,
				Message: MessageInvalidToken,
				Err:     err,
			},
		}
	default:
		cause := res.Err
		if cause == nil {
			cause = errEmptyResult
		}
		fault := &TokenFault{Err: cause}
		c.logError("token could not be verified", "method", method, "error", cause, "duration", duration)
		span.RecordError(fault)
		span.SetStatus(codes.Error, ErrTokenFault.Error())
		d = Decision{
			Kind:    DecisionFault,
			Outcome: OutcomeFault,
			Err:     fault,
		}
	}

	span.SetAttributes(attribute.String("jwtgate.outcome", string(d.Outcome)))
	if c.metrics != nil {
		c.metrics.ObserveVerification(d.Outcome, duration)
	}
	return c.decide(d)
}

func (c *Core) decide(d Decision) Decision {
	if c.metrics != nil {
		c.metrics.IncOutcome(d.Outcome)
	}
	return d
}

func (c *Core) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Core) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Core) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}
