/*
Package jwtgate provides an HTTP authentication gate for HS256 bearer tokens.

The gate reads "Authorization: Bearer <token>", verifies the token against a
shared secret and stores the claims in the request context. It follows the
Core-Adapter pattern: package core makes the decision, and this package, along
with framework/echo, framework/gin and integrations/grpc, adapts it to a
transport.

# Quick Start

	import (
	    "github.com/elgris/jwtgate"
	)

	func main() {
	    gate, err := jwtgate.New(
	        jwtgate.WithSecret([]byte(os.Getenv("JWT_SECRET"))),
	    )
	    if err != nil {
	        log.Fatalf("failed to create gate: %v", err)
	    }

	    http.Handle("/users/me", gate.Handler(http.HandlerFunc(me)))
	    log.Fatal(http.ListenAndServe(":8083", nil))
	}

	func me(w http.ResponseWriter, r *http.Request) {
	    claims := jwtgate.MustGetClaims(r.Context())
	    fmt.Fprintf(w, "hello %s", claims.Subject())
	}

# Decisions

Every request ends in exactly one of four ways:

  - OPTIONS: the response status is set to 200 and next is called without
    any token check. The Authorization header is ignored.
  - Missing header, or a header not starting with "Bearer " (case-sensitive):
    401 with body "Missing or invalid Authorization header". next is not called.
  - Bad signature: 401 with body "Invalid token". next is not called.
  - Valid token: the claims are stored in the request context and next is
    called.

Any other verification failure (a malformed token, an expired one, an
unexpected algorithm) is a token fault. It is not turned into a 401: it goes
to the fault handler, which answers 500 by default. Use WithFaultHandler to
change that.

Note that OPTIONS does both things: it marks the response 200 and still runs
next. If next writes its own status, that status wins.

# Claims

	claims, err := jwtgate.GetClaims(r.Context())
	if err != nil {
	    // the gate did not run, or the request was OPTIONS
	}
	role, _ := claims.Get("role")

# Logging and Metrics

WithLogger accepts *slog.Logger directly, or the adapters NewLogrusLogger,
NewZapLogger and NewZerologLogger. The secret and the raw token are never
logged.

	metrics, err := jwtgate.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	if err != nil {
	    log.Fatal(err)
	}
	gate, err := jwtgate.New(
	    jwtgate.WithSecret(secret),
	    jwtgate.WithMetrics(metrics),
	    jwtgate.WithTracerProvider(otel.GetTracerProvider()),
	)

# Thread Safety

A Gate is immutable after New and safe for concurrent use.
*/
package jwtgate
