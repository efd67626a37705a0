/*
Package core provides the framework-agnostic authentication gate used by the
net/http, Echo, Gin and gRPC adapters.

Core.Check takes the request method and the raw Authorization header value
and returns a Decision. Adapters only translate a Decision into their
transport:

	┌──────────────────────────────────────────────┐
	│  Transport adapters (net/http, Echo, Gin,    │
	│  gRPC): read method + header, apply Decision │
	└──────────────────────┬───────────────────────┘
	                       │
	                       ▼
	┌──────────────────────────────────────────────┐
	│  Core (THIS PACKAGE)                         │
	│  • OPTIONS pass-through                      │
	│  • "Bearer " prefix check                    │
	│  • logging, metrics, tracing                 │
	└──────────────────────┬───────────────────────┘
	                       │
	                       ▼
	┌──────────────────────────────────────────────┐
	│  Verifier (validator package)                │
	│  Verified | SignatureInvalid | Fault         │
	└──────────────────────────────────────────────┘

# Decisions

The rules are applied in order:

 1. Method OPTIONS: DecisionPreflight with Status 200. The adapter records
    the 200 and still calls the next handler.
 2. Header absent or not starting with the case-sensitive "Bearer ":
    DecisionRejected, 401, "Missing or invalid Authorization header".
 3. The remainder is verified:
    - verified: DecisionAuthenticated with the claims
    - signature mismatch: DecisionRejected, 401, "Invalid token"
    - anything else: DecisionFault. Err is a *TokenFault that adapters pass
      to the transport's own fault handling, never to a 401.

Only signature mismatches become client errors. A malformed or expired token
surfaces as a server-side fault. Keep it that way: callers that depend on
this gate rely on the distinction.

# Claims in context

	ctx = core.SetClaims(ctx, claims)

	claims, err := core.GetClaims(ctx)
	if errors.Is(err, core.ErrClaimsNotFound) {
	    // request did not pass through the gate
	}
*/
package core
