package jwtgate

import (
	"fmt"
	"net/http"

	"github.com/elgris/jwtgate/core"
)

// Gate is the net/http authentication gate. It is safe for concurrent use.
type Gate struct {
	core          *core.Core
	rejectHandler ErrorHandler
	faultHandler  ErrorHandler
	logger        Logger

	// Temporary fields used during construction
	verifier core.Verifier
	metrics  core.Metrics
	coreOpts []core.Option
}

// New constructs a new Gate with the supplied options. A verifier is
// required, through WithSecret or WithVerifier.
//
// Example:
//
//	gate, err := jwtgate.New(
//	    jwtgate.WithSecret([]byte(os.Getenv("JWT_SECRET"))),
//	    jwtgate.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatalf("failed to create gate: %v", err)
//	}
//	http.Handle("/", gate.Handler(usersHandler))
func New(opts ...Option) (*Gate, error) {
	g := &Gate{}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if g.verifier == nil {
		return nil, fmt.Errorf("invalid gate configuration: %w", ErrVerifierNil)
	}

	g.applyDefaults()

	if err := g.createCore(); err != nil {
		return nil, fmt.Errorf("failed to create core: %w", err)
	}

	return g, nil
}

func (g *Gate) applyDefaults() {
	if g.rejectHandler == nil {
		g.rejectHandler = DefaultRejectHandler
	}
	if g.faultHandler == nil {
		g.faultHandler = DefaultFaultHandler
	}
}

func (g *Gate) createCore() error {
	coreOpts := []core.Option{core.WithVerifier(g.verifier)}
	if g.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(g.logger))
	}
	if g.metrics != nil {
		coreOpts = append(coreOpts, core.WithMetrics(g.metrics))
	}
	coreOpts = append(coreOpts, g.coreOpts...)

	c, err := core.New(coreOpts...)
	if err != nil {
		return err
	}
	g.core = c
	return nil
}

// Core returns the framework-agnostic gate, for sharing one configuration
// with the Echo, Gin or gRPC adapters.
func (g *Gate) Core() *core.Core {
	return g.core
}

// Handler wraps next with the gate.
//
// OPTIONS requests get a 200 status and are still passed on to next. The
// 200 is only a default: if next writes its own status, that status is sent.
//
// Requests without "Authorization: Bearer <token>" and requests whose token
// signature does not match are answered by the reject handler with 401.
//
// Any other verification failure is handed to the fault handler, which
// answers 500 by default. It is never turned into a 401.
func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := g.core.Check(r.Context(), r.Method, r.Header.Get(core.AuthorizationHeader))

		switch d.Kind {
		case core.DecisionPreflight:
			pw := &preflightWriter{ResponseWriter: w, status: d.Status}
			next.ServeHTTP(pw, r)
			pw.writePendingStatus()
		case core.DecisionAuthenticated:
			next.ServeHTTP(w, r.WithContext(core.SetClaims(r.Context(), d.Claims)))
		case core.DecisionRejected:
			g.rejectHandler(w, r, d.Err)
		default:
			if g.logger != nil {
				g.logger.Debug("handing token fault to the fault handler",
					"method", r.Method,
					"path", r.URL.Path)
			}
			g.faultHandler(w, r, d.Err)
		}
	})
}

// preflightWriter holds a default status that is only written if the
// wrapped handler does not write one itself.
type preflightWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *preflightWriter) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *preflightWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(w.status)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *preflightWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *preflightWriter) writePendingStatus() {
	if !w.wroteHeader {
		w.WriteHeader(w.status)
	}
}
