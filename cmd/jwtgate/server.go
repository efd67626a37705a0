package main

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/elgris/jwtgate"
	"github.com/elgris/jwtgate/internal/config"
)

const versionText = "Users API gate, written in Go"

// newHandler mounts the API behind the gate. The metrics endpoint, when
// enabled, is served outside it.
func newHandler(cfg *config.Config, logger logrus.FieldLogger, reg *prometheus.Registry) (http.Handler, error) {
	opts := []jwtgate.Option{
		jwtgate.WithSecret(cfg.JWT.Secret.Bytes()),
		jwtgate.WithLogger(jwtgate.NewLogrusLogger(logger)),
		jwtgate.WithFaultHandler(faultHandler(logger)),
	}

	if cfg.Metrics.Enabled {
		metrics, err := jwtgate.NewPrometheusMetrics(reg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, jwtgate.WithMetrics(metrics))
	}

	gate, err := jwtgate.New(opts...)
	if err != nil {
		return nil, err
	}

	api := http.NewServeMux()
	api.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(versionText))
	})
	api.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		claims, err := jwtgate.GetClaims(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(claims)
	})

	root := http.NewServeMux()
	root.Handle("/", gate.Handler(api))
	if cfg.Metrics.Enabled {
		root.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return root, nil
}

// faultHandler logs the token fault before answering 500.
func faultHandler(logger logrus.FieldLogger) jwtgate.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("token fault")
		jwtgate.DefaultFaultHandler(w, r, err)
	}
}
