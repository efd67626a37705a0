package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elgris/jwtgate/internal/config"
	"github.com/elgris/jwtgate/internal/testtoken"
)

var testSecret = []byte("myfancysecret")

func newTestServer(t *testing.T, metricsEnabled bool) (*httptest.Server, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)

	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: config.Secret(testSecret)},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
		Metrics: config.MetricsConfig{Enabled: metricsEnabled, Path: "/metrics"},
	}
	handler, err := newHandler(cfg, logger, prometheus.NewRegistry())
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, &logs
}

func get(t *testing.T, url, authorization string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	srv, logs := newTestServer(t, true)
	bearer := "Bearer " + testtoken.Sign(t, testSecret, map[string]any{"sub": "johnd", "username": "johnd"})

	t.Run("version sits behind the gate", func(t *testing.T) {
		status, body := get(t, srv.URL+"/version", "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Missing or invalid Authorization header", body)

		status, body = get(t, srv.URL+"/version", bearer)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, versionText, body)
	})

	t.Run("users/me echoes the claims", func(t *testing.T) {
		status, body := get(t, srv.URL+"/users/me", bearer)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"sub":"johnd","username":"johnd"}`, body)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := "Bearer " + testtoken.Sign(t, []byte("other"), map[string]any{"sub": "johnd"})
		status, body := get(t, srv.URL+"/users/me", other)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid token", body)
	})

	t.Run("token fault is logged and answered with 500", func(t *testing.T) {
		status, _ := get(t, srv.URL+"/users/me", "Bearer not-a-jwt")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, logs.String(), "token fault")
		assert.NotContains(t, logs.String(), string(testSecret))
	})

	t.Run("metrics are outside the gate", func(t *testing.T) {
		status, body := get(t, srv.URL+"/metrics", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `jwtgate_requests_total{outcome="authenticated"}`)
	})
}

func TestServer_MetricsDisabled(t *testing.T) {
	srv, _ := newTestServer(t, false)

	status, _ := get(t, srv.URL+"/metrics", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSetupLogger(t *testing.T) {
	logger, err := setupLogger(config.LoggingConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = setupLogger(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}
