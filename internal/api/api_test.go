package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jroosing/dnsheader/internal/api"
	"github.com/jroosing/dnsheader/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *api.Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	return api.New(cfg, nil, nil)
}

func do(s *api.Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestNew_PanicsWithoutConfig(t *testing.T) {
	assert.Panics(t, func() { api.New(nil, nil, nil) })
}

func TestServer_Addr(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.API.Host = "::1"; c.API.Port = 9999 })
	assert.Equal(t, "[::1]:9999", s.Addr())
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/v1/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/v1/stats", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodPost, "/api/v1/header/decode", `{"hex":"000000000000000000000000"}`, nil).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodPost, "/api/v1/header/encode", `{"id":1}`, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/api/v1/zones", "", nil).Code)
}

func TestServer_RecordsCodecStats(t *testing.T) {
	s := newTestServer(t, nil)

	do(s, http.MethodPost, "/api/v1/header/decode", `{"hex":"000000000000000000000000"}`, nil)
	do(s, http.MethodPost, "/api/v1/header/encode", `{"rcode":12}`, nil)

	snap := s.CodecStats().Snapshot()
	assert.Equal(t, uint64(1), snap.DecodesTotal)
	assert.Equal(t, uint64(1), snap.EncodesFailed)
}

func TestServer_Swagger(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/header/decode")
	assert.Contains(t, w.Body.String(), "dnshdr Header Inspection API")
}

func TestServer_APIKey(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.API.APIKey = "k3y" })

	assert.Equal(t, http.StatusUnauthorized, do(s, http.MethodGet, "/api/v1/health", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(s, http.MethodPost, "/api/v1/header/decode", `{"hex":"00"}`, map[string]string{"X-API-Key": "nope"}).Code)
	assert.Equal(t, http.StatusOK,
		do(s, http.MethodGet, "/api/v1/health", "", map[string]string{"X-API-Key": "k3y"}).Code)
}

func TestServer_BodyLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.API.MaxBodyBytes = 16 })

	w := do(s, http.MethodPost, "/api/v1/header/decode", `{"hex":"AB CD 86 A0 00 01 01 02 03 04 05 06"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.API.Port = 0 })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
