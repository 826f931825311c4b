package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/scout/backend/pkg/config"
	"github.com/wonny/scout/backend/pkg/logger"
)

func testServerConfig() *config.Config {
	return &config.Config{
		Port:     "0",
		Env:      "development",
		LogLevel: "error",
		HTTP: config.HTTPConfig{
			ReadTimeout:     time.Second,
			WriteTimeout:    2 * time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
	}
}

func TestServer_UsesConfiguredTimeouts(t *testing.T) {
	cfg := testServerConfig()
	s := New(cfg, logger.New(cfg), http.NotFoundHandler())

	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, time.Second, s.httpServer.IdleTimeout)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	cfg := testServerConfig()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := New(cfg, logger.New(cfg), handler)

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, ready) }()

	var addr string
	select {
	case addr = <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	cfg := testServerConfig()
	cfg.Port = "not-a-port"
	s := New(cfg, logger.New(cfg), http.NotFoundHandler())

	err := s.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
