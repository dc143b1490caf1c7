package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/frontend-console/internal/config"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresAddress(t *testing.T) {
	_, err := NewServer(http.NotFoundHandler(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoAddress)
}

func TestRunServer_StopsWhenContextDone(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())

	assert.Error(t, err)
}
