// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-req-validator/internal/config"
	"github.com/MKhiriev/go-req-validator/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

var teapot = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(teapot, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoAddress)

	_, err = NewServer(nil, config.Server{HTTPAddress: "localhost:3024"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "localhost:3024",
		RequestTimeout:  3 * time.Second,
		ShutdownTimeout: 4 * time.Second,
	}

	srv, err := NewServer(teapot, cfg, logger.Nop())
	require.NoError(t, err)

	hs := srv.(*server).httpServer
	assert.Equal(t, "localhost:3024", hs.server.Addr)
	assert.Equal(t, 3*time.Second, hs.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, hs.server.WriteTimeout)
	assert.Equal(t, 4*time.Second, hs.shutdownTimeout)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(teapot, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + addr + "/")
	assert.Error(t, err)
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(teapot, config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
