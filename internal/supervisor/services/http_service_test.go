// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// mockHTTPServer is a test double for HTTPServer interface.
type mockHTTPServer struct {
	listenAndServeErr    error
	listenAndServeBlock  bool
	shutdownErr          error
	listenAndServeCount  atomic.Int32
	shutdownCount        atomic.Int32
	listenAndServeCalled chan struct{}
	stopCh               chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		listenAndServeCalled: make(chan struct{}, 1),
		stopCh:               make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.listenAndServeCount.Add(1)

	// Signal that we've started
	select {
	case m.listenAndServeCalled <- struct{}{}:
	default:
	}

	// Return error immediately if set
	if m.listenAndServeErr != nil {
		return m.listenAndServeErr
	}

	// If blocking, wait until stopped
	if m.listenAndServeBlock {
		<-m.stopCh
		return http.ErrServerClosed
	}

	return nil
}

func (m *mockHTTPServer) Shutdown(ctx context.Context) error {
	m.shutdownCount.Add(1)

	// Unblock ListenAndServe if it's blocking
	close(m.stopCh)

	if m.shutdownErr != nil {
		return m.shutdownErr
	}
	return nil
}

func (m *mockHTTPServer) ListenAndServeCallCount() int {
	return int(m.listenAndServeCount.Load())
}

func (m *mockHTTPServer) ShutdownCallCount() int {
	return int(m.shutdownCount.Load())
}

func newTestService(server HTTPServer, timeout time.Duration) *HTTPServerService {
	return NewHTTPServerService(server, "127.0.0.1:8080", timeout, zerolog.Nop())
}

func TestNewHTTPServerService(t *testing.T) {
	var _ suture.Service = (*HTTPServerService)(nil)

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit timeout", 3 * time.Second, 3 * time.Second},
		{"zero uses default", 0, DefaultShutdownTimeout},
		{"negative uses default", -5 * time.Second, DefaultShutdownTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMockHTTPServer(), tt.timeout)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.addr != "127.0.0.1:8080" {
				t.Errorf("addr = %q, want 127.0.0.1:8080", svc.addr)
			}
		})
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Run("shuts down gracefully on context cancellation", func(t *testing.T) {
		server := newMockHTTPServer()
		server.listenAndServeBlock = true
		svc := newTestService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		// Wait for server to start
		select {
		case <-server.listenAndServeCalled:
		case <-time.After(time.Second):
			t.Fatal("server did not start")
		}

		// Cancel context
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Serve did not return after context cancellation")
		}

		if server.ListenAndServeCallCount() != 1 {
			t.Errorf("expected 1 ListenAndServe call, got %d", server.ListenAndServeCallCount())
		}
		if server.ShutdownCallCount() != 1 {
			t.Errorf("expected 1 Shutdown call, got %d", server.ShutdownCallCount())
		}
	})

	t.Run("returns error on startup failure", func(t *testing.T) {
		expectedErr := errors.New("bind: address already in use")
		server := newMockHTTPServer()
		server.listenAndServeErr = expectedErr
		svc := newTestService(server, time.Second)

		ctx := context.Background()
		err := svc.Serve(ctx)

		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error containing %v, got %v", expectedErr, err)
		}
	})

	t.Run("returns shutdown error if shutdown fails", func(t *testing.T) {
		shutdownErr := errors.New("shutdown timeout")
		server := newMockHTTPServer()
		server.listenAndServeBlock = true
		server.shutdownErr = shutdownErr
		svc := newTestService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		// Wait for server to start
		<-server.listenAndServeCalled

		// Cancel context
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, shutdownErr) {
				t.Errorf("expected shutdown error, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Serve did not return")
		}
	})
}

func TestHTTPServerService_String(t *testing.T) {
	server := newMockHTTPServer()
	svc := newTestService(server, time.Second)

	if got := svc.String(); got != "http-server" {
		t.Errorf("String() = %q, want %q", got, "http-server")
	}
}

func TestHTTPServerService_WithSupervisor(t *testing.T) {
	server := newMockHTTPServer()
	server.listenAndServeBlock = true
	svc := newTestService(server, time.Second)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	errCh := sup.ServeBackground(ctx)

	// Wait for server to start
	select {
	case <-server.listenAndServeCalled:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}

	if server.ListenAndServeCallCount() < 1 {
		t.Error("server ListenAndServe was not called")
	}

	cancel()
	<-errCh

	// Verify shutdown was called
	if server.ShutdownCallCount() < 1 {
		t.Error("server Shutdown was not called")
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	server := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	svc := newTestService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
