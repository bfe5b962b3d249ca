// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ HTTPServer     = (*http.Server)(nil)
)

// freeAddr reserves a loopback port and releases it for the server to bind.
func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func waitListening(t *testing.T, addr string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("server on %s never accepted connections: %v", addr, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// stuckServer serves forever and only gives up shutting down when its
// context expires.
type stuckServer struct {
	stop chan struct{}
}

func (s *stuckServer) ListenAndServe() error {
	<-s.stop
	return http.ErrServerClosed
}

func (s *stuckServer) Shutdown(ctx context.Context) error {
	<-ctx.Done()
	close(s.stop)
	return ctx.Err()
}

func TestNewHTTPServerService_ShutdownTimeout(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"configured", 3 * time.Second, 3 * time.Second},
		{"zero uses default", 0, defaultShutdownTimeout},
		{"negative uses default", -time.Second, defaultShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHTTPServerService(&http.Server{}, tt.in)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q", svc.String())
			}
		})
	}
}

func TestHTTPServerService_DrainsInFlightRequests(t *testing.T) {
	addr := freeAddr(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/test", func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		_, _ = io.WriteString(w, "ok")
	})
	svc := NewHTTPServerService(&http.Server{Addr: addr, Handler: mux}, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- svc.Serve(ctx) }()
	waitListening(t, addr)

	type result struct {
		body string
		err  error
	}
	reqDone := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + addr + "/api/test")
		if err != nil {
			reqDone <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		reqDone <- result{body: string(b), err: err}
	}()

	<-entered
	cancel()

	select {
	case err := <-serveErr:
		t.Fatalf("Serve returned %v before the in-flight request finished", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	res := <-reqDone
	if res.err != nil || res.body != "ok" {
		t.Fatalf("in-flight request = %q, %v", res.body, res.err)
	}
	select {
	case err := <-serveErr:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after draining")
	}

	if _, err := net.DialTimeout("tcp", addr, 100*time.Millisecond); err == nil {
		t.Error("listener still accepting after shutdown")
	}
}

func TestHTTPServerService_ShutdownBoundedByTimeout(t *testing.T) {
	svc := NewHTTPServerService(&stuckServer{stop: make(chan struct{})}, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- svc.Serve(ctx) }()

	start := time.Now()
	cancel()

	select {
	case err := <-serveErr:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve returned %v, want a wrapped deadline error", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("shutdown took %v, want about 50ms", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve ignored the shutdown timeout")
	}
}

func TestHTTPServerService_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	svc := NewHTTPServerService(&http.Server{Addr: ln.Addr().String()}, time.Second)
	serveErr := make(chan error, 1)
	go func() { serveErr <- svc.Serve(context.Background()) }()

	select {
	case err := <-serveErr:
		if err == nil || !strings.Contains(err.Error(), "http server failed") {
			t.Errorf("Serve returned %v, want a listener failure", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not report the bind failure")
	}
}

func TestHTTPServerService_RestartedBySupervisor(t *testing.T) {
	// The port is busy on the first attempt and free afterwards.
	blocker, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := blocker.Addr().String()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	sup := suture.New("api-layer", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(NewHTTPServerService(&http.Server{Addr: addr, Handler: mux}, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := sup.ServeBackground(ctx)

	time.Sleep(50 * time.Millisecond)
	_ = blocker.Close()
	waitListening(t, addr)

	resp, err := http.Get("http://" + addr + "/api/health")
	if err != nil {
		t.Fatalf("GET after restart: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	<-errCh
}
