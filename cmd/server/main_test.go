package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/janisto/hello-cicd/internal/http/router"
	"github.com/janisto/hello-cicd/internal/platform/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "SHUTDOWN_TIMEOUT", "DOCS_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, strings.TrimSpace(string(body))
}

func TestSmoke(t *testing.T) {
	handler, _ := router.New(testConfig(t), Version)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, `{"message":"Hello CI/CD"}`},
		{"/hello", http.StatusOK, `{"message":"Hello world"}`},
		{"/health", http.StatusOK, `{"status":"healthy","version":"dev"}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, srv.Client(), srv.URL+tt.path)
			if status != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, status)
			}
			if body != tt.body {
				t.Fatalf("expected body %s, got %s", tt.body, body)
			}
		})
	}

	if status, _ := get(t, srv.Client(), srv.URL+"/missing"); status == http.StatusOK {
		t.Fatal("expected non-200 for undefined path")
	}
	resp, err := srv.Client().Post(srv.URL+"/", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST / failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatal("expected non-200 for POST /")
	}
}

func TestNewServerConfiguration(t *testing.T) {
	cfg := testConfig(t)
	cfg.Host = "127.0.0.1"
	cfg.Port = "3000"
	srv := newServer(cfg, http.NotFoundHandler())

	if srv.Addr != "127.0.0.1:3000" {
		t.Errorf("unexpected Addr %q", srv.Addr)
	}
	if srv.ReadTimeout != 5*time.Second {
		t.Errorf("expected ReadTimeout 5s, got %v", srv.ReadTimeout)
	}
	if srv.ReadHeaderTimeout != 2*time.Second {
		t.Errorf("expected ReadHeaderTimeout 2s, got %v", srv.ReadHeaderTimeout)
	}
	if srv.WriteTimeout != 10*time.Second {
		t.Errorf("expected WriteTimeout 10s, got %v", srv.WriteTimeout)
	}
	if srv.IdleTimeout != 60*time.Second {
		t.Errorf("expected IdleTimeout 60s, got %v", srv.IdleTimeout)
	}
	if srv.MaxHeaderBytes != 64<<10 {
		t.Errorf("expected MaxHeaderBytes 64KB, got %d", srv.MaxHeaderBytes)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t)
	handler, _ := router.New(cfg, Version)
	srv := newServer(cfg, handler)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln, time.Second) }()

	status, body := get(t, http.DefaultClient, "http://"+ln.Addr().String()+"/hello")
	if status != http.StatusOK || body != `{"message":"Hello world"}` {
		t.Fatalf("unexpected response %d %s", status, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for shutdown")
	}
}

func TestServeReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_ = ln.Close()

	srv := newServer(testConfig(t), http.NotFoundHandler())
	err = serve(context.Background(), srv, ln, time.Second)
	if err == nil {
		t.Fatal("expected error from closed listener")
	}
}

func TestVersionVariable(t *testing.T) {
	if Version != "dev" {
		t.Errorf("expected default Version 'dev', got %q", Version)
	}
}
