package core

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPShutdownTimeout bounds Stop when the caller's context has no deadline
const HTTPShutdownTimeout = 5 * time.Second

type ServerConfig struct {
	Addr     string
	Gatherer prometheus.Gatherer
	// EnablePprof mounts net/http/pprof under /debug/pprof/
	EnablePprof bool
}

// ManagedServer serves /metrics and /health and can be started and stopped
// while the desktop app runs.
type ManagedServer struct {
	config     *ServerConfig
	httpServer *http.Server
	mux        *http.ServeMux
	listener   net.Listener

	mu        sync.Mutex
	isRunning bool
}

func NewManagedServer(config *ServerConfig) *ManagedServer {
	log.Printf("[Server] Creating metrics server on %s", config.Addr)
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}
	s := &ManagedServer{config: config}
	s.mux = s.setupRoutes()
	return s
}

func (s *ManagedServer) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	if s.config.EnablePprof {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		log.Printf("[Server] pprof enabled at /debug/pprof/")
	}
	return mux
}

// Start binds the listener and serves in the background
func (s *ManagedServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		log.Printf("[Server] Server already running")
		return nil
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func(srv *http.Server) {
		log.Printf("[Server] Serving metrics on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Server] Server error: %v", err)
		}
	}(s.httpServer)

	s.isRunning = true
	return nil
}

func (s *ManagedServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		log.Printf("[Server] Server already stopped")
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, HTTPShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Graceful shutdown failed: %v, forcing close", err)
		if closeErr := s.httpServer.Close(); closeErr != nil {
			log.Printf("[Server] Force close error: %v", closeErr)
		}
	}

	s.isRunning = false
	log.Printf("[Server] Server stopped")
	return nil
}

func (s *ManagedServer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// Addr returns the bound address, or the configured one before Start
func (s *ManagedServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Addr
}
