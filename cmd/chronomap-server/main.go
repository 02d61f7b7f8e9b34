// Package main implements the chronomap web server: a JSON API over the
// timezone engine plus optional store-backed persistence for saved zones,
// contacts, settings and meeting participants.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/chronomap-dev/chronomap/pkg/store"
)

var (
	port    = flag.String("port", "8080", "Port for web server (or set PORT)")
	dbPath  = flag.String("db", "", "Database path; persistence routes disabled when empty (or set CHRONOMAP_DB)")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	version = flag.Bool("version", false, "Show version")
)

type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{requests: make(map[string][]time.Time)}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	var valid []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	// Rate limit: 60 requests per minute per IP.
	if len(valid) >= 60 {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

func main() {
	flag.Parse()

	if *version {
		fmt.Println("chronomap server v1.2.0")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if envPort := os.Getenv("PORT"); envPort != "" && *port == "8080" {
		*port = envPort
	}
	if *dbPath == "" {
		*dbPath = os.Getenv("CHRONOMAP_DB")
	}

	srv := &server{logger: logger, limiter: newRateLimiter()}

	if *dbPath != "" {
		st, err := store.Open(store.Config{Path: *dbPath}, logger)
		if err != nil {
			logger.Error("store initialization failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := st.Close(); err != nil {
				logger.Error("failed to close store", "error", err)
			}
		}()
		srv.store = st
	} else {
		logger.Info("no database configured, persistence routes disabled")
	}

	router := mux.NewRouter()
	srv.routes(router)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort("", *port),
		Handler:      srv.withMiddleware(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", *port)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}
