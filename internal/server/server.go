// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/akarpov/go-web-skeleton/internal/config"
	"github.com/akarpov/go-web-skeleton/internal/logger"
)

// Server drives the HTTP transport through the application lifecycle.
type Server struct {
	httpServer   *http.Server
	drainTimeout time.Duration
	logger       *logger.Logger

	mu    sync.Mutex
	state State
	hooks map[State][]func()
	addr  string

	shutdownOnce sync.Once
	shutdownErr  error
	drained      chan struct{}
}

// NewServer builds a Server around the given root handler. The lifecycle
// starts in the configuring state.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating new server...")
	if handler == nil {
		return nil, ErrNoHandler
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			IdleTimeout:       cfg.KeepAliveTimeout,
		},
		drainTimeout: cfg.DrainTimeout,
		logger:       logger,
		state:        StateConfiguring,
		hooks:        make(map[State][]func()),
		drained:      make(chan struct{}),
	}, nil
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the listener address once the server is serving, or the
// configured address before that. Useful when the configured port is 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addr != "" {
		return s.addr
	}
	return s.httpServer.Addr
}

// OnTransition registers a hook that runs synchronously when the
// lifecycle enters the given state. Hooks registered for a state that has
// already been entered never run.
func (s *Server) OnTransition(state State, hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks[state] = append(s.hooks[state], hook)
}

// transition advances the lifecycle to the given state and runs its
// hooks. It reports false — without side effects — when the lifecycle is
// already at or past the state, which makes duplicate stop signals no-ops.
func (s *Server) transition(to State) bool {
	s.mu.Lock()
	if to <= s.state {
		s.mu.Unlock()
		return false
	}
	s.state = to
	hooks := s.hooks[to]
	s.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	return true
}

// Run opens the listener and blocks until a stop signal arrives or the
// given context is cancelled, then drains and returns.
//
// SIGTERM, SIGINT and SIGQUIT all trigger the same graceful stop. A
// listener error (such as a busy port) also tears the lifecycle down
// through the regular stopping path so the final log records are still
// written and flushed.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	if !s.transition(StateServing) {
		_ = listener.Close()
		return ErrAlreadyStarted
	}

	s.mu.Lock()
	s.addr = listener.Addr().String()
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")

	select {
	case err := <-serveErr:
		shutdownErr := s.Shutdown()
		if shutdownErr != nil {
			return errors.Join(err, shutdownErr)
		}
		return err
	case <-s.drained:
		// an external Shutdown call completed the lifecycle
		return s.Shutdown()
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server: the listener closes, in-flight
// requests get up to the drain timeout to finish, the final log records
// are emitted and the log sink is flushed. Every call after the first is
// a no-op returning the first call's result.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.shutdownErr = s.shutdown()
		close(s.drained)
	})
	return s.shutdownErr
}

func (s *Server) shutdown() error {
	if !s.transition(StateStopping) {
		return nil
	}
	s.logger.Info().Msg("Application is stopping...")

	ctx := context.Background()
	if s.drainTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.drainTimeout)
		defer cancel()
	}

	// Shutdown returns as soon as the server is idle; an already idle
	// server does not wait out the full drain timeout.
	if err := s.httpServer.Shutdown(ctx); err != nil {
		// connections cut off by the drain timeout are an operational
		// event, not an application failure
		s.logger.Warn().Err(err).Msg("drain timeout exceeded, closing remaining connections")
		if closeErr := s.httpServer.Close(); closeErr != nil {
			s.logger.Warn().Err(closeErr).Msg("error force-closing connections")
		}
	}

	s.transition(StateDrained)
	s.logger.Info().Msg("Application stopped.")

	return s.logger.Close()
}
