package main

import (
	"context"
	"sync"

	"github.com/labstack/echo/v5"
)

// statusServer exposes a tiny read-only view of training progress while a
// long-running train invocation is in flight. It is optional: the driver
// works fine without it, this just makes it pollable over HTTP.
type statusServer struct {
	echo *echo.Echo

	mu   sync.Mutex
	loss float32
	done int64
}

func newStatusServer() *statusServer {
	s := &statusServer{echo: echo.New()}
	s.echo.GET("/status", s.handleStatus)
	return s
}

func (s *statusServer) Start(ctx context.Context, addr string) error {
	sc := echo.StartConfig{Address: addr}
	return sc.Start(ctx, s.echo)
}

func (s *statusServer) update(loss float32, done int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loss = loss
	s.done = done
}

func (s *statusServer) handleStatus(c *echo.Context) error {
	s.mu.Lock()
	loss, done := s.loss, s.done
	s.mu.Unlock()

	return c.JSON(200, map[string]any{
		"loss":          loss,
		"examples_done": done,
	})
}
