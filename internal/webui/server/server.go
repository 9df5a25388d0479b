// Package server exposes the portfolio over HTTP: profile, projects and a
// terminal endpoint that runs canned commands through the formatting
// engine and returns fragment lines as JSON. The React front end that
// consumes this API lives elsewhere; this process only serves data.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"termfolio/internal/content"
	"termfolio/internal/system"
)

type Server struct {
	Addr  string
	Watch bool // reload content.json when it changes on disk

	mu      sync.RWMutex
	data    content.File
	started time.Time
}

// Start loads content, mounts the API and serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	f, err := content.Load()
	if err != nil {
		return err
	}
	s.data = f
	s.started = time.Now()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mountAPI(r)

	if s.Watch {
		stop, err := s.watchContent(ctx)
		if err != nil {
			system.Logger.Warn("content watch unavailable", "err", err)
		} else {
			defer func() { _ = stop() }()
		}
	}

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// snapshot returns the current content under the read lock. Handlers work
// on the copy so a concurrent reload never races a response.
func (s *Server) snapshot() content.File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}
