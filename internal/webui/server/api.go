package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"termfolio/internal/content"
	"termfolio/internal/icons"
	"termfolio/internal/system"
	"termfolio/internal/termfmt"
	appver "termfolio/internal/version"
)

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", s.healthHandler)
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/profile", s.profileHandler)
	api.GET("/projects", s.projectsHandler)
	api.GET("/commands", s.commandsHandler)
	api.POST("/terminal/run", s.terminalRunHandler)
	api.POST("/terminal/log", s.terminalLogHandler)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Seconds(),
	})
}

func (s *Server) profileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot().Profile)
}

func (s *Server) projectsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot().Projects)
}

func (s *Server) commandsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot().CommandNames())
}

// runRequest is a terminal command submitted by the front end.
type runRequest struct {
	Command string `json:"command"`
}

// runResponse carries the formatted output. Lines are fragment lists the
// renderer draws directly; Clear tells the front end to wipe the screen
// instead.
type runResponse struct {
	Command string         `json:"command"`
	Found   bool           `json:"found"`
	Clear   bool           `json:"clear,omitempty"`
	Lines   []termfmt.Line `json:"lines"`
}

func (s *Server) terminalRunHandler(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	name := strings.TrimSpace(req.Command)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing command"})
		return
	}
	if strings.EqualFold(name, "clear") {
		c.JSON(http.StatusOK, runResponse{Command: name, Found: true, Clear: true, Lines: []termfmt.Line{}})
		return
	}
	data := s.snapshot()
	out, found := data.Respond(name)
	if !found {
		out = content.NotFound(name)
	}
	c.JSON(http.StatusOK, runResponse{
		Command: name,
		Found:   found,
		Lines:   termfmt.Format(out, icons.Default),
	})
}

// logRequest mirrors the original backend's terminal command log shape.
type logRequest struct {
	Command   string    `json:"command"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) terminalLogHandler(c *gin.Context) {
	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	system.Logger.Info("terminal command", "command", req.Command, "at", req.Timestamp)
	c.JSON(http.StatusOK, gin.H{"logged": true})
}
