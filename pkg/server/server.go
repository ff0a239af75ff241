// Package server serves rendered badges over HTTP so they can be previewed
// in a browser before they are committed.
package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/arthur-debert/statbadges/pkg/badges"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"github.com/arthur-debert/statbadges/pkg/template"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server serves the badges found in one output directory.
type Server struct {
	Echo   *echo.Echo
	dir    string
	logger zerolog.Logger
}

// New creates a server for the badges in dir.
func New(dir string) *Server {
	s := &Server{
		Echo:   echo.New(),
		dir:    dir,
		logger: logging.GetLogger("server"),
	}
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.setupMiddleware()
	s.routes()
	return s
}

func (s *Server) setupMiddleware() {
	e := s.Echo

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("Request")
			return nil
		},
	}))

	e.Use(middleware.Recover())
}

func (s *Server) routes() {
	s.Echo.GET("/healthz", s.handleHealth)
	s.Echo.GET("/badges/:name", s.handleBadge)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) handleBadge(c echo.Context) error {
	name := c.Param("name")
	if !slices.Contains(badges.Names, name) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown badge")
	}

	path := filepath.Join(s.dir, badges.FileName(name, themeParam(c.QueryParam("theme"))))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return echo.NewHTTPError(http.StatusNotFound, "badge not generated")
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/svg+xml")
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.File(path)
}

// themeParam maps the theme query parameter to a theme. Anything but light
// or dark selects the alias file.
func themeParam(v string) template.Theme {
	switch template.Theme(v) {
	case template.Light, template.Dark:
		return template.Theme(v)
	default:
		return ""
	}
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Str("dir", s.dir).Msg("Serving badges")
		if err := s.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
