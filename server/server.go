// Package server is the local presentation surface of igcompare: an HTML page
// with the two paste boxes, a JSON endpoint and the CSV download. It binds to
// loopback by default and makes no outbound calls.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"igcompare/config"
	"igcompare/core"
	"igcompare/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	session *core.Session
	filter  *core.OrgFilter
	locale  language.Tag
	logger  zerolog.Logger
}

func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:     cfg,
		session: core.NewSession(),
		filter:  cfg.Filter(),
		locale:  cfg.Locale(),
		logger:  logging.GetLogger("server"),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.handleIndex)
	r.POST("/", s.handleIndexSubmit)
	r.POST("/api/compare", s.handleCompare)
	r.POST("/export", s.handleExport)
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine = r

	s.logger.Debug().
		Strs("org_hints", s.filter.Hints()).
		Bool("exclude_by_default", cfg.OrgFilter.ExcludeByDefault).
		Str("locale", s.locale.String()).
		Msg("Server configured")

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info().Str("addr", s.cfg.Server.Addr).Msg("Listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}
