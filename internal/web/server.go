package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sghaida/patterns/internal/config"
)

// Server is the HTTP front end of the catalogue.
type Server struct {
	cfg     config.HTTPConfig
	logger  *zap.Logger
	metrics *Metrics
	router  *gin.Engine
}

// New builds the router. It does not start listening; see Run. The gin mode is
// process-wide, so callers set it with gin.SetMode before calling New.
func New(cfg config.HTTPConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
		router:  gin.New(),
	}

	// Access log and panic log, RFC3339 in UTC.
	s.router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	s.router.Use(ginzap.RecoveryWithZap(logger, true))
	s.router.SetHTMLTemplate(parseTemplates())

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "online")
	})

	s.router.GET("/composite", s.getComposite)
	s.router.POST("/composite/calculate", s.postCompositeCalculate)
	s.router.GET("/decorator", s.getDecorator)
	s.router.POST("/decorator/apply", s.postDecoratorApply)
	s.router.GET("/widgets/:family", s.getWidgets)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/strategy/:op", s.getStrategy)
		v1.GET("/notifications/:platform", s.getNotification)
	}

	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on cfg.Addr until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
