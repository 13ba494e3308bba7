// Package api exposes the Hohmann transfer computations over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Config holds the server settings.
type Config struct {
	RateLimit       float64 // requests per second and per client, zero disables the limiter
	Burst           int
	MetricsPath     string
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		RateLimit:       10,
		Burst:           20,
		MetricsPath:     "/metrics",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server serves the transfer API.
type Server struct {
	cfg     Config
	router  *gin.Engine
	log     logrus.FieldLogger
	metrics *Metrics
	limiter *IPRateLimiter
}

// NewServer registers the routes. Metrics are registered with reg and served from the
// provided gatherer.
func NewServer(cfg Config, log logrus.FieldLogger, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		cfg:     cfg,
		router:  gin.New(),
		log:     log,
		metrics: NewMetrics(reg),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = NewIPRateLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	s.router.Use(gin.Recovery(), s.logRequests, s.measure, s.limit)
	s.RegisterHandler(s.router)
	if cfg.MetricsPath != "" {
		s.router.GET(cfg.MetricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	return s
}

// RegisterHandler registers the transfer routes.
func (s *Server) RegisterHandler(r gin.IRouter) {
	r.POST("/simple", s.SimpleTransfer)
	r.POST("/interplanetary", s.InterplanetaryTransfer)
	r.GET("/bodies", s.GetBodies)
	r.GET("/transfer", s.CatalogTransfer)
	r.GET("/healthz", s.Health)
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("server start up")
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server down")
	return nil
}
