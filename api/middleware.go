package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func route(ctx *gin.Context) string {
	if r := ctx.FullPath(); r != "" {
		return r
	}
	return "unmatched"
}

// logRequests logs one entry per request.
func (s *Server) logRequests(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	status := ctx.Writer.Status()
	entry := s.log.WithFields(logrus.Fields{
		"method":  ctx.Request.Method,
		"path":    ctx.Request.URL.Path,
		"status":  status,
		"latency": time.Since(start),
		"client":  ctx.ClientIP(),
	})
	switch {
	case status >= http.StatusInternalServerError:
		entry.Error("request failed")
	case status >= http.StatusBadRequest:
		entry.Warn("request rejected")
	default:
		entry.Info("request served")
	}
}

// measure records the request metrics.
func (s *Server) measure(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	s.metrics.RecordRequest(route(ctx), ctx.Request.Method, strconv.Itoa(ctx.Writer.Status()), time.Since(start))
}

// limit rejects clients exceeding their request rate.
func (s *Server) limit(ctx *gin.Context) {
	if s.limiter == nil {
		return
	}
	if !s.limiter.Allow(ctx.ClientIP()) {
		s.metrics.RecordRateLimited()
		renderError(ctx, http.StatusTooManyRequests, "rate_limited", "too many requests")
		ctx.Abort()
	}
}
