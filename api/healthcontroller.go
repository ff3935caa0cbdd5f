package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthSample is pre-cleaned text scored against a delegated backend
// to verify it actually answers; matches the artifact self-test input.
const healthSample = "breaking news shocking truth doctor know"

const healthCheckTimeout = 10 * time.Second

func (s *Server) registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)
	r.GET("/info", s.handleInfo)
}

// handleHealth reports whether the service can actually classify. For
// a local artifact that means a real transform+predict self-test, not
// a nil check; silent corruption fails here. A delegated backend is
// scored once with a canned sample, so a dead remote fails too.
func (s *Server) handleHealth(c *gin.Context) {
	if s.artifact != nil {
		if err := s.artifact.SelfTest(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"model":  "loaded",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"model":      "loaded",
			"vectorizer": "loaded",
			"model_type": s.artifact.ModelType,
		})
		return
	}

	if s.scorer != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if _, err := s.scorer.Score(ctx, healthSample); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"mode":   "delegated",
				"scorer": s.scorer.Name(),
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"mode":   "delegated",
			"scorer": s.scorer.Name(),
		})
		return
	}

	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status": "unhealthy",
		"model":  "not loaded",
		"error":  "no classifier backend configured",
	})
}

// handleInfo exposes static artifact metadata for display; nothing in
// the classification path reads it.
func (s *Server) handleInfo(c *gin.Context) {
	if s.artifact == nil {
		c.JSON(http.StatusOK, gin.H{
			"mode":   "delegated",
			"scorer": s.scorer.Name(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"model_type": s.artifact.ModelType,
		"version":    s.artifact.Version,
		"labels":     s.artifact.Labels,
		"metrics":    s.artifact.Metrics,
		"vectorizer": gin.H{
			"max_features":    s.artifact.Vectorizer.MaxFeatures,
			"vocabulary_size": len(s.artifact.Vectorizer.Vocabulary),
			"features":        s.artifact.Vectorizer.NumFeatures(),
			"ngram_min":       s.artifact.Vectorizer.NgramMin,
			"ngram_max":       s.artifact.Vectorizer.NgramMax,
		},
	})
}
