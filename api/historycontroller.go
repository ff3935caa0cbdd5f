package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"veridect/history"
)

func (s *Server) registerHistoryRoutes(r *gin.Engine) {
	g := r.Group("/history")
	g.GET("", s.handleHistory)
	g.GET("/stats", s.handleHistoryStats)
	g.GET("/timeline", s.handleHistoryTimeline)
	g.DELETE("", s.handleHistoryClear)
}

func (s *Server) handleHistory(c *gin.Context) {
	records := s.recorder.Records()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
	})
}

func (s *Server) handleHistoryStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.recorder.Aggregate())
}

// handleHistoryTimeline groups records into buckets for the
// dashboard's timeline chart. Only hour-of-day bucketing is exposed
// over HTTP.
func (s *Server) handleHistoryTimeline(c *gin.Context) {
	bucket := c.DefaultQuery("bucket", "hour")
	if bucket != "hour" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_bucket",
			"message": "supported buckets: hour",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bucket": bucket,
		"counts": s.recorder.Timeline(history.HourOfDay),
	})
}

func (s *Server) handleHistoryClear(c *gin.Context) {
	s.recorder.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
