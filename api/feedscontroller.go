package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"veridect/feeds"
)

func (s *Server) registerFeedRoutes(r *gin.Engine) {
	r.POST("/scan", s.handleScanFeed)
}

// ScanRequest asks the service to fetch a feed and classify its
// latest items. Feed may be a preset name or a direct URL.
type ScanRequest struct {
	Feed  string `json:"feed"`
	Count int    `json:"count"`
}

func (s *Server) handleScanFeed(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	if req.Feed == "" {
		req.Feed = feeds.DefaultPreset
	}

	feedURL := feeds.ResolveFeedURL(req.Feed)
	result, err := s.scanner.Scan(c.Request.Context(), feedURL, req.Count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "feed_fetch_failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
