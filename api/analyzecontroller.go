package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"veridect/types"
)

func (s *Server) registerAnalyzeRoutes(r *gin.Engine) {
	r.POST("/analyze", s.handleAnalyze)
	r.POST("/analyze/file", s.handleAnalyzeFile)
}

// AnalyzeRequest runs the full pipeline: extraction (for URLs),
// language normalization, cleaning and classification. Exactly one of
// Text or URL must be set. Lang is an optional source-language hint;
// empty or "auto" runs detection.
type AnalyzeRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Lang string `json:"lang"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	if (req.Text == "") == (req.URL == "") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_body",
			"message": "provide exactly one of 'text' or 'url'",
		})
		return
	}

	var result *types.AnalysisResult
	var err error
	if req.URL != "" {
		result, err = s.pipeline.AnalyzeURL(c.Request.Context(), req.URL, req.Lang)
	} else {
		result, err = s.pipeline.AnalyzeText(c.Request.Context(), req.Text, req.Lang)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleAnalyzeFile accepts a multipart upload under the "file" field
// and runs it through the full pipeline, dispatching extraction on the
// file's extension.
func (s *Server) handleAnalyzeFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": "missing 'file' upload"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}
	defer file.Close()

	result, err := s.pipeline.AnalyzeFile(c.Request.Context(), header.Filename, file, c.PostForm("lang"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
