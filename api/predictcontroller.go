package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"veridect/types"
)

// testSample is the canned clickbait text behind GET /test.
const testSample = "Breaking news! Scientists discovered shocking truth that doctors don't want you to know!"

func (s *Server) registerPredictRoutes(r *gin.Engine) {
	r.POST("/predict", s.handlePredict)
	r.GET("/test", s.handleTest)
}

// PredictRequest is the scoring request body. Cleaned marks text that
// already went through a cleaning pass on the sending deployment; the
// raw-text bounds and the cleaner are skipped for it, since the sender
// validated the original input before cleaning shrank it.
type PredictRequest struct {
	Text    string `json:"text"`
	Cleaned bool   `json:"cleaned,omitempty"`
}

// PredictResponse is the scoring contract consumed by the dashboard
// and by RemoteScorer instances in other deployments.
type PredictResponse struct {
	Prediction    int                 `json:"prediction"`
	Label         types.Label         `json:"label"`
	Confidence    float64             `json:"confidence"`
	Probabilities types.Probabilities `json:"probabilities"`
	TextLength    int                 `json:"text_length"`
	CleanedLength int                 `json:"cleaned_length"`
	Model         string              `json:"model"`
}

// handlePredict scores raw text without extraction or translation:
// the caller is expected to hand over working-language text. The
// verdict is not recorded; the scoring endpoint is stateless.
func (s *Server) handlePredict(c *gin.Context) {
	if s.scorer == nil {
		respondError(c, types.ErrModelNotLoaded)
		return
	}

	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	length := utf8.RuneCountInString(req.Text)
	cleaned := req.Text
	if !req.Cleaned {
		switch {
		case length == 0:
			respondError(c, types.ErrMissingText)
			return
		case length < s.cfg.MinTextChars:
			respondError(c, types.ErrTooShort)
			return
		case length > s.cfg.MaxTextChars:
			respondError(c, types.ErrTooLong)
			return
		}
		cleaned = s.cleaner.Clean(req.Text)
	}
	if utf8.RuneCountInString(cleaned) < s.cfg.MinCleanedChars {
		respondError(c, types.ErrEmptyAfterClean)
		return
	}

	result, err := s.scorer.Score(c.Request.Context(), cleaned)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Prediction:    result.Prediction,
		Label:         result.Label,
		Confidence:    result.Confidence,
		Probabilities: result.Probabilities,
		TextLength:    length,
		CleanedLength: utf8.RuneCountInString(cleaned),
		Model:         s.scorer.Name(),
	})
}

// handleTest classifies a canned sample for a quick manual check.
func (s *Server) handleTest(c *gin.Context) {
	if s.scorer == nil {
		respondError(c, types.ErrModelNotLoaded)
		return
	}

	cleaned := s.cleaner.Clean(testSample)
	result, err := s.scorer.Score(c.Request.Context(), cleaned)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"test": "failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"test":        "success",
		"sample_text": testSample,
		"prediction":  result.Label,
		"confidence":  result.Confidence,
	})
}
