package api

import (
	"github.com/gin-gonic/gin"

	"veridect/feeds"
	"veridect/history"
	"veridect/model"
	"veridect/pipeline"
	"veridect/textclean"
)

// Server bundles the pipeline dependencies behind the HTTP surface.
type Server struct {
	artifact *model.Artifact // nil when scoring is delegated
	scorer   model.Scorer
	cleaner  *textclean.Cleaner
	pipeline *pipeline.Pipeline
	recorder *history.Recorder
	scanner  *feeds.Scanner
	cfg      pipeline.Config
}

// NewServer wires the HTTP server. artifact may be nil when a remote
// scorer backend is configured.
func NewServer(artifact *model.Artifact, scorer model.Scorer, cleaner *textclean.Cleaner, p *pipeline.Pipeline, recorder *history.Recorder, cfg pipeline.Config) *Server {
	return &Server{
		artifact: artifact,
		scorer:   scorer,
		cleaner:  cleaner,
		pipeline: p,
		recorder: recorder,
		scanner:  feeds.NewScanner(p),
		cfg:      cfg,
	}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.registerPredictRoutes(r)
	s.registerAnalyzeRoutes(r)
	s.registerHistoryRoutes(r)
	s.registerFeedRoutes(r)
	s.registerHealthRoutes(r)
	return r
}
