package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"veridect/api"
	"veridect/extract"
	"veridect/history"
	"veridect/language"
	"veridect/model"
	"veridect/pipeline"
	"veridect/storage"
	"veridect/textclean"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := loadConfig()

	artifact, err := loadArtifact(cfg)
	if err != nil {
		// A delegated backend can run without the local artifact; a
		// local-only deployment cannot.
		if os.Getenv("REMOTE_SCORER_URL") == "" && os.Getenv("COHERE_API_KEY") == "" {
			log.Fatalf("Failed to load model artifact: %v", err)
		}
		log.Printf("Warning: model artifact unavailable (%v), delegating scoring", err)
		artifact = nil
	}

	scorer := model.NewDefaultScorer(artifact)
	if scorer == nil {
		log.Fatal("No classifier backend configured")
	}
	log.Printf("Scorer backend: %s", scorer.Name())

	if artifact != nil {
		if err := artifact.SelfTest(); err != nil {
			log.Fatalf("Model artifact failed self-test: %v", err)
		}
		log.Printf("Model loaded: %s v%s (%d features)",
			artifact.ModelType, artifact.Version, artifact.Vectorizer.NumFeatures())
	}

	cleaner, err := textclean.NewCleaner()
	if err != nil {
		log.Fatalf("Failed to initialize text cleaner: %v", err)
	}

	recorder := history.NewRecorder()
	p := pipeline.New(
		extract.NewExtractor(),
		language.NewNormalizer(language.NewGoogleTranslator()),
		cleaner,
		scorer,
		recorder,
		cfg.Pipeline,
	)

	server := api.NewServer(artifact, scorer, cleaner, p, recorder, cfg.Pipeline)
	router := server.Router()

	log.Printf("Starting API server on %s", cfg.Addr)
	log.Println("API endpoints available:")
	log.Println("  POST   /predict")
	log.Println("  POST   /analyze")
	log.Println("  POST   /analyze/file")
	log.Println("  POST   /scan")
	log.Println("  GET    /history")
	log.Println("  GET    /history/stats")
	log.Println("  GET    /history/timeline")
	log.Println("  DELETE /history")
	log.Println("  GET    /health")
	log.Println("  GET    /info")
	log.Println("  GET    /test")

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadArtifact reads the model artifact from a local file or from S3,
// depending on the configured path.
func loadArtifact(cfg ServiceConfig) (*model.Artifact, error) {
	if strings.HasPrefix(cfg.ModelPath, "s3://") {
		bucket, key, err := storage.ParseURI(cfg.ModelPath)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := storage.NewS3(ctx, storage.S3Config{
			Region:       cfg.S3Region,
			Profile:      cfg.S3Profile,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init S3 client: %w", err)
		}

		ok, err := client.Exists(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to check artifact in S3: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("no artifact at %s", cfg.ModelPath)
		}

		body, err := client.Get(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch artifact from S3: %w", err)
		}
		defer body.Close()

		log.Printf("Loading model artifact from %s", cfg.ModelPath)
		return model.LoadArtifact(body)
	}

	f, err := os.Open(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Printf("Loading model artifact from %s", cfg.ModelPath)
	return model.LoadArtifact(f)
}
