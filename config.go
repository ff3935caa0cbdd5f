package main

import (
	"os"
	"strconv"
	"strings"

	"veridect/pipeline"
)

// ServiceConfig collects the environment-driven settings. Everything
// has a default; only the model location is usually set explicitly.
type ServiceConfig struct {
	Addr string

	// ModelPath locates the artifact: a local file path or an
	// s3://bucket/key URI.
	ModelPath string

	// S3 overrides for artifact fetches, standard chain otherwise.
	S3Region       string
	S3Profile      string
	S3UsePathStyle bool

	Pipeline pipeline.Config
}

func loadConfig() ServiceConfig {
	cfg := ServiceConfig{
		Addr:           ":8080",
		ModelPath:      strings.TrimSpace(os.Getenv("MODEL_PATH")),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
		Pipeline:       pipeline.DefaultConfig(),
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = "models/fake_news_classifier.json"
	}

	if v := envInt("MIN_TEXT_CHARS"); v > 0 {
		cfg.Pipeline.MinTextChars = v
	}
	if v := envInt("MAX_TEXT_CHARS"); v > 0 {
		cfg.Pipeline.MaxTextChars = v
	}
	if v := envInt("MIN_CLEANED_CHARS"); v > 0 {
		cfg.Pipeline.MinCleanedChars = v
	}

	return cfg
}

func envInt(key string) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
