package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/citesmart/backend/internal/api"
	"github.com/citesmart/backend/internal/config"
	"github.com/citesmart/backend/internal/engine"
	"github.com/citesmart/backend/internal/match"
	"github.com/citesmart/backend/internal/metadata"
	"github.com/citesmart/backend/internal/storage"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "citesmart-api")

	entry.Info("Starting Citesmart API Service")

	// 1. Config
	_ = godotenv.Load()
	cfg := config.Load()

	// 2. Storage
	store, err := storage.NewDocumentStore(cfg.Storage.UploadDir)
	if err != nil {
		entry.Fatalf("Failed to initialize storage: %v", err)
	}

	// 3. Language resources (stopwords, sentence tokenizer)
	resources, err := match.LoadResources(cfg.Match.Language, cfg.Match.Stemming)
	if err != nil {
		entry.Fatalf("Failed to load language resources: %v", err)
	}

	// 4. Matcher
	matcher := match.NewMatcher(resources, locatorFor(cfg.Match.Locator), match.Config{
		Threshold:     cfg.Match.Threshold,
		WindowRadius:  cfg.Match.WindowRadius,
		MaxPageChars:  cfg.Match.MaxPageChars,
		MaxQueryChars: cfg.Match.MaxQueryChars,
	}, entry)

	// 5. Citation metadata
	var resolver metadata.Resolver = metadata.NewHeuristicResolver()
	if cfg.Metadata.CrossRefEnabled {
		resolver = metadata.NewCrossRefResolver(resolver, cfg.Metadata.CrossRefBaseURL, cfg.Metadata.CrossRefTimeout, entry)
	}

	// 6. Engine + API Server
	eng := engine.NewEngine(cfg, entry, matcher, resolver, store)
	server := api.NewServer(eng, entry)

	entry.Infof("Citesmart API ready on port %s", cfg.Server.Port)
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		entry.Fatal(err)
	}
}

func locatorFor(name string) match.SpanLocator {
	if name == "scan" {
		return match.ScanLocator{}
	}
	return match.RegexLocator{}
}
