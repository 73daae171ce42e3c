package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jordanhope/matchengine/internal/config"
	"github.com/jordanhope/matchengine/internal/db"
	"github.com/jordanhope/matchengine/internal/llm"
	"github.com/jordanhope/matchengine/internal/logger"
	"github.com/jordanhope/matchengine/internal/match"
	"github.com/jordanhope/matchengine/internal/narrative"
	"github.com/jordanhope/matchengine/internal/scoring"
)

// app holds the wired components shared by all commands
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *db.DB
	gateway *match.Gateway
	trigger *match.Trigger

	llmClient llm.Client
}

// newApp loads configuration and wires the engine. Redis and the narrative
// generator are optional: a missing Redis URL or API key simply disables them.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var cache match.HotCache
	if cfg.RedisURL != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			// The engine is fully functional without the hot cache.
			log.Warn("redis unavailable, continuing without hot cache", zap.Error(err))
		} else {
			cache = db.NewReportCache(rdb, 0)
		}
	}

	var generator match.NarrativeGenerator
	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg = llmCfg.WithModel(cfg.Model)
		}
		llmClient, err = llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
		if err != nil {
			log.Warn("llm client unavailable, using deterministic scoring only", zap.Error(err))
		} else {
			generator = narrative.NewGenerator(llmClient, log, time.Duration(cfg.TimeoutSeconds)*time.Second)
		}
	} else {
		log.Info("no API key configured, using deterministic scoring only")
	}

	scorer := scoring.NewScorer(cfg.MetroCities)

	return &app{
		cfg:       cfg,
		logger:    log,
		db:        database,
		gateway:   match.NewGateway(database, cache, generator, scorer, log),
		trigger:   match.NewTrigger(database, database, database, database, scorer, log),
		llmClient: llmClient,
	}, nil
}

// close releases held resources
func (a *app) close() {
	if a.llmClient != nil {
		_ = a.llmClient.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	_ = a.logger.Sync()
}
