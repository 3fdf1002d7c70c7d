package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/advisor"
	"github.com/havenlink/advisor/internal/catalog"
	"github.com/havenlink/advisor/internal/persona"
	"github.com/havenlink/advisor/pkg/anthropic"
)

// advisorEnv bundles the constructed service with the resources it owns.
type advisorEnv struct {
	Service *advisor.Service
	Store   catalog.Store // nil when running on the static catalog
}

func (e *advisorEnv) Close() {
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			zap.L().Warn("close catalog store", zap.Error(err))
		}
	}
}

// initAdvisor constructs the advisor service from config: the live catalog
// backend (if any) and the AI classifier (if an API key is set).
func initAdvisor(ctx context.Context) (*advisorEnv, error) {
	store, err := openCatalogStore(ctx)
	if err != nil {
		return nil, err
	}

	var ai persona.AIClassifier
	if cfg.Anthropic.Key != "" {
		client := anthropic.NewClient(cfg.Anthropic.Key)
		ai = persona.NewClaudeClassifier(client, persona.ClaudeClassifierOpts{
			Model:          cfg.Anthropic.Model,
			Timeout:        time.Duration(cfg.Anthropic.TimeoutSecs) * time.Second,
			RequestsPerSec: cfg.Anthropic.RequestsPerSec,
		})
		zap.L().Info("ai classifier enabled", zap.String("model", cfg.Anthropic.Model))
	} else {
		zap.L().Info("no anthropic key configured, rule-based detection only")
	}

	var live catalog.Provider
	if store != nil {
		live = store
	}
	svc, err := advisor.New(live, ai)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	return &advisorEnv{Service: svc, Store: store}, nil
}

// openCatalogStore opens the configured live catalog backend. The static
// driver returns nil: the service then runs on the embedded fallback.
func openCatalogStore(ctx context.Context) (catalog.Store, error) {
	switch cfg.Catalog.Driver {
	case "", "static":
		return nil, nil
	case "postgres":
		return catalog.NewPostgres(ctx, cfg.Catalog.DatabaseURL)
	case "sqlite":
		return catalog.NewSQLite(cfg.Catalog.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}
