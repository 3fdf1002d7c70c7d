// Package advisor wires persona detection and bundle recommendation into
// one service. Construct a Service per process with an injected catalog
// provider and AI classifier; it is stateless between requests.
package advisor

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/catalog"
	"github.com/havenlink/advisor/internal/model"
	"github.com/havenlink/advisor/internal/persona"
	"github.com/havenlink/advisor/internal/recommend"
)

// ErrEmptyInput is returned when a detection request carries neither text
// nor a voice transcript.
var ErrEmptyInput = eris.New("advisor: no text or voice transcript provided")

// ErrUnknownPersona is returned when a recommendation request names a
// persona absent from the fixed persona table.
var ErrUnknownPersona = eris.New("advisor: unknown persona")

// ErrRecommendationFailed wraps unexpected failures during bundle assembly.
var ErrRecommendationFailed = eris.New("advisor: recommendation failed")

// Service is the advisor core: detection plus recommendation over immutable
// persona, strategy, and catalog tables.
type Service struct {
	detector *persona.Detector
	catalog  catalog.Provider
}

// New validates the static tables and constructs a Service. Pass a nil ai
// classifier to run rule-based only; the catalog provider is wrapped with
// the static fallback.
func New(live catalog.Provider, ai persona.AIClassifier) (*Service, error) {
	if err := persona.ValidateProfiles(); err != nil {
		return nil, err
	}
	if err := recommend.ValidateStrategies(); err != nil {
		return nil, err
	}
	// Cross-check: every persona's strategy must exist in the table.
	for _, p := range model.AllPersonas() {
		prof, _ := persona.ProfileOf(p)
		if _, ok := recommend.StrategyByName(prof.Strategy); !ok {
			return nil, eris.Errorf("advisor: persona %s references unknown strategy %s", p, prof.Strategy)
		}
	}

	return &Service{
		detector: persona.NewDetector(ai),
		catalog:  catalog.NewResilient(live),
	}, nil
}

// DetectPersona classifies the request text into a persona.
func (s *Service) DetectPersona(ctx context.Context, req model.DetectionRequest) (*model.DetectionResult, error) {
	text := strings.TrimSpace(req.Input())
	if text == "" {
		return nil, ErrEmptyInput
	}

	result := s.detector.Detect(ctx, text)
	return &result, nil
}

// Recommend produces the three-tier bundle recommendation for a persona.
func (s *Service) Recommend(ctx context.Context, req model.RecommendationRequest) (*model.RecommendationResult, error) {
	profile, ok := persona.ProfileOf(model.Persona(req.Persona))
	if !ok {
		return nil, eris.Wrapf(ErrUnknownPersona, "persona %q", req.Persona)
	}

	// Enrich unset fields from the transcript before allocation.
	budget := req.Budget
	projectSize := req.ProjectSize
	if req.VoiceTranscript != "" {
		if budget <= 0 {
			budget = persona.ExtractBudget(req.VoiceTranscript)
		}
		if projectSize <= 0 {
			projectSize = persona.ExtractProjectSize(req.VoiceTranscript)
		}
	}

	strategy := recommend.SelectStrategy(profile, budget, projectSize)

	products, err := s.catalog.ListActiveProducts(ctx)
	if err != nil {
		if eris.Is(err, catalog.ErrNoProducts) {
			return nil, err
		}
		return nil, eris.Wrapf(ErrRecommendationFailed, "list products: %v", err)
	}

	base := recommend.BuildBase(products, profile, strategy, budget)
	good, better, best := recommend.AssembleTiers(base, profile)

	result := &model.RecommendationResult{
		Persona:         profile.Persona,
		Strategy:        strategy.Name,
		GoodTier:        good,
		BetterTier:      better,
		BestTier:        best,
		RecommendedTier: profile.PreferredTier,
		EstimatedTotal:  better.Total,
	}
	recommend.ValidateTiers(result)

	zap.L().Info("advisor: recommendation complete",
		zap.String("persona", string(profile.Persona)),
		zap.String("strategy", strategy.Name),
		zap.Float64("good_total", result.GoodTier.Total),
		zap.Float64("better_total", result.BetterTier.Total),
		zap.Float64("best_total", result.BestTier.Total),
	)

	return result, nil
}
