package persona

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/havenlink/advisor/internal/model"
	"github.com/havenlink/advisor/internal/resilience"
)

// Combination policy constants. Evaluated top to bottom; first match wins.
const (
	aiPrimaryThreshold = 0.8 // AI wins outright above this confidence
	ruleLeadMargin     = 0.2 // rule wins when ahead of AI by more than this
	aiWeight           = 0.6
	ruleWeight         = 0.4
)

// Detector orchestrates project type classification, the rule engine, and
// the optional AI classifier, merging their results deterministically.
// Construct one per process and share it; it holds no per-request state.
type Detector struct {
	ai      AIClassifier
	breaker *resilience.CircuitBreaker
}

// NewDetector creates a Detector. Pass NoopClassifier{} when no AI backend
// is configured.
func NewDetector(ai AIClassifier) *Detector {
	if ai == nil {
		ai = NoopClassifier{}
	}
	return &Detector{
		ai:      ai,
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{}),
	}
}

// Detect classifies the project type, runs the rule engine and the AI
// classifier concurrently, and combines their results. AI failures degrade
// to the rule-based result and are never returned as errors.
func (d *Detector) Detect(ctx context.Context, text string) model.DetectionResult {
	pt := ClassifyProjectType(text)
	eligible := EligibleProfiles(pt)

	var ruleResult model.DetectionResult
	var aiResult *AIClassification

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ruleResult = RunRules(text, pt)
		return nil
	})
	g.Go(func() error {
		cls, err := resilience.ExecuteVal(gCtx, d.breaker, func(ctx context.Context) (*AIClassification, error) {
			return d.ai.Classify(ctx, text, eligible)
		})
		if err != nil {
			zap.L().Warn("persona: ai classifier unavailable",
				zap.String("circuit", d.breaker.State().String()),
				zap.Error(err),
			)
			return nil
		}
		aiResult = cls
		return nil
	})
	_ = g.Wait()

	result := combine(ruleResult, aiResult)
	result.ProjectType = pt

	zap.L().Info("persona: detection complete",
		zap.String("persona", string(result.Persona)),
		zap.Float64("confidence", result.Confidence),
		zap.String("combined_method", string(result.CombinedMethod)),
		zap.String("project_type", string(pt)),
	)

	return result
}

// combine merges the always-present rule result with an optional AI result.
// The branch order is fixed: no AI → rule only; confident AI → AI primary;
// clearly stronger rules → rule primary; otherwise a 0.6/0.4 weighted
// average with the higher-confidence source's persona.
func combine(rule model.DetectionResult, ai *AIClassification) model.DetectionResult {
	if ai == nil {
		out := rule
		out.CombinedMethod = model.CombinedRuleOnly
		return out
	}

	if ai.Confidence > aiPrimaryThreshold {
		return model.DetectionResult{
			Persona:        ai.Persona,
			Confidence:     ai.Confidence,
			Method:         model.MethodCombined,
			CombinedMethod: model.CombinedAIPrimary,
			Reasoning:      ai.Reasoning,
			KeyIndicators:  ai.KeyIndicators,
			Alternatives:   rule.Alternatives,
			DetailedScores: rule.DetailedScores,
			RuleBackup: &model.PersonaCandidate{
				Persona:    rule.Persona,
				Confidence: rule.Confidence,
			},
		}
	}

	if rule.Confidence > ai.Confidence+ruleLeadMargin {
		out := rule
		out.Method = model.MethodCombined
		out.CombinedMethod = model.CombinedRulePrimary
		return out
	}

	persona := ai.Persona
	reasoning := ai.Reasoning
	if rule.Confidence > ai.Confidence {
		persona = rule.Persona
		reasoning = ""
	}
	return model.DetectionResult{
		Persona:        persona,
		Confidence:     aiWeight*ai.Confidence + ruleWeight*rule.Confidence,
		Method:         model.MethodCombined,
		CombinedMethod: model.CombinedWeighted,
		Reasoning:      reasoning,
		KeyIndicators:  ai.KeyIndicators,
		Alternatives:   rule.Alternatives,
		DetailedScores: rule.DetailedScores,
	}
}
