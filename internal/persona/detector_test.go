package persona

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlink/advisor/internal/model"
)

type stubClassifier struct {
	cls *AIClassification
	err error
}

func (s stubClassifier) Classify(context.Context, string, []model.PersonaProfile) (*AIClassification, error) {
	return s.cls, s.err
}

func ruleResult(p model.Persona, conf float64) model.DetectionResult {
	return model.DetectionResult{
		Persona:    p,
		Confidence: conf,
		Method:     model.MethodRuleBased,
	}
}

func TestCombine_NoAI(t *testing.T) {
	out := combine(ruleResult(model.PersonaHomeowner, 0.7), nil)

	assert.Equal(t, model.PersonaHomeowner, out.Persona)
	assert.Equal(t, 0.7, out.Confidence)
	assert.Equal(t, model.CombinedRuleOnly, out.CombinedMethod)
	assert.Equal(t, model.MethodRuleBased, out.Method)
}

func TestCombine_AIPrimary(t *testing.T) {
	ai := &AIClassification{
		Persona:    model.PersonaTechEnthusiast,
		Confidence: 0.9,
		Reasoning:  "mentions home assistant and zigbee",
	}
	out := combine(ruleResult(model.PersonaHomeowner, 0.3), ai)

	assert.Equal(t, model.PersonaTechEnthusiast, out.Persona)
	assert.Equal(t, 0.9, out.Confidence)
	assert.Equal(t, model.CombinedAIPrimary, out.CombinedMethod)
	require.NotNil(t, out.RuleBackup)
	assert.Equal(t, model.PersonaHomeowner, out.RuleBackup.Persona)
	assert.Equal(t, 0.3, out.RuleBackup.Confidence)
}

func TestCombine_RulePrimary(t *testing.T) {
	ai := &AIClassification{Persona: model.PersonaLuxuryHomeowner, Confidence: 0.5}
	out := combine(ruleResult(model.PersonaBuilder, 0.8), ai)

	assert.Equal(t, model.PersonaBuilder, out.Persona)
	assert.Equal(t, 0.8, out.Confidence)
	assert.Equal(t, model.CombinedRulePrimary, out.CombinedMethod)
	assert.Equal(t, model.MethodCombined, out.Method)
}

func TestCombine_WeightedAverage(t *testing.T) {
	ai := &AIClassification{Persona: model.PersonaTechEnthusiast, Confidence: 0.6}
	out := combine(ruleResult(model.PersonaHomeowner, 0.55), ai)

	// 0.6*0.6 + 0.4*0.55 = 0.58; AI is the higher-confidence source.
	assert.InDelta(t, 0.58, out.Confidence, 0.0001)
	assert.Equal(t, model.PersonaTechEnthusiast, out.Persona)
	assert.Equal(t, model.CombinedWeighted, out.CombinedMethod)
}

func TestCombine_WeightedPrefersStrongerRule(t *testing.T) {
	ai := &AIClassification{Persona: model.PersonaTechEnthusiast, Confidence: 0.5, Reasoning: "weak"}
	out := combine(ruleResult(model.PersonaHomeowner, 0.65), ai)

	// Rule leads by 0.15, under the 0.2 margin, so this is still weighted,
	// but the rule persona carries the result.
	assert.Equal(t, model.CombinedWeighted, out.CombinedMethod)
	assert.Equal(t, model.PersonaHomeowner, out.Persona)
	assert.InDelta(t, 0.56, out.Confidence, 0.0001)
	assert.Empty(t, out.Reasoning)
}

func TestCombine_BoundaryExactThreshold(t *testing.T) {
	// Exactly 0.8 is not "above", so the AI-primary branch must not fire.
	ai := &AIClassification{Persona: model.PersonaTechEnthusiast, Confidence: 0.8}
	out := combine(ruleResult(model.PersonaHomeowner, 0.7), ai)
	assert.Equal(t, model.CombinedWeighted, out.CombinedMethod)
}

func TestDetect_NoClassifierConfigured(t *testing.T) {
	d := NewDetector(nil)
	result := d.Detect(context.Background(), "cameras for our family home with kids")

	assert.Equal(t, model.PersonaHomeowner, result.Persona)
	assert.Equal(t, model.CombinedRuleOnly, result.CombinedMethod)
	assert.Equal(t, model.ProjectTypeResidential, result.ProjectType)
}

func TestDetect_AIFailureDegradesToRules(t *testing.T) {
	d := NewDetector(stubClassifier{err: eris.New("api down")})
	result := d.Detect(context.Background(), "cameras for our family home with kids")

	assert.Equal(t, model.PersonaHomeowner, result.Persona)
	assert.Equal(t, model.CombinedRuleOnly, result.CombinedMethod)
}

func TestDetect_AIOverridesWeakRules(t *testing.T) {
	d := NewDetector(stubClassifier{cls: &AIClassification{
		Persona:    model.PersonaTechEnthusiast,
		Confidence: 0.92,
	}})
	result := d.Detect(context.Background(), "looking to upgrade the place")

	assert.Equal(t, model.PersonaTechEnthusiast, result.Persona)
	assert.Equal(t, model.CombinedAIPrimary, result.CombinedMethod)
	require.NotNil(t, result.RuleBackup)
}
