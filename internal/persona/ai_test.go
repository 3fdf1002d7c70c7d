package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlink/advisor/internal/model"
)

func residentialEligible() []model.PersonaProfile {
	return EligibleProfiles(model.ProjectTypeResidential)
}

func TestParseAIClassification_CleanJSON(t *testing.T) {
	reply := `{"persona": "homeowner", "confidence": 0.85, "reasoning": "family and safety focus", "key_indicators": ["kids", "cameras"]}`
	cls := parseAIClassification(reply, residentialEligible())

	require.NotNil(t, cls)
	assert.Equal(t, model.PersonaHomeowner, cls.Persona)
	assert.Equal(t, 0.85, cls.Confidence)
	assert.Equal(t, []string{"kids", "cameras"}, cls.KeyIndicators)
}

func TestParseAIClassification_MarkdownFences(t *testing.T) {
	reply := "```json\n{\"persona\": \"tech-enthusiast\", \"confidence\": 0.7}\n```"
	cls := parseAIClassification(reply, residentialEligible())

	require.NotNil(t, cls)
	assert.Equal(t, model.PersonaTechEnthusiast, cls.Persona)
}

func TestParseAIClassification_SurroundingProse(t *testing.T) {
	reply := `Based on the description, here is my answer: {"persona": "builder", "confidence": 0.9} Hope that helps!`
	cls := parseAIClassification(reply, residentialEligible())

	require.NotNil(t, cls)
	assert.Equal(t, model.PersonaBuilder, cls.Persona)
}

func TestParseAIClassification_IneligiblePersonaRejected(t *testing.T) {
	// cto-cio is commercial, so a residential request must reject it.
	reply := `{"persona": "cto-cio", "confidence": 0.9}`
	assert.Nil(t, parseAIClassification(reply, residentialEligible()))
}

func TestParseAIClassification_GarbageRejected(t *testing.T) {
	assert.Nil(t, parseAIClassification("not json at all", residentialEligible()))
	assert.Nil(t, parseAIClassification("", residentialEligible()))
}

func TestParseAIClassification_ConfidenceClamped(t *testing.T) {
	high := parseAIClassification(`{"persona": "homeowner", "confidence": 1.7}`, residentialEligible())
	require.NotNil(t, high)
	assert.Equal(t, 1.0, high.Confidence)

	low := parseAIClassification(`{"persona": "homeowner", "confidence": -0.2}`, residentialEligible())
	require.NotNil(t, low)
	assert.Equal(t, 0.0, low.Confidence)
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSON(`prose before {"a":1} prose after`))
	assert.Equal(t, `{"a":1}`, cleanJSON(`  {"a":1}  `))
}
