package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/havenlink/advisor/internal/model"
)

func resultWithTotals(good, better, best float64) *model.RecommendationResult {
	return &model.RecommendationResult{
		Persona:    model.PersonaHomeowner,
		GoodTier:   model.TierBundle{Tier: model.TierGood, Total: good},
		BetterTier: model.TierBundle{Tier: model.TierBetter, Total: better},
		BestTier:   model.TierBundle{Tier: model.TierBest, Total: best},
	}
}

func TestValidateTiers_AlreadyMonotonic(t *testing.T) {
	r := resultWithTotals(8000, 12000, 18000)
	ValidateTiers(r)

	assert.Equal(t, 8000.0, r.GoodTier.Total)
	assert.Equal(t, 12000.0, r.BetterTier.Total)
	assert.Equal(t, 18000.0, r.BestTier.Total)
	assert.Equal(t, 12000.0, r.EstimatedTotal)
}

func TestValidateTiers_BetterCorrected(t *testing.T) {
	r := resultWithTotals(10000, 9000, 20000)
	ValidateTiers(r)

	// better <= good → good * 1.3
	assert.Equal(t, 13000.0, r.BetterTier.Total)
	assert.Equal(t, 13000.0, r.EstimatedTotal)
}

func TestValidateTiers_BestCorrected(t *testing.T) {
	r := resultWithTotals(8000, 12000, 11000)
	ValidateTiers(r)

	// best <= better → better * 1.4
	assert.Equal(t, 16800.0, r.BestTier.Total)
}

func TestValidateTiers_CascadingCorrections(t *testing.T) {
	r := resultWithTotals(10000, 10000, 10000)
	ValidateTiers(r)

	assert.Equal(t, 13000.0, r.BetterTier.Total)
	// Best is compared against the corrected better.
	assert.Equal(t, 18200.0, r.BestTier.Total)
}

func TestValidateTiers_BestFloorForPremiumPositioning(t *testing.T) {
	r := resultWithTotals(4000, 5000, 6000)
	ValidateTiers(r)

	// Best under $10k lifts to better * 1.5.
	assert.Equal(t, 7500.0, r.BestTier.Total)
}

func TestValidateTiers_BuilderExemptFromFloor(t *testing.T) {
	r := resultWithTotals(4000, 5000, 6000)
	r.Persona = model.PersonaBuilder
	ValidateTiers(r)

	assert.Equal(t, 6000.0, r.BestTier.Total)
}

func TestValidateTiers_FloorNeverLowersBest(t *testing.T) {
	r := resultWithTotals(4000, 5000, 9000)
	ValidateTiers(r)

	// better * 1.5 = 7500 is below the current best, so best stays.
	assert.Equal(t, 9000.0, r.BestTier.Total)
}

func TestValidateTiers_DefaultCompetitiveEdge(t *testing.T) {
	r := resultWithTotals(8000, 12000, 18000)
	ValidateTiers(r)
	assert.NotEmpty(t, r.CompetitiveEdge)

	r2 := resultWithTotals(8000, 12000, 18000)
	r2.CompetitiveEdge = "already set"
	ValidateTiers(r2)
	assert.Equal(t, "already set", r2.CompetitiveEdge)
}
