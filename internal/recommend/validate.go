package recommend

import (
	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/model"
)

// Tier correction constants. Corrections adjust already-computed totals;
// the validator never deletes items. The best-tier floor is tunable policy
// preserved for parity with existing proposals, not a fundamental invariant.
const (
	betterStepFactor = 1.3
	bestStepFactor   = 1.4
	bestTierFloor    = 10000.0
	bestFloorFactor  = 1.5
)

// defaultCompetitiveEdge is attached when no competitive-advantage summary
// was produced upstream.
const defaultCompetitiveEdge = "Single-vendor design, installation, and support across every system in the proposal"

// ValidateTiers enforces monotonic price progression across the assembled
// tiers and fills in missing messaging. Each check applies once, in order,
// to the totals only.
func ValidateTiers(result *model.RecommendationResult) {
	if result.BetterTier.Total <= result.GoodTier.Total {
		corrected := roundCurrency(result.GoodTier.Total * betterStepFactor)
		zap.L().Warn("recommend: better tier not above good, correcting",
			zap.Float64("better", result.BetterTier.Total),
			zap.Float64("good", result.GoodTier.Total),
			zap.Float64("corrected", corrected),
		)
		result.BetterTier.Total = corrected
	}

	if result.BestTier.Total <= result.BetterTier.Total {
		corrected := roundCurrency(result.BetterTier.Total * bestStepFactor)
		zap.L().Warn("recommend: best tier not above better, correcting",
			zap.Float64("best", result.BestTier.Total),
			zap.Float64("better", result.BetterTier.Total),
			zap.Float64("corrected", corrected),
		)
		result.BestTier.Total = corrected
	}

	// Premium positioning floor. Builders buy on volume, so they are the
	// one persona exempt from it.
	if result.BestTier.Total < bestTierFloor && result.Persona != model.PersonaBuilder {
		floor := roundCurrency(result.BetterTier.Total * bestFloorFactor)
		if floor > result.BestTier.Total {
			result.BestTier.Total = floor
		}
	}

	if result.CompetitiveEdge == "" {
		result.CompetitiveEdge = defaultCompetitiveEdge
	}

	// Totals may have moved; keep the estimate in step with the better tier.
	result.EstimatedTotal = result.BetterTier.Total
}
