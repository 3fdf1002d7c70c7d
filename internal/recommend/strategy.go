// Package recommend turns a detected persona, a budget, and the product
// catalog into a Good/Better/Best bundle recommendation.
package recommend

import (
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/model"
)

// Strategy names. Personas map onto these in the persona table; the
// selector may substitute based on budget and project size.
const (
	StrategyFamilyFirst        = "family-first"
	StrategyPremiumExperience  = "premium-experience"
	StrategyConnectedLiving    = "connected-living"
	StrategyVolumeStandard     = "volume-standard"
	StrategyMultiUnit          = "multi-unit-essentials"
	StrategyEnterprise         = "enterprise-integration"
	StrategyOperationsControl  = "operations-control"
	StrategyEssentialCoverage  = "essential-coverage"
	StrategyComprehensive      = "comprehensive-coverage"
)

// largeProjectThreshold upgrades the essential strategy to comprehensive
// (square-feet-equivalent units).
const largeProjectThreshold = 10000

// strategies is the fixed strategy table. Distributions sum to 100;
// ValidateStrategies checks this at startup.
var strategies = map[string]model.BundleStrategy{
	StrategyFamilyFirst: {
		Name:        StrategyFamilyFirst,
		Description: "Safety and access first for family households",
		CategoryPriority: []model.Category{
			model.CategorySecurity, model.CategoryAccessControl,
			model.CategoryNetworking, model.CategoryLighting,
			model.CategoryClimate, model.CategoryAudioVideo, model.CategoryOther,
		},
		Distribution: map[model.Category]float64{
			model.CategorySecurity:      35,
			model.CategoryAccessControl: 20,
			model.CategoryNetworking:    15,
			model.CategoryLighting:      12,
			model.CategoryClimate:       10,
			model.CategoryAudioVideo:    5,
			model.CategoryOther:         3,
		},
	},
	StrategyPremiumExperience: {
		Name:        StrategyPremiumExperience,
		Description: "Entertainment and ambiance for high-end residences",
		CategoryPriority: []model.Category{
			model.CategoryAudioVideo, model.CategoryLighting,
			model.CategorySecurity, model.CategoryClimate,
			model.CategoryAccessControl, model.CategoryNetworking, model.CategoryOther,
		},
		Distribution: map[model.Category]float64{
			model.CategoryAudioVideo:    30,
			model.CategoryLighting:      25,
			model.CategorySecurity:      15,
			model.CategoryClimate:       10,
			model.CategoryAccessControl: 8,
			model.CategoryNetworking:    7,
			model.CategoryOther:         5,
		},
	},
	StrategyConnectedLiving: {
		Name:        StrategyConnectedLiving,
		Description: "Deep integration and local control for enthusiasts",
		CategoryPriority: []model.Category{
			model.CategoryNetworking, model.CategoryLighting,
			model.CategoryClimate, model.CategorySecurity,
			model.CategoryOther, model.CategoryAudioVideo, model.CategoryAccessControl,
		},
		Distribution: map[model.Category]float64{
			model.CategoryNetworking:    20,
			model.CategoryLighting:      20,
			model.CategoryClimate:       15,
			model.CategorySecurity:      15,
			model.CategoryOther:         15,
			model.CategoryAudioVideo:    10,
			model.CategoryAccessControl: 5,
		},
	},
	StrategyVolumeStandard: {
		Name:        StrategyVolumeStandard,
		Description: "Standardized per-unit packages priced for volume",
		CategoryPriority: []model.Category{
			model.CategorySecurity, model.CategoryClimate,
			model.CategoryAccessControl, model.CategoryNetworking, model.CategoryLighting,
		},
		Distribution: map[model.Category]float64{
			model.CategorySecurity:      30,
			model.CategoryClimate:       25,
			model.CategoryAccessControl: 20,
			model.CategoryNetworking:    15,
			model.CategoryLighting:      10,
		},
	},
	StrategyMultiUnit: {
		Name:        StrategyMultiUnit,
		Description: "Remote access and turnover tooling across units",
		CategoryPriority: []model.Category{
			model.CategoryAccessControl, model.CategorySecurity,
			model.CategoryClimate, model.CategoryNetworking, model.CategoryOther,
		},
		Distribution: map[model.Category]float64{
			model.CategoryAccessControl: 35,
			model.CategorySecurity:      25,
			model.CategoryClimate:       20,
			model.CategoryNetworking:    15,
			model.CategoryOther:         5,
		},
	},
	StrategyEnterprise: {
		Name:        StrategyEnterprise,
		Description: "Network-led rollout integrating with existing IT",
		CategoryPriority: []model.Category{
			model.CategoryNetworking, model.CategorySecurity,
			model.CategoryAccessControl, model.CategoryClimate,
			model.CategoryLighting, model.CategoryOther,
		},
		Distribution: map[model.Category]float64{
			model.CategoryNetworking:    30,
			model.CategorySecurity:      25,
			model.CategoryAccessControl: 25,
			model.CategoryClimate:       10,
			model.CategoryLighting:      5,
			model.CategoryOther:         5,
		},
	},
	StrategyOperationsControl: {
		Name:        StrategyOperationsControl,
		Description: "Energy and access controls for building operations",
		CategoryPriority: []model.Category{
			model.CategoryClimate, model.CategoryAccessControl,
			model.CategorySecurity, model.CategoryLighting, model.CategoryNetworking,
		},
		Distribution: map[model.Category]float64{
			model.CategoryClimate:       30,
			model.CategoryAccessControl: 25,
			model.CategorySecurity:      20,
			model.CategoryLighting:      15,
			model.CategoryNetworking:    10,
		},
	},
	StrategyEssentialCoverage: {
		Name:        StrategyEssentialCoverage,
		Description: "Core protection on a storefront budget",
		CategoryPriority: []model.Category{
			model.CategorySecurity, model.CategoryAccessControl,
			model.CategoryNetworking, model.CategoryLighting, model.CategoryOther,
		},
		Distribution: map[model.Category]float64{
			model.CategorySecurity:      40,
			model.CategoryAccessControl: 25,
			model.CategoryNetworking:    20,
			model.CategoryLighting:      10,
			model.CategoryOther:         5,
		},
	},
	StrategyComprehensive: {
		Name:        StrategyComprehensive,
		Description: "Full-property coverage across every system",
		CategoryPriority: []model.Category{
			model.CategorySecurity, model.CategoryAccessControl,
			model.CategoryClimate, model.CategoryLighting,
			model.CategoryNetworking, model.CategoryAudioVideo, model.CategoryOther,
		},
		Distribution: map[model.Category]float64{
			model.CategorySecurity:      20,
			model.CategoryAccessControl: 20,
			model.CategoryClimate:       15,
			model.CategoryLighting:      15,
			model.CategoryNetworking:    15,
			model.CategoryAudioVideo:    10,
			model.CategoryOther:         5,
		},
	},
}

// economyFallbacks substitutes a more economical strategy when the stated
// budget is below the persona's typical minimum. Explicit per-persona
// mapping, not a general rule.
var economyFallbacks = map[model.Persona]string{
	model.PersonaLuxuryHomeowner: StrategyFamilyFirst,
	model.PersonaCTOCIO:          StrategyOperationsControl,
	model.PersonaHospitality:     StrategyEssentialCoverage,
	model.PersonaFacilities:      StrategyEssentialCoverage,
}

// StrategyByName looks up a strategy in the fixed table.
func StrategyByName(name string) (model.BundleStrategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

// SelectStrategy resolves the bundle strategy for a persona, applying the
// budget fallback first and the large-project upgrade second. The returned
// strategy is shared table data and must not be mutated.
func SelectStrategy(profile model.PersonaProfile, budget, projectSize float64) model.BundleStrategy {
	name := profile.Strategy

	if budget > 0 && budget < profile.BudgetRange.Min {
		if fallback, ok := economyFallbacks[profile.Persona]; ok {
			zap.L().Debug("recommend: budget below persona minimum, using economy strategy",
				zap.String("persona", string(profile.Persona)),
				zap.Float64("budget", budget),
				zap.String("strategy", fallback),
			)
			name = fallback
		}
	}

	if projectSize > largeProjectThreshold && name == StrategyEssentialCoverage {
		name = StrategyComprehensive
	}

	return strategies[name]
}

// ValidateStrategies checks the strategy table at startup: every referenced
// strategy exists, every distribution sums to 100 within rounding, and the
// priority list covers exactly the distributed categories.
func ValidateStrategies() error {
	for name, s := range strategies {
		var sum float64
		for _, pct := range s.Distribution {
			sum += pct
		}
		if math.Abs(sum-100) > 1 {
			return eris.Errorf("recommend: strategy %s distribution sums to %.1f", name, sum)
		}
		if len(s.CategoryPriority) != len(s.Distribution) {
			return eris.Errorf("recommend: strategy %s priority/distribution mismatch", name)
		}
		for _, c := range s.CategoryPriority {
			if _, ok := s.Distribution[c]; !ok {
				return eris.Errorf("recommend: strategy %s priority category %s has no distribution", name, c)
			}
		}
	}
	for persona, fallback := range economyFallbacks {
		if _, ok := strategies[fallback]; !ok {
			return eris.Errorf("recommend: fallback strategy %s for %s not in table", fallback, persona)
		}
	}
	return nil
}
