package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlink/advisor/internal/model"
)

func profileFor(t *testing.T, p model.Persona) model.PersonaProfile {
	t.Helper()
	// Inline fixtures mirroring the persona table fields the selector reads.
	table := map[model.Persona]model.PersonaProfile{
		model.PersonaHomeowner: {
			Persona:     model.PersonaHomeowner,
			BudgetRange: model.BudgetRange{Min: 5000, Max: 25000},
			Strategy:    StrategyFamilyFirst,
		},
		model.PersonaLuxuryHomeowner: {
			Persona:     model.PersonaLuxuryHomeowner,
			BudgetRange: model.BudgetRange{Min: 25000, Max: 100000},
			Strategy:    StrategyPremiumExperience,
		},
		model.PersonaSmallBusiness: {
			Persona:     model.PersonaSmallBusiness,
			BudgetRange: model.BudgetRange{Min: 5000, Max: 30000},
			Strategy:    StrategyEssentialCoverage,
		},
	}
	prof, ok := table[p]
	require.True(t, ok)
	return prof
}

func TestSelectStrategy_Default(t *testing.T) {
	s := SelectStrategy(profileFor(t, model.PersonaHomeowner), 15000, 0)
	assert.Equal(t, StrategyFamilyFirst, s.Name)
}

func TestSelectStrategy_EconomyFallbackBelowMinimum(t *testing.T) {
	s := SelectStrategy(profileFor(t, model.PersonaLuxuryHomeowner), 12000, 0)
	assert.Equal(t, StrategyFamilyFirst, s.Name)
}

func TestSelectStrategy_ZeroBudgetNoFallback(t *testing.T) {
	// An unstated budget must not trigger the economy fallback.
	s := SelectStrategy(profileFor(t, model.PersonaLuxuryHomeowner), 0, 0)
	assert.Equal(t, StrategyPremiumExperience, s.Name)
}

func TestSelectStrategy_NoFallbackMappedKeepsDefault(t *testing.T) {
	// Homeowner has no economy fallback; a tiny budget keeps family-first.
	s := SelectStrategy(profileFor(t, model.PersonaHomeowner), 1000, 0)
	assert.Equal(t, StrategyFamilyFirst, s.Name)
}

func TestSelectStrategy_LargeProjectUpgradesEssential(t *testing.T) {
	s := SelectStrategy(profileFor(t, model.PersonaSmallBusiness), 20000, 15000)
	assert.Equal(t, StrategyComprehensive, s.Name)

	// At or below the threshold stays essential.
	s = SelectStrategy(profileFor(t, model.PersonaSmallBusiness), 20000, 10000)
	assert.Equal(t, StrategyEssentialCoverage, s.Name)
}

func TestValidateStrategies(t *testing.T) {
	assert.NoError(t, ValidateStrategies())
}

func TestStrategyByName(t *testing.T) {
	s, ok := StrategyByName(StrategyEnterprise)
	require.True(t, ok)
	assert.Equal(t, StrategyEnterprise, s.Name)

	_, ok = StrategyByName("no-such-strategy")
	assert.False(t, ok)
}

func TestStrategyDistributionsSumTo100(t *testing.T) {
	for name, s := range strategies {
		var sum float64
		for _, pct := range s.Distribution {
			sum += pct
		}
		assert.InDelta(t, 100, sum, 1, "strategy %s", name)
	}
}
