package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlink/advisor/internal/model"
)

func baseItems(n int) []model.RecommendationItem {
	items := make([]model.RecommendationItem, n)
	for i := range items {
		p := product(string(rune('A'+i))+" Device", model.CategorySecurity, 500)
		items[i] = model.RecommendationItem{
			Product:   &p,
			Name:      p.Name,
			Category:  p.Category,
			UnitPrice: p.BetterPrice,
			Quantity:  1,
		}
	}
	return items
}

func TestAssembleTiers_ItemCountsGrow(t *testing.T) {
	good, better, best := AssembleTiers(baseItems(10), testProfile())

	// floor(0.65*10)=6, max(6+2, floor(0.85*10))=8, best carries all 10.
	assert.Len(t, good.Items, 6)
	assert.Len(t, better.Items, 8)
	// Best: 10 products + consultation, warranty, upgrade package.
	assert.Len(t, best.Items, 13)
}

func TestAssembleTiers_SmallBaseClamped(t *testing.T) {
	good, better, best := AssembleTiers(baseItems(3), testProfile())

	assert.Len(t, good.Items, 3)
	assert.Len(t, better.Items, 3)
	assert.GreaterOrEqual(t, len(best.Items), 3)
}

func TestAssembleTiers_TotalsMonotonic(t *testing.T) {
	good, better, best := AssembleTiers(baseItems(10), testProfile())

	assert.Less(t, good.Total, better.Total)
	assert.Less(t, better.Total, best.Total)
}

func TestAssembleTiers_TierRepricing(t *testing.T) {
	good, better, best := AssembleTiers(baseItems(4), testProfile())

	// Each tier re-prices the same product at its own tier price.
	assert.Equal(t, 400.0, good.Items[0].UnitPrice)
	assert.Equal(t, 500.0, better.Items[0].UnitPrice)
	assert.Equal(t, 650.0, best.Items[0].UnitPrice)
}

func TestAssembleTiers_EnhancementsFollowProfile(t *testing.T) {
	profile := testProfile()
	profile.WantsInstall = true
	profile.WantsSupport = true

	_, better, best := AssembleTiers(baseItems(6), profile)

	assert.True(t, hasItem(better.Items, "Professional Installation"))
	assert.True(t, hasItem(better.Items, "Priority Support Package"))
	assert.True(t, hasItem(best.Items, "Professional Installation"))
	assert.True(t, hasItem(best.Items, "Design Consultation"))
	assert.True(t, hasItem(best.Items, "Extended Warranty"))
	assert.True(t, hasItem(best.Items, "Future Upgrade Package"))
}

func TestAssembleTiers_NoUnwantedEnhancements(t *testing.T) {
	profile := testProfile()
	profile.WantsInstall = false
	profile.WantsSupport = false

	_, better, best := AssembleTiers(baseItems(6), profile)

	assert.False(t, hasItem(better.Items, "Professional Installation"))
	assert.False(t, hasItem(better.Items, "Priority Support Package"))
	assert.False(t, hasItem(best.Items, "Professional Installation"))
	// Best always carries its three premium services.
	assert.True(t, hasItem(best.Items, "Design Consultation"))
}

func TestAssembleTiers_PersonaMultiplierApplied(t *testing.T) {
	profile := testProfile()
	profile.PriceMultiplier = 0.85

	good, _, _ := AssembleTiers(baseItems(4), profile)

	// 3 items at good price 400 = 1200, times 0.85 = 1020.
	assert.Equal(t, 1020.0, good.Total)
}

func TestAssembleTiers_BestPremiumFactor(t *testing.T) {
	profile := testProfile()

	_, _, best := AssembleTiers(baseItems(4), profile)

	// 4 items at 650 = 2600; enhancements at their floors 399+349+299;
	// total 3647, times the 1.2 best positioning factor = 4376.4 → 4376.
	require.Len(t, best.Items, 7)
	assert.Equal(t, 4376.0, best.Total)
}

func TestAssembleTiers_JustificationsPerTier(t *testing.T) {
	good, better, best := AssembleTiers(baseItems(6), testProfile())

	// Each tier stamps its own justification on the catalog items it
	// carries; the base list itself stays untouched between tiers.
	assert.Contains(t, good.Items[0].TierJustification, "Core coverage")
	assert.Contains(t, better.Items[0].TierJustification, "Broader coverage")
	assert.Contains(t, best.Items[0].TierJustification, "Every system included")
}

func TestEnhancement_FloorApplies(t *testing.T) {
	item := enhancement("Design Consultation", "desc", model.TierBest, 1000, consultShare, consultFloor)
	assert.Equal(t, 399.0, item.UnitPrice)

	item = enhancement("Design Consultation", "desc", model.TierBest, 20000, consultShare, consultFloor)
	assert.Equal(t, 1000.0, item.UnitPrice)
}

func TestDisplayCategory(t *testing.T) {
	assert.Equal(t, "Access Control", displayCategory(model.CategoryAccessControl))
	assert.Equal(t, "Audio Video", displayCategory(model.CategoryAudioVideo))
	assert.Equal(t, "Security", displayCategory(model.CategorySecurity))
}
