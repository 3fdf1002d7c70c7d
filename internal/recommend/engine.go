package recommend

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/model"
	"github.com/havenlink/advisor/internal/persona"
)

// Budget overrun allowance: a category may spend up to this multiple of
// its allocation. Tunable policy, preserved for behavioral parity with the
// pricing rules the sales team already quotes against.
const categoryOverrunFactor = 1.25

// perCategoryItemCap is the hard ceiling on items from one category after
// conflict removal.
const perCategoryItemCap = 5

// networkFoundationPrice is the unit price of the synthesized network
// dependency item.
const networkFoundationPrice = 349.0

// Relevance score weights for per-category product selection.
const (
	featureOverlapWeight = 2.0
	inBudgetFitScore     = 2.0
	overrunFitScore      = 1.0
)

// BuildBase allocates the budget across the strategy's categories, scores
// and selects products per category, repairs the networking dependency, and
// removes conflicts. The returned flat list is the unified pre-tier
// recommendation.
func BuildBase(products []model.Product, profile model.PersonaProfile, strategy model.BundleStrategy, budget float64) []model.RecommendationItem {
	if budget <= 0 {
		// No stated budget: assume the middle of the persona's range.
		budget = (profile.BudgetRange.Min + profile.BudgetRange.Max) / 2
	}

	byCategory := make(map[model.Category][]model.Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	maxPerCategory := int(math.Ceil(float64(profile.MaxItems) * 0.4))
	var base []model.RecommendationItem

	for pos, category := range strategy.CategoryPriority {
		pct := strategy.Distribution[category]
		categoryBudget := budget * pct / 100

		candidates := byCategory[category]
		if len(candidates) == 0 {
			// Category starvation is non-fatal; allocation proceeds
			// with the remaining categories.
			zap.L().Debug("recommend: no products in category",
				zap.String("category", string(category)),
			)
			continue
		}

		// Earlier priority positions score higher.
		positionWeight := float64(len(strategy.CategoryPriority) - pos)
		scored := scoreCategory(candidates, profile, categoryBudget, positionWeight)

		spent := 0.0
		selected := 0
		for _, sc := range scored {
			if selected >= maxPerCategory {
				break
			}
			price := sc.product.TierPrice(profile.PreferredTier)
			if spent+price > categoryBudget*categoryOverrunFactor {
				continue
			}
			p := sc.product
			base = append(base, model.RecommendationItem{
				Product:     &p,
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
				UnitPrice:   price,
				Quantity:    1,
				Reasoning: fmt.Sprintf("Ranked #%d for the %s allocation (%s priority %d of %d)",
					selected+1, category, strategy.Name, pos+1, len(strategy.CategoryPriority)),
			})
			spent += price
			selected++
		}
	}

	base = repairNetworkDependency(base)
	base = removeConflicts(base)

	zap.L().Info("recommend: base list assembled",
		zap.String("persona", string(profile.Persona)),
		zap.String("strategy", strategy.Name),
		zap.Float64("budget", budget),
		zap.Int("items", len(base)),
	)

	return base
}

type scoredProduct struct {
	product   model.Product
	relevance float64
}

// scoreCategory ranks a category's products: priority position + keyword
// overlap with the persona's key features + how well the preferred-tier
// price fits the allocation.
func scoreCategory(candidates []model.Product, profile model.PersonaProfile, categoryBudget, positionWeight float64) []scoredProduct {
	scored := make([]scoredProduct, 0, len(candidates))
	for _, p := range candidates {
		relevance := positionWeight

		overlap := persona.Score(p.Name+" "+p.Description, profile.KeyFeatures)
		relevance += featureOverlapWeight * float64(overlap)

		price := p.TierPrice(profile.PreferredTier)
		switch {
		case price <= categoryBudget:
			relevance += inBudgetFitScore
		case price <= categoryBudget*categoryOverrunFactor:
			relevance += overrunFitScore
		}

		scored = append(scored, scoredProduct{product: p, relevance: relevance})
	}

	// Descending relevance; name breaks ties so output is deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].relevance != scored[j].relevance {
			return scored[i].relevance > scored[j].relevance
		}
		return scored[i].product.Name < scored[j].product.Name
	})
	return scored
}

// categoriesNeedingNetwork lists categories whose gear assumes a working
// network backbone.
var categoriesNeedingNetwork = map[model.Category]bool{
	model.CategorySecurity:   true,
	model.CategoryLighting:   true,
	model.CategoryAudioVideo: true,
}

// repairNetworkDependency appends a minimal network foundation item when
// network-dependent gear was selected without any networking item.
func repairNetworkDependency(items []model.RecommendationItem) []model.RecommendationItem {
	needsNetwork := false
	hasNetwork := false
	for _, item := range items {
		if categoriesNeedingNetwork[item.Category] {
			needsNetwork = true
		}
		if item.Category == model.CategoryNetworking {
			hasNetwork = true
		}
	}
	if !needsNetwork || hasNetwork {
		return items
	}

	return append(items, model.RecommendationItem{
		Name:         "Network Foundation",
		Description:  "Baseline router and wiring to support the connected devices in this bundle",
		Category:     model.CategoryNetworking,
		UnitPrice:    networkFoundationPrice,
		Quantity:     1,
		Reasoning:    "Added automatically: selected devices require reliable networking",
		IsDependency: true,
	})
}

// removeConflicts drops duplicate product names and trims any category that
// exceeds the per-category cap.
func removeConflicts(items []model.RecommendationItem) []model.RecommendationItem {
	seenNames := make(map[string]bool)
	categoryCounts := make(map[model.Category]int)

	out := items[:0]
	for _, item := range items {
		if seenNames[item.Name] {
			continue
		}
		if categoryCounts[item.Category] >= perCategoryItemCap {
			continue
		}
		seenNames[item.Name] = true
		categoryCounts[item.Category]++
		out = append(out, item)
	}
	return out
}
