package recommend

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/havenlink/advisor/internal/model"
)

// bestTierPremiumFactor is the extra positioning multiplier on the best
// tier's total, on top of the persona price multiplier.
const bestTierPremiumFactor = 1.2

// Synthesized enhancement pricing, as a share of the tier subtotal with a
// floor.
const (
	installShare  = 0.12
	installFloor  = 499.0
	supportShare  = 0.08
	supportFloor  = 299.0
	consultShare  = 0.05
	consultFloor  = 399.0
	warrantyShare = 0.06
	warrantyFloor = 349.0
	upgradeShare  = 0.04
	upgradeFloor  = 299.0
)

var titleCaser = cases.Title(language.AmericanEnglish)

// displayCategory renders a category for customer-facing copy.
func displayCategory(c model.Category) string {
	return titleCaser.String(strings.ReplaceAll(string(c), "-", " "))
}

// AssembleTiers expands the base list into Good/Better/Best bundles. Item
// counts and enhancements grow per tier; each tier re-prices products at
// its own tier price; the persona multiplier (and the best-tier premium)
// applies to the summed total.
func AssembleTiers(base []model.RecommendationItem, profile model.PersonaProfile) (good, better, best model.TierBundle) {
	n := len(base)

	goodCount := maxInt(3, int(math.Floor(0.65*float64(n))))
	if goodCount > n {
		goodCount = n
	}
	betterCount := maxInt(goodCount+2, int(math.Floor(0.85*float64(n))))
	if betterCount > n {
		betterCount = n
	}

	goodItems := retier(base[:goodCount], model.TierGood, "Core coverage at the most accessible price point")
	betterItems := retier(base[:betterCount], model.TierBetter, "Broader coverage with stronger equipment")

	if profile.WantsInstall && !hasItem(betterItems, "Professional Installation") {
		betterItems = append(betterItems, enhancement(
			"Professional Installation",
			"Certified technicians handle mounting, wiring, and device setup",
			model.TierBetter, subtotal(betterItems), installShare, installFloor,
		))
	}
	if profile.WantsSupport && !hasItem(betterItems, "Priority Support Package") {
		betterItems = append(betterItems, enhancement(
			"Priority Support Package",
			"First-year priority support with remote diagnostics",
			model.TierBetter, subtotal(betterItems), supportShare, supportFloor,
		))
	}

	bestItems := retier(base, model.TierBest, "Every system included, specified at its premium grade")
	if profile.WantsInstall {
		bestItems = append(bestItems, enhancement(
			"Professional Installation",
			"Certified technicians handle mounting, wiring, and device setup",
			model.TierBest, subtotal(bestItems), installShare, installFloor,
		))
	}
	if profile.WantsSupport {
		bestItems = append(bestItems, enhancement(
			"Priority Support Package",
			"First-year priority support with remote diagnostics",
			model.TierBest, subtotal(bestItems), supportShare, supportFloor,
		))
	}
	bestBase := subtotal(bestItems)
	bestItems = append(bestItems,
		enhancement(
			"Design Consultation",
			"On-site session with a systems designer to tune scenes and coverage",
			model.TierBest, bestBase, consultShare, consultFloor,
		),
		enhancement(
			"Extended Warranty",
			"Three additional years of parts and labor coverage",
			model.TierBest, bestBase, warrantyShare, warrantyFloor,
		),
		enhancement(
			"Future Upgrade Package",
			"Pre-wire and credit toward the next round of device upgrades",
			model.TierBest, bestBase, upgradeShare, upgradeFloor,
		),
	)

	good = model.TierBundle{
		Tier:             model.TierGood,
		Items:            goodItems,
		Total:            roundCurrency(subtotal(goodItems) * profile.PriceMultiplier),
		ValueProposition: fmt.Sprintf("The essentials: %d core items covering your top priorities", len(goodItems)),
	}
	better = model.TierBundle{
		Tier:             model.TierBetter,
		Items:            betterItems,
		Total:            roundCurrency(subtotal(betterItems) * profile.PriceMultiplier),
		ValueProposition: "Our most popular configuration, balancing coverage and budget",
	}
	best = model.TierBundle{
		Tier:             model.TierBest,
		Items:            bestItems,
		Total:            roundCurrency(subtotal(bestItems) * profile.PriceMultiplier * bestTierPremiumFactor),
		ValueProposition: "The complete system with premium equipment, service, and future-proofing",
	}
	return good, better, best
}

// retier copies items into a tier, re-pricing catalog products at that
// tier's price and tagging a justification.
func retier(items []model.RecommendationItem, tier model.Tier, justification string) []model.RecommendationItem {
	out := make([]model.RecommendationItem, len(items))
	for i, item := range items {
		item.Tier = tier
		if item.Product != nil {
			item.UnitPrice = item.Product.TierPrice(tier)
		}
		if item.TierJustification == "" {
			item.TierJustification = fmt.Sprintf("%s (%s)", justification, displayCategory(item.Category))
		}
		out[i] = item
	}
	return out
}

// enhancement synthesizes a non-catalog service item priced as a share of
// the tier subtotal.
func enhancement(name, description string, tier model.Tier, tierSubtotal, share, floor float64) model.RecommendationItem {
	price := roundCurrency(tierSubtotal * share)
	if price < floor {
		price = floor
	}
	return model.RecommendationItem{
		Name:        name,
		Description: description,
		Category:    model.CategoryOther,
		UnitPrice:   price,
		Quantity:    1,
		Tier:        tier,
		Reasoning:   "Service enhancement included at this tier",
	}
}

func hasItem(items []model.RecommendationItem, name string) bool {
	for _, item := range items {
		if item.Name == name {
			return true
		}
	}
	return false
}

func subtotal(items []model.RecommendationItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return sum
}

func roundCurrency(v float64) float64 {
	return math.Round(v)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
