package persona

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/havenlink/advisor/internal/model"
)

// Free-text extraction helpers. Callers use these to enrich a
// recommendation request from a transcript before invoking the core.

var (
	budgetRe = regexp.MustCompile(`\$\s?([\d,]+(?:\.\d+)?)\s?(k|K)?`)
	// bare amounts near budget-ish words, e.g. "budget around 15000" or
	// "spend about 20k"
	budgetWordRe = regexp.MustCompile(`(?i)(?:budget|spend|invest|around|about|up to)\D{0,12}([\d,]+(?:\.\d+)?)\s?(k|K)?`)
	sizeRe       = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s?(?:sq\.?\s?ft|square\s?(?:feet|foot)|sqft)`)
)

// ExtractBudget pulls a dollar budget out of free text. Returns 0 when no
// amount is found. "15k" style suffixes are expanded.
func ExtractBudget(text string) float64 {
	if m := budgetRe.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1], m[2])
	}
	if m := budgetWordRe.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1], m[2])
	}
	return 0
}

// ExtractProjectSize pulls a square-footage figure out of free text.
// Returns 0 when none is found.
func ExtractProjectSize(text string) float64 {
	m := sizeRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return parseAmount(m[1], "")
}

// ExtractUrgency grades urgency from scheduling language. Defaults to low.
func ExtractUrgency(text string) model.Urgency {
	lower := strings.ToLower(text)
	for _, kw := range []string{"asap", "urgent", "immediately", "right away", "this week", "emergency"} {
		if strings.Contains(lower, kw) {
			return model.UrgencyHigh
		}
	}
	for _, kw := range []string{"soon", "this month", "next month", "few weeks", "before the holidays", "by the end of"} {
		if strings.Contains(lower, kw) {
			return model.UrgencyMedium
		}
	}
	return model.UrgencyLow
}

func parseAmount(num, suffix string) float64 {
	num = strings.ReplaceAll(num, ",", "")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if strings.EqualFold(suffix, "k") {
		v *= 1000
	}
	return v
}
