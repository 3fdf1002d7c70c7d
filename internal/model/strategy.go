package model

// BundleStrategy is a named category-priority and budget-distribution
// policy. Strategies come from a fixed table and are looked up, never
// constructed dynamically.
type BundleStrategy struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	// CategoryPriority lists categories in selection order; position feeds
	// the product relevance score.
	CategoryPriority []Category `json:"category_priority"`
	// Distribution maps category to its percentage of the total budget.
	// Percentages sum to 100 (validated at startup).
	Distribution map[Category]float64 `json:"distribution"`
}
