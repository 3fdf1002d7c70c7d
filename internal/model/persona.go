package model

// ProjectType gates which personas are eligible for a detection request.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
)

// Persona is a fixed customer archetype driving tone, budget expectations,
// and category priorities.
type Persona string

const (
	PersonaHomeowner       Persona = "homeowner"
	PersonaLuxuryHomeowner Persona = "luxury-homeowner"
	PersonaTechEnthusiast  Persona = "tech-enthusiast"
	PersonaBuilder         Persona = "builder"
	PersonaPropertyManager Persona = "property-manager"
	PersonaCTOCIO          Persona = "cto-cio"
	PersonaFacilities      Persona = "facilities-manager"
	PersonaSmallBusiness   Persona = "small-business-owner"
	PersonaHospitality     Persona = "hospitality-operator"
)

// AllPersonas returns every known persona in table order.
func AllPersonas() []Persona {
	return []Persona{
		PersonaHomeowner,
		PersonaLuxuryHomeowner,
		PersonaTechEnthusiast,
		PersonaBuilder,
		PersonaPropertyManager,
		PersonaCTOCIO,
		PersonaFacilities,
		PersonaSmallBusiness,
		PersonaHospitality,
	}
}

// Tier is a price/scope level of a recommended bundle.
type Tier string

const (
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

// BudgetRange bounds a persona's typical project spend in USD.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PersonaProfile is the immutable pattern and pricing profile for one
// persona. Profiles are loaded once at startup and never mutated.
type PersonaProfile struct {
	Persona         Persona     `json:"persona"`
	ProjectType     ProjectType `json:"project_type"`
	Keywords        []string    `json:"keywords"`
	Phrases         []string    `json:"phrases"`
	ContextClues    []string    `json:"context_clues"`
	KeyFeatures     []string    `json:"key_features"`
	PreferredTier   Tier        `json:"preferred_tier"`
	ConfidenceBoost float64     `json:"confidence_boost"` // 0-1, multiplier bonus on rule scores
	BudgetRange     BudgetRange `json:"budget_range"`
	MaxItems        int         `json:"max_items"`
	PriceMultiplier float64     `json:"price_multiplier"`
	WantsInstall    bool        `json:"wants_install"`
	WantsSupport    bool        `json:"wants_support"`
	Strategy        string      `json:"strategy"`
}
