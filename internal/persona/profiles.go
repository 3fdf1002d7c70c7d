package persona

import (
	"github.com/rotisserie/eris"

	"github.com/havenlink/advisor/internal/model"
)

// profiles is the fixed persona table. Loaded once, never mutated at
// runtime. ValidateProfiles checks completeness at startup.
var profiles = map[model.Persona]model.PersonaProfile{
	model.PersonaHomeowner: {
		Persona:     model.PersonaHomeowner,
		ProjectType: model.ProjectTypeResidential,
		Keywords: []string{
			"family", "kids", "children", "home", "safety", "cameras",
			"doorbell", "locks", "babysitter", "pets", "school",
		},
		Phrases: []string{
			"family home", "keep my family safe", "peace of mind",
			"when we're away", "check on the kids", "door locks",
		},
		ContextClues: []string{
			"we have kids", "our first home", "working parents",
			"home during the day",
		},
		KeyFeatures: []string{
			"camera", "lock", "doorbell", "sensor", "alarm", "app",
		},
		PreferredTier:   model.TierBetter,
		ConfidenceBoost: 0.10,
		BudgetRange:     model.BudgetRange{Min: 5000, Max: 25000},
		MaxItems:        8,
		PriceMultiplier: 1.0,
		WantsInstall:    true,
		Strategy:        "family-first",
	},
	model.PersonaLuxuryHomeowner: {
		Persona:     model.PersonaLuxuryHomeowner,
		ProjectType: model.ProjectTypeResidential,
		Keywords: []string{
			"luxury", "estate", "premium", "bespoke", "theater", "cellar",
			"concierge", "architect", "designer", "pool",
		},
		Phrases: []string{
			"whole home automation", "home theater", "wine cellar",
			"no expense spared", "best of the best", "seamless experience",
		},
		ContextClues: []string{
			"second home", "interior designer", "square foot estate",
			"entertaining guests",
		},
		KeyFeatures: []string{
			"theater", "audio", "automation", "scene", "shades", "premium",
		},
		PreferredTier:   model.TierBest,
		ConfidenceBoost: 0.15,
		BudgetRange:     model.BudgetRange{Min: 25000, Max: 100000},
		MaxItems:        12,
		PriceMultiplier: 1.4,
		WantsInstall:    true,
		WantsSupport:    true,
		Strategy:        "premium-experience",
	},
	model.PersonaTechEnthusiast: {
		Persona:     model.PersonaTechEnthusiast,
		ProjectType: model.ProjectTypeResidential,
		Keywords: []string{
			"smart", "automation", "integration", "api", "zigbee", "zwave",
			"matter", "thread", "homekit", "alexa", "hub", "diy",
		},
		Phrases: []string{
			"home assistant", "smart home hub", "local control",
			"works with homekit", "automation routines", "mesh network",
		},
		ContextClues: []string{
			"i already have", "tinker with", "self-hosted",
			"open protocol",
		},
		KeyFeatures: []string{
			"hub", "integration", "protocol", "automation", "sensor", "api",
		},
		PreferredTier:   model.TierBetter,
		ConfidenceBoost: 0.10,
		BudgetRange:     model.BudgetRange{Min: 8000, Max: 40000},
		MaxItems:        10,
		PriceMultiplier: 1.1,
		Strategy:        "connected-living",
	},
	model.PersonaBuilder: {
		Persona:     model.PersonaBuilder,
		ProjectType: model.ProjectTypeResidential,
		Keywords: []string{
			"builder", "homes", "units", "subdivision", "development",
			"standardized", "spec", "volume", "lots", "phase",
		},
		Phrases: []string{
			"new construction", "cost-effective", "per unit", "model home",
			"rough-in", "bulk pricing",
		},
		ContextClues: []string{
			"20 homes", "across the development", "closing dates",
			"punch list",
		},
		KeyFeatures: []string{
			"standard", "wiring", "prewire", "thermostat", "doorbell", "panel",
		},
		PreferredTier:   model.TierGood,
		ConfidenceBoost: 0.15,
		BudgetRange:     model.BudgetRange{Min: 3000, Max: 15000},
		MaxItems:        6,
		PriceMultiplier: 0.85,
		Strategy:        "volume-standard",
	},
	model.PersonaPropertyManager: {
		Persona:     model.PersonaPropertyManager,
		ProjectType: model.ProjectTypeResidential,
		Keywords: []string{
			"tenants", "rentals", "landlord", "property", "turnover",
			"portfolio", "leasing", "maintenance", "airbnb",
		},
		Phrases: []string{
			"property management", "rental units", "tenant turnover",
			"remote access", "vacant units", "short-term rental",
		},
		ContextClues: []string{
			"between tenants", "across our properties", "lockbox",
			"self showing",
		},
		KeyFeatures: []string{
			"lock", "access", "thermostat", "sensor", "remote", "code",
		},
		PreferredTier:   model.TierGood,
		ConfidenceBoost: 0.10,
		BudgetRange:     model.BudgetRange{Min: 10000, Max: 60000},
		MaxItems:        8,
		PriceMultiplier: 0.9,
		WantsInstall:    true,
		WantsSupport:    true,
		Strategy:        "multi-unit-essentials",
	},
	model.PersonaCTOCIO: {
		Persona:     model.PersonaCTOCIO,
		ProjectType: model.ProjectTypeCommercial,
		Keywords: []string{
			"integration", "infrastructure", "security", "compliance",
			"scalability", "sso", "api", "vlan", "poe", "uptime",
		},
		Phrases: []string{
			"it department", "network infrastructure", "access control",
			"audit trail", "single pane of glass", "service level",
		},
		ContextClues: []string{
			"our it team", "existing stack", "vendor consolidation",
			"security review",
		},
		KeyFeatures: []string{
			"network", "switch", "access", "camera", "vlan", "management",
		},
		PreferredTier:   model.TierBest,
		ConfidenceBoost: 0.20,
		BudgetRange:     model.BudgetRange{Min: 50000, Max: 250000},
		MaxItems:        14,
		PriceMultiplier: 1.3,
		WantsInstall:    true,
		WantsSupport:    true,
		Strategy:        "enterprise-integration",
	},
	model.PersonaFacilities: {
		Persona:     model.PersonaFacilities,
		ProjectType: model.ProjectTypeCommercial,
		Keywords: []string{
			"facility", "facilities", "hvac", "energy", "maintenance",
			"badge", "occupancy", "janitorial", "utilities",
		},
		Phrases: []string{
			"facilities team", "energy savings", "badge access",
			"after hours", "work orders", "building systems",
		},
		ContextClues: []string{
			"across three floors", "utility costs", "tenant comfort",
			"preventive maintenance",
		},
		KeyFeatures: []string{
			"thermostat", "sensor", "access", "lighting", "schedule", "energy",
		},
		PreferredTier:   model.TierBetter,
		ConfidenceBoost: 0.10,
		BudgetRange:     model.BudgetRange{Min: 20000, Max: 120000},
		MaxItems:        12,
		PriceMultiplier: 1.0,
		WantsInstall:    true,
		WantsSupport:    true,
		Strategy:        "operations-control",
	},
	model.PersonaSmallBusiness: {
		Persona:     model.PersonaSmallBusiness,
		ProjectType: model.ProjectTypeCommercial,
		Keywords: []string{
			"store", "shop", "storefront", "restaurant", "cafe", "salon",
			"inventory", "register", "customers", "shoplifting",
		},
		Phrases: []string{
			"small business", "front door", "after closing",
			"cash register", "break-in", "keep an eye on the store",
		},
		ContextClues: []string{
			"my shop", "our storefront", "opening a second location",
			"employees closing up",
		},
		KeyFeatures: []string{
			"camera", "alarm", "lock", "doorbell", "monitoring", "app",
		},
		PreferredTier:   model.TierGood,
		ConfidenceBoost: 0.10,
		BudgetRange:     model.BudgetRange{Min: 5000, Max: 30000},
		MaxItems:        7,
		PriceMultiplier: 0.95,
		WantsInstall:    true,
		Strategy:        "essential-coverage",
	},
	model.PersonaHospitality: {
		Persona:     model.PersonaHospitality,
		ProjectType: model.ProjectTypeCommercial,
		Keywords: []string{
			"hotel", "guests", "rooms", "hospitality", "resort", "lobby",
			"check-in", "amenities", "housekeeping", "suites",
		},
		Phrases: []string{
			"guest experience", "keyless entry", "room controls",
			"front desk", "guest rooms", "mobile key",
		},
		ContextClues: []string{
			"our guests expect", "occupancy rates", "star rating",
			"property management system",
		},
		KeyFeatures: []string{
			"lock", "thermostat", "lighting", "audio", "access", "scene",
		},
		PreferredTier:   model.TierBetter,
		ConfidenceBoost: 0.15,
		BudgetRange:     model.BudgetRange{Min: 30000, Max: 150000},
		MaxItems:        12,
		PriceMultiplier: 1.2,
		WantsInstall:    true,
		WantsSupport:    true,
		Strategy:        "comprehensive-coverage",
	},
}

// ProfileOf returns the profile for a persona, or false when unknown.
func ProfileOf(p model.Persona) (model.PersonaProfile, bool) {
	prof, ok := profiles[p]
	return prof, ok
}

// EligibleProfiles returns the profiles for one project type in stable
// table order.
func EligibleProfiles(pt model.ProjectType) []model.PersonaProfile {
	var out []model.PersonaProfile
	for _, p := range model.AllPersonas() {
		prof := profiles[p]
		if prof.ProjectType == pt {
			out = append(out, prof)
		}
	}
	return out
}

// DefaultPersona is the fallback when nothing in the text matches: the
// first eligible persona for the project type.
func DefaultPersona(pt model.ProjectType) model.Persona {
	eligible := EligibleProfiles(pt)
	if len(eligible) == 0 {
		return model.PersonaHomeowner
	}
	return eligible[0].Persona
}

// ValidateProfiles checks the persona table for completeness: every persona
// present, non-empty pattern lists, positive pricing fields. Called once at
// startup.
func ValidateProfiles() error {
	for _, p := range model.AllPersonas() {
		prof, ok := profiles[p]
		if !ok {
			return eris.Errorf("persona: missing profile for %s", p)
		}
		if len(prof.Keywords) == 0 || len(prof.Phrases) == 0 || len(prof.ContextClues) == 0 {
			return eris.Errorf("persona: profile %s has empty pattern lists", p)
		}
		if prof.ConfidenceBoost < 0 || prof.ConfidenceBoost > 1 {
			return eris.Errorf("persona: profile %s confidence boost out of range", p)
		}
		if prof.PriceMultiplier <= 0 {
			return eris.Errorf("persona: profile %s has non-positive price multiplier", p)
		}
		if prof.MaxItems <= 0 {
			return eris.Errorf("persona: profile %s has non-positive max items", p)
		}
		if prof.BudgetRange.Min <= 0 || prof.BudgetRange.Max <= prof.BudgetRange.Min {
			return eris.Errorf("persona: profile %s has invalid budget range", p)
		}
		if prof.Strategy == "" {
			return eris.Errorf("persona: profile %s has no strategy", p)
		}
	}
	return nil
}
