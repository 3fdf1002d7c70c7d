package model

// Urgency grades how quickly the prospect wants the project done.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// RecommendationItem is one line of a tier bundle. Product is nil for
// synthesized items such as installation or warranty packages.
type RecommendationItem struct {
	Product           *Product `json:"product,omitempty"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Category          Category `json:"category"`
	UnitPrice         float64  `json:"unit_price"`
	Quantity          int      `json:"quantity"`
	Tier              Tier     `json:"tier"`
	Reasoning         string   `json:"reasoning,omitempty"`
	IsDependency      bool     `json:"is_dependency,omitempty"`
	TierJustification string   `json:"tier_justification,omitempty"`
	CompetitiveEdge   string   `json:"competitive_edge,omitempty"`
}

// TierBundle is one assembled Good/Better/Best tier.
type TierBundle struct {
	Tier             Tier                 `json:"tier"`
	Items            []RecommendationItem `json:"items"`
	Total            float64              `json:"total"`
	ValueProposition string               `json:"value_proposition,omitempty"`
}

// RecommendationResult is the full three-tier recommendation for one request.
type RecommendationResult struct {
	Persona          Persona    `json:"persona"`
	Strategy         string     `json:"bundle_strategy"`
	GoodTier         TierBundle `json:"good_tier"`
	BetterTier       TierBundle `json:"better_tier"`
	BestTier         TierBundle `json:"best_tier"`
	RecommendedTier  Tier       `json:"recommended_tier"`
	// EstimatedTotal mirrors the better tier's total by convention.
	EstimatedTotal   float64    `json:"estimated_total"`
	CompetitiveEdge  string     `json:"competitive_edge,omitempty"`
}

// DetectionRequest is the input to persona detection. At least one of Text
// or VoiceTranscript must be non-empty.
type DetectionRequest struct {
	Text              string         `json:"text,omitempty"`
	VoiceTranscript   string         `json:"voice_transcript,omitempty"`
	AdditionalContext map[string]any `json:"additional_context,omitempty"`
}

// Input returns the effective text for detection, preferring Text.
func (r DetectionRequest) Input() string {
	if r.Text != "" {
		return r.Text
	}
	return r.VoiceTranscript
}

// RecommendationRequest is the input to bundle recommendation.
type RecommendationRequest struct {
	Persona              string   `json:"persona"`
	PersonaConfidence    float64  `json:"persona_confidence,omitempty"`
	VoiceTranscript      string   `json:"voice_transcript,omitempty"`
	Budget               float64  `json:"budget,omitempty"`
	ProjectSize          float64  `json:"project_size,omitempty"`
	Urgency              Urgency  `json:"urgency,omitempty"`
	SpecificRequirements []string `json:"specific_requirements,omitempty"`
}
