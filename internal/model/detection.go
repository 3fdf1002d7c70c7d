package model

// DetectionMethod identifies which path produced a detection result.
type DetectionMethod string

const (
	MethodRuleBased DetectionMethod = "rule-based"
	MethodAI        DetectionMethod = "ai"
	MethodCombined  DetectionMethod = "combined"
)

// CombinedMethod records how the detector merged the rule and AI results.
type CombinedMethod string

const (
	CombinedRuleOnly    CombinedMethod = "rule-based-only"
	CombinedAIPrimary   CombinedMethod = "ai-primary"
	CombinedRulePrimary CombinedMethod = "rule-based-primary"
	CombinedWeighted    CombinedMethod = "weighted-average"
)

// PersonaCandidate is a ranked alternative from the rule engine.
type PersonaCandidate struct {
	Persona    Persona `json:"persona"`
	Confidence float64 `json:"confidence"`
}

// DetectionResult is the outcome of one persona detection request.
// Immutable after construction; not persisted by the core.
type DetectionResult struct {
	Persona        Persona            `json:"persona"`
	Confidence     float64            `json:"confidence"` // clamped to [0,1]
	Method         DetectionMethod    `json:"method"`
	CombinedMethod CombinedMethod     `json:"combined_method,omitempty"`
	ProjectType    ProjectType        `json:"project_type"`
	Reasoning      string             `json:"reasoning,omitempty"`
	KeyIndicators  []string           `json:"key_indicators,omitempty"`
	Alternatives   []PersonaCandidate `json:"alternatives,omitempty"` // at most 2
	DetailedScores map[Persona]float64 `json:"detailed_scores,omitempty"`
	RuleBackup     *PersonaCandidate  `json:"rule_backup,omitempty"` // kept when AI is primary
}
