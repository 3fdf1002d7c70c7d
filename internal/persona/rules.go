package persona

import (
	"math"
	"sort"

	"github.com/havenlink/advisor/internal/model"
)

// Pattern weights for the rule engine. Context clues are the strongest
// signal, phrases beat bare keywords.
const (
	keywordWeight = 1.0
	phraseWeight  = 2.0
	contextWeight = 3.0

	// ruleConfidenceCap keeps the rule-based path below full certainty.
	ruleConfidenceCap = 0.95

	// zeroMatchConfidence is reported when nothing in the text matched and
	// the project type's default persona is returned.
	zeroMatchConfidence = 0.05
)

// ruleConfidence converts a raw pattern score into a capped confidence.
func ruleConfidence(score float64) float64 {
	return math.Min(score/10, ruleConfidenceCap)
}

// RunRules scores every persona eligible under the classified project type
// and returns a rule-based DetectionResult. Deterministic: identical text
// yields an identical result.
func RunRules(text string, pt model.ProjectType) model.DetectionResult {
	eligible := EligibleProfiles(pt)

	type ranked struct {
		persona model.Persona
		score   float64
		order   int
	}

	scores := make(map[model.Persona]float64, len(eligible))
	rankedList := make([]ranked, 0, len(eligible))
	for i, prof := range eligible {
		raw := keywordWeight*float64(Score(text, prof.Keywords)) +
			phraseWeight*float64(Score(text, prof.Phrases)) +
			contextWeight*float64(Score(text, prof.ContextClues))
		score := raw * (1 + prof.ConfidenceBoost)
		scores[prof.Persona] = score
		rankedList = append(rankedList, ranked{persona: prof.Persona, score: score, order: i})
	}

	// Descending by score; table order breaks ties to keep determinism.
	sort.SliceStable(rankedList, func(i, j int) bool {
		if rankedList[i].score != rankedList[j].score {
			return rankedList[i].score > rankedList[j].score
		}
		return rankedList[i].order < rankedList[j].order
	})

	if len(rankedList) == 0 || rankedList[0].score == 0 {
		return model.DetectionResult{
			Persona:        DefaultPersona(pt),
			Confidence:     zeroMatchConfidence,
			Method:         model.MethodRuleBased,
			ProjectType:    pt,
			DetailedScores: scores,
		}
	}

	top := rankedList[0]
	result := model.DetectionResult{
		Persona:        top.persona,
		Confidence:     ruleConfidence(top.score),
		Method:         model.MethodRuleBased,
		ProjectType:    pt,
		DetailedScores: scores,
	}

	// Up to two runners-up with their own capped confidences.
	for _, r := range rankedList[1:] {
		if len(result.Alternatives) == 2 {
			break
		}
		if r.score == 0 {
			continue
		}
		result.Alternatives = append(result.Alternatives, model.PersonaCandidate{
			Persona:    r.persona,
			Confidence: ruleConfidence(r.score),
		})
	}

	return result
}
