package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/havenlink/advisor/internal/model"
)

func TestScore_SingleWordCountsOccurrences(t *testing.T) {
	text := "The home office is in the home. Home sweet home."
	assert.Equal(t, 4, Score(text, []string{"home"}))
}

func TestScore_WholeWordBoundary(t *testing.T) {
	// "homework" and "homes" must not match "home".
	assert.Equal(t, 0, Score("homework and homes", []string{"home"}))
	assert.Equal(t, 1, Score("our home, finally", []string{"home"}))
}

func TestScore_PhrasePresenceCountsOnce(t *testing.T) {
	text := "family home here, family home there, family home everywhere"
	assert.Equal(t, 1, Score(text, []string{"family home"}))
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 2, Score("SECURITY and Security", []string{"security"}))
	assert.Equal(t, 1, Score("Smart Home setup", []string{"smart home"}))
}

func TestScore_MultipleTerms(t *testing.T) {
	text := "kids at home and cameras on the doorbell"
	// kids=1, home=1, cameras=1, doorbell=1
	assert.Equal(t, 4, Score(text, []string{"kids", "home", "cameras", "doorbell"}))
}

func TestScore_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0, Score("", []string{"home"}))
	assert.Equal(t, 0, Score("some text", nil))
	assert.Equal(t, 0, Score("some text", []string{"", "  "}))
}

func TestScore_PunctuationBoundaries(t *testing.T) {
	assert.Equal(t, 1, Score("cameras, locks (home)", []string{"home"}))
	assert.Equal(t, 1, Score("home.", []string{"home"}))
}

func TestClassifyProjectType_Residential(t *testing.T) {
	pt := ClassifyProjectType("We want cameras for our family home, mostly the backyard and garage")
	assert.Equal(t, model.ProjectTypeResidential, pt)
}

func TestClassifyProjectType_Commercial(t *testing.T) {
	pt := ClassifyProjectType("Our office building needs access control for employees and the warehouse")
	assert.Equal(t, model.ProjectTypeCommercial, pt)
}

func TestClassifyProjectType_TieDefaultsResidential(t *testing.T) {
	// "home office" scores one residential term and one commercial term.
	assert.Equal(t, model.ProjectTypeResidential, ClassifyProjectType("home office"))
	assert.Equal(t, model.ProjectTypeResidential, ClassifyProjectType(""))
	assert.Equal(t, model.ProjectTypeResidential, ClassifyProjectType("I want some smart lights"))
}
