package persona

import (
	"github.com/havenlink/advisor/internal/model"
)

// residentialTerms and commercialTerms feed the project type classifier.
// Single words match on word boundaries; multi-word entries match on
// containment.
var residentialTerms = []string{
	"home", "house", "family", "kids", "children", "bedroom", "bedrooms",
	"living room", "apartment", "condo", "townhouse", "backyard", "garage",
	"kitchen", "nursery", "spouse", "wife", "husband", "residence",
	"family home", "my house", "our home", "vacation home",
}

var commercialTerms = []string{
	"office", "offices", "business", "employees", "staff", "enterprise",
	"company", "corporate", "warehouse", "retail", "tenants", "facility",
	"facilities", "campus", "headquarters", "conference room", "lobby",
	"commercial property", "our building", "square feet of office",
	"it department", "compliance",
}

// ClassifyProjectType decides residential vs commercial from the input
// text. Commercial wins only on a strictly greater score; ties and empty
// input default to residential.
func ClassifyProjectType(text string) model.ProjectType {
	res := Score(text, residentialTerms)
	com := Score(text, commercialTerms)
	if com > res {
		return model.ProjectTypeCommercial
	}
	return model.ProjectTypeResidential
}
