package core

import (
	"strings"
	"time"

	"scenarist/pkg/schema"
)

// testTypeKeywords classify scenario intent. Order matters: a description
// mentioning both "auth" and "load" is a security scenario because the
// security set is checked first.
var testTypeKeywords = []struct {
	testType schema.TestType
	terms    []string
}{
	{schema.TestSecurity, []string{"security", "auth", "authentication", "authorization", "permission"}},
	{schema.TestPerformance, []string{"performance", "load", "stress", "speed", "response time"}},
	{schema.TestUsability, []string{"usability", "user experience", "ux", "ui", "interface"}},
	{schema.TestIntegration, []string{"integration", "api", "webhook", "communication"}},
}

// descriptionMarkers strips markdown emphasis, heading, and code markers.
var descriptionMarkers = strings.NewReplacer("*", "", "#", "", "`", "")

// EnrichScenarios runs the enrichment pipeline over draft scenarios: the
// priority filter, focus-area tagging, coverage scoring, id
// canonicalization, test-type classification, and description
// normalization, in that order. It is pure apart from the timestamp, which
// is read once and applied to every scenario in the batch. Drafts are
// never rejected for missing fields; only the priority filter drops them.
func EnrichScenarios(
	drafts []schema.ScenarioDraft,
	set *schema.RequirementSet,
	priorityFocus string,
	customFocus []string,
) []schema.Scenario {
	stamp := time.Now().UTC().Format(time.RFC3339)

	total := 0
	if set != nil {
		total = len(set.Requirements)
	}

	scenarios := make([]schema.Scenario, 0, len(drafts))
	for _, draft := range drafts {
		if priorityFocus != "" && !strings.EqualFold(draft.Priority, priorityFocus) {
			continue
		}

		covered := splitRequirementClaims(draft.RelatedRequirements)
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(len(covered)) / float64(total)
		}

		scenarios = append(scenarios, schema.Scenario{
			ID:                  schema.CanonicalScenarioID(draft.ID),
			Title:               draft.Title,
			Description:         NormalizeDescription(draft.Description),
			RelatedRequirements: draft.RelatedRequirements,
			Priority:            draft.Priority,
			GenerationTimestamp: stamp,
			FocusAreas:          matchFocusAreas(draft, customFocus),
			Coverage: schema.Coverage{
				RequirementsCovered: covered,
				CoveragePercentage:  pct,
			},
			TestType: ClassifyTestType(draft.Title, draft.Description),
		})
	}

	return scenarios
}

// matchFocusAreas collects the caller's focus phrases found in the draft,
// case-insensitively, preserving the caller's casing and phrase order.
func matchFocusAreas(draft schema.ScenarioDraft, customFocus []string) []string {
	matched := []string{}
	if len(customFocus) == 0 {
		return matched
	}

	haystack := strings.ToLower(draft.Description + " " + draft.Title)
	for _, phrase := range customFocus {
		if phrase == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(phrase)) {
			matched = append(matched, phrase)
		}
	}
	return matched
}

// splitRequirementClaims parses the free-form related_requirements field
// into the list of claimed requirement ids. Claims are not verified
// against the requirement set; coverage counts what the model asserts.
func splitRequirementClaims(related string) []string {
	claims := []string{}
	for _, piece := range strings.Split(related, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			claims = append(claims, piece)
		}
	}
	return claims
}

// ClassifyTestType derives a scenario's test type from its title and
// description. The first keyword set with a match wins; with no match the
// scenario is functional.
func ClassifyTestType(title, description string) schema.TestType {
	haystack := strings.ToLower(description + " " + title)
	for _, group := range testTypeKeywords {
		for _, term := range group.terms {
			if strings.Contains(haystack, term) {
				return group.testType
			}
		}
	}
	return schema.TestFunctional
}

// NormalizeDescription strips markdown emphasis/heading/code markers and
// collapses whitespace runs to single spaces. Markers are removed before
// collapsing so the result is idempotent.
func NormalizeDescription(description string) string {
	stripped := descriptionMarkers.Replace(description)
	return strings.Join(strings.Fields(stripped), " ")
}
