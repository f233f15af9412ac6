package llm

import (
	"fmt"
	"strings"

	"scenarist/pkg/schema"
)

// detailInstructions maps a detail level to the guidance embedded in the prompt.
var detailInstructions = map[schema.DetailLevel]string{
	schema.DetailLow:    "Keep each description to 1-2 sentences covering only the essential steps.",
	schema.DetailMedium: "Write 3-5 sentence descriptions covering preconditions, steps, and expected outcome.",
	schema.DetailHigh:   "Write thorough descriptions with preconditions, numbered steps, expected outcome, and edge conditions.",
}

// BuildScenarioPrompt creates the generation prompt for a requirement set.
func BuildScenarioPrompt(set *schema.RequirementSet, numScenarios int, detailLevel schema.DetailLevel) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`Generate %d test scenarios for the software requirements below.

`, numScenarios))

	if len(set.Requirements) > 0 {
		sb.WriteString("REQUIREMENTS:\n")
		for i, req := range set.Requirements {
			sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, req.Type, req.Text))
		}
		sb.WriteString("\n")
	}

	if len(set.UserStories) > 0 {
		sb.WriteString("USER STORIES:\n")
		for _, story := range set.UserStories {
			sb.WriteString(fmt.Sprintf("- %s\n", story.FullText))
		}
		sb.WriteString("\n")
	}

	if len(set.AcceptanceCriteria) > 0 {
		sb.WriteString("ACCEPTANCE CRITERIA:\n")
		for _, ac := range set.AcceptanceCriteria {
			sb.WriteString(fmt.Sprintf("- %s\n", ac))
		}
		sb.WriteString("\n")
	}

	instruction, ok := detailInstructions[detailLevel]
	if !ok {
		instruction = detailInstructions[schema.DetailMedium]
	}
	sb.WriteString(fmt.Sprintf("DETAIL LEVEL: %s. %s\n\n", detailLevel, instruction))

	sb.WriteString(`IMPORTANT RULES:
1. Each scenario must be independently executable by a tester
2. related_requirements lists the numbers of the requirements the scenario exercises, comma-separated
3. priority is one of: critical, high, medium, low
4. Cover both positive and negative paths where the requirements allow it

Return ONLY valid JSON with this exact structure:
[
  {
    "id": "001-01",
    "title": "short scenario title",
    "description": "what to do and what to expect",
    "related_requirements": "1, 2",
    "priority": "high"
  }
]`)

	return sb.String()
}
