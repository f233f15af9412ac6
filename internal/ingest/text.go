package ingest

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"scenarist/pkg/schema"
)

// TextExtractor turns free-form requirement text into a RequirementSet.
// It recognizes numbered and bulleted requirement lines, "As a ... I want
// ... so that ..." user stories, and Given/When/Then acceptance criteria.
type TextExtractor struct{}

// NewTextExtractor creates a raw-text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

var (
	numberedLine  = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.+)$`)
	bulletLine    = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)
	userStoryLine = regexp.MustCompile(`(?i)^as an?\s+(.+?),?\s+i want\s+(?:to\s+)?(.+?)(?:,?\s+so that\s+(.+?))?\s*\.?$`)
	criterionLine = regexp.MustCompile(`(?i)^(given|when|then|and)\b`)
	modalVerb     = regexp.MustCompile(`(?i)\b(shall|must|should)\b`)
)

// nonFunctionalTerms classify a requirement line as non-functional.
var nonFunctionalTerms = []string{
	"performance", "security", "usability", "reliability", "scalability",
	"availability", "maintainability", "latency", "throughput", "response time",
}

// Extract parses text into a normalized requirement set. Empty input is an
// ingestion error; otherwise lines that match no pattern are simply ignored.
func (x *TextExtractor) Extract(text string) (*schema.RequirementSet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newError("text", "", "empty input", nil)
	}

	set := &schema.RequirementSet{
		RawText:            text,
		Requirements:       []schema.Requirement{},
		UserStories:        []schema.UserStory{},
		AcceptanceCriteria: []string{},
	}

	seen := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Strip a bullet so stories and criteria inside lists still match.
		body := line
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			body = m[1]
		}

		if m := userStoryLine.FindStringSubmatch(body); m != nil {
			set.UserStories = append(set.UserStories, schema.UserStory{
				Role:     strings.TrimSpace(m[1]),
				Goal:     strings.TrimSpace(m[2]),
				Benefit:  strings.TrimSpace(m[3]),
				FullText: body,
			})
			continue
		}

		if criterionLine.MatchString(body) {
			set.AcceptanceCriteria = append(set.AcceptanceCriteria, body)
			continue
		}

		sourceID := ""
		requirementText := ""
		switch {
		case numberedLine.MatchString(line):
			m := numberedLine.FindStringSubmatch(line)
			sourceID, requirementText = m[1], strings.TrimSpace(m[2])
		case body != line:
			requirementText = body
		case modalVerb.MatchString(line):
			requirementText = line
		default:
			continue
		}

		id := sourceID
		if id == "" || seen[id] {
			id = strconv.Itoa(len(set.Requirements) + 1)
		}
		seen[id] = true

		set.Requirements = append(set.Requirements, schema.Requirement{
			ID:   id,
			Text: requirementText,
			Type: classifyRequirement(requirementText),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, newError("text", "", "scan input", err)
	}

	return set, nil
}

// classifyRequirement tags a requirement line as functional or
// non-functional based on quality-attribute vocabulary.
func classifyRequirement(text string) schema.RequirementType {
	lowered := strings.ToLower(text)
	for _, term := range nonFunctionalTerms {
		if strings.Contains(lowered, term) {
			return schema.RequirementNonFunctional
		}
	}
	return schema.RequirementFunctional
}
