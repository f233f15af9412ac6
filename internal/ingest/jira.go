package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"scenarist/pkg/schema"
)

// JiraExtractor parses a JIRA issue-export payload (the JSON shape the
// cloud search API returns) into a RequirementSet. Issue keys become
// requirement ids; Story-type issues also contribute user stories.
type JiraExtractor struct{}

// NewJiraExtractor creates an issue-export extractor.
func NewJiraExtractor() *JiraExtractor {
	return &JiraExtractor{}
}

// jiraExport mirrors the subset of the export shape we consume.
type jiraExport struct {
	Issues []struct {
		Key    string `json:"key"`
		Fields struct {
			Summary     string `json:"summary"`
			Description string `json:"description"`
			IssueType   struct {
				Name string `json:"name"`
			} `json:"issuetype"`
		} `json:"fields"`
	} `json:"issues"`
}

// Extract parses the export payload.
func (x *JiraExtractor) Extract(payload []byte) (*schema.RequirementSet, error) {
	if len(payload) == 0 {
		return nil, newError("jira", "", "empty payload", nil)
	}

	var export jiraExport
	if err := json.Unmarshal(payload, &export); err != nil {
		return nil, newError("jira", "", "parse export JSON", err)
	}

	set := &schema.RequirementSet{
		RawText:            string(payload),
		Requirements:       []schema.Requirement{},
		UserStories:        []schema.UserStory{},
		AcceptanceCriteria: []string{},
	}

	for i, issue := range export.Issues {
		if issue.Fields.Summary == "" {
			continue
		}

		id := issue.Key
		if id == "" {
			id = fmt.Sprintf("ISSUE-%d", i+1)
		}

		text := issue.Fields.Summary
		if desc := strings.TrimSpace(issue.Fields.Description); desc != "" {
			text = text + ": " + desc
		}

		set.Requirements = append(set.Requirements, schema.Requirement{
			ID:   id,
			Text: text,
			Type: classifyRequirement(text),
		})

		if strings.EqualFold(issue.Fields.IssueType.Name, "story") {
			if story, ok := parseStory(issue.Fields.Description); ok {
				set.UserStories = append(set.UserStories, story)
			} else if story, ok := parseStory(issue.Fields.Summary); ok {
				set.UserStories = append(set.UserStories, story)
			}
		}

		for _, line := range strings.Split(issue.Fields.Description, "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
			if criterionLine.MatchString(line) {
				set.AcceptanceCriteria = append(set.AcceptanceCriteria, line)
			}
		}
	}

	if len(set.Requirements) == 0 {
		return nil, newError("jira", "", "no usable issues in export", nil)
	}

	return set, nil
}

// parseStory matches the first "As a ... I want ..." line in text.
func parseStory(text string) (schema.UserStory, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if m := userStoryLine.FindStringSubmatch(line); m != nil {
			return schema.UserStory{
				Role:     strings.TrimSpace(m[1]),
				Goal:     strings.TrimSpace(m[2]),
				Benefit:  strings.TrimSpace(m[3]),
				FullText: line,
			}, true
		}
	}
	return schema.UserStory{}, false
}
