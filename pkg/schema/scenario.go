package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ScenarioDraft is one pre-enrichment scenario as emitted by the generative
// model. The model's output has no enforced schema: every field except
// id/title/description may be absent, and even those are not guaranteed.
// Absence is represented by the zero value and is never an error.
type ScenarioDraft struct {
	ID                  string `json:"id,omitempty" yaml:"id,omitempty"`
	Title               string `json:"title" yaml:"title"`
	Description         string `json:"description" yaml:"description"`
	RelatedRequirements string `json:"related_requirements,omitempty" yaml:"related_requirements,omitempty"`
	Priority            string `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// UnmarshalJSON tolerates the shape drift seen in real model output:
// numeric ids and priorities, and related_requirements given either as a
// comma string or as an array of ids.
func (d *ScenarioDraft) UnmarshalJSON(data []byte) error {
	type draftAlias struct {
		ID                  json.RawMessage `json:"id"`
		Title               string          `json:"title"`
		Description         string          `json:"description"`
		RelatedRequirements json.RawMessage `json:"related_requirements"`
		Priority            json.RawMessage `json:"priority"`
	}

	var temp draftAlias
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	d.ID = coerceScalar(temp.ID)
	d.Title = temp.Title
	d.Description = temp.Description
	d.Priority = coerceScalar(temp.Priority)
	d.RelatedRequirements = coerceRelated(temp.RelatedRequirements)
	return nil
}

// coerceScalar renders a JSON string or number as its plain text form.
func coerceScalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// coerceRelated flattens an array form into the canonical comma list.
func coerceRelated(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if v := coerceScalar(item); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// Coverage records which requirement ids a scenario claims to exercise.
// Claims are taken at face value; ids are not verified against the set.
type Coverage struct {
	RequirementsCovered []string `json:"requirements_covered" yaml:"requirements_covered"`
	CoveragePercentage  float64  `json:"coverage_percentage" yaml:"coverage_percentage"`
}

// Scenario is the canonical post-enrichment output unit.
type Scenario struct {
	ID                  string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title               string   `json:"title" yaml:"title"`
	Description         string   `json:"description" yaml:"description"`
	RelatedRequirements string   `json:"related_requirements,omitempty" yaml:"related_requirements,omitempty"`
	Priority            string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	GenerationTimestamp string   `json:"generation_timestamp" yaml:"generation_timestamp"`
	FocusAreas          []string `json:"focus_areas" yaml:"focus_areas"`
	Coverage            Coverage `json:"coverage" yaml:"coverage"`
	TestType            TestType `json:"test_type" yaml:"test_type" jsonschema:"enum=functional,enum=security,enum=performance,enum=usability,enum=integration"`
}

// GenerationOutput is what the generation client hands back: parsed drafts,
// call metadata, and the completion text exactly as the model produced it.
type GenerationOutput struct {
	Drafts      []ScenarioDraft
	Metadata    map[string]any
	RawResponse string
}

// GenerationResult is the final output contract. Metadata holds everything
// the generation client reported plus the echoed priority_focus and
// custom_focus. RawLLMResponse is kept unmodified for audit and debugging.
type GenerationResult struct {
	Scenarios      []Scenario     `json:"scenarios" yaml:"scenarios"`
	Metadata       map[string]any `json:"metadata" yaml:"metadata"`
	RawLLMResponse string         `json:"raw_llm_response" yaml:"raw_llm_response"`
}
