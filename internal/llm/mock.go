package llm

import (
	"context"

	"scenarist/pkg/schema"
)

// MockGenerator is a canned generation client for testing. It records how
// it was called and returns a fixed output or error.
type MockGenerator struct {
	Output *schema.GenerationOutput
	Err    error

	Calls            int
	LastNumScenarios int
	LastDetailLevel  schema.DetailLevel
	LastSet          *schema.RequirementSet
}

// NewMockGenerator creates a mock with a default successful batch of drafts.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		Output: &schema.GenerationOutput{
			Drafts: []schema.ScenarioDraft{
				{
					ID:                  "001-01",
					Title:               "Successful login with valid credentials",
					Description:         "Verify that a registered user can authenticate with a valid password.",
					RelatedRequirements: "1, 2",
					Priority:            "high",
				},
				{
					ID:                  "001-02",
					Title:               "Login rejected with invalid password",
					Description:         "Verify that authentication fails and an error is shown for a wrong password.",
					RelatedRequirements: "1",
					Priority:            "medium",
				},
			},
			Metadata: map[string]any{
				"model":                   "mock",
				"generation_time_seconds": 0.0,
				"requirements_count":      2,
				"scenarios_requested":     2,
				"scenarios_parsed":        2,
			},
			RawResponse: `[{"id":"001-01"},{"id":"001-02"}]`,
		},
	}
}

// Generate returns the canned output or error, recording the call.
func (m *MockGenerator) Generate(
	ctx context.Context,
	set *schema.RequirementSet,
	numScenarios int,
	detailLevel schema.DetailLevel,
) (*schema.GenerationOutput, error) {
	m.Calls++
	m.LastNumScenarios = numScenarios
	m.LastDetailLevel = detailLevel
	m.LastSet = set

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Output, nil
}
