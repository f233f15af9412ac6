package core

import "scenarist/pkg/schema"

// AssembleResult merges enriched scenarios with the generation client's
// metadata and raw completion into the final result. The client's metadata
// map is copied, never mutated, before priority_focus and custom_focus are
// added for traceability.
func AssembleResult(
	scenarios []schema.Scenario,
	output *schema.GenerationOutput,
	priorityFocus string,
	customFocus []string,
) *schema.GenerationResult {
	metadata := make(map[string]any, len(output.Metadata)+2)
	for k, v := range output.Metadata {
		metadata[k] = v
	}

	if customFocus == nil {
		customFocus = []string{}
	}
	metadata["priority_focus"] = priorityFocus
	metadata["custom_focus"] = customFocus

	return &schema.GenerationResult{
		Scenarios:      scenarios,
		Metadata:       metadata,
		RawLLMResponse: output.RawResponse,
	}
}
