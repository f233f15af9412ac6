package schema

// Requirement is a single normalized requirement produced by ingestion.
// IDs are unique within a RequirementSet and mirror the source numbering.
type Requirement struct {
	ID   string          `json:"id" yaml:"id"`
	Text string          `json:"text" yaml:"text"`
	Type RequirementType `json:"type" yaml:"type" jsonschema:"enum=functional,enum=non-functional"`
}

// UserStory is an "As a / I want / so that" statement found in the source.
type UserStory struct {
	Role     string `json:"role" yaml:"role"`
	Goal     string `json:"goal" yaml:"goal"`
	Benefit  string `json:"benefit,omitempty" yaml:"benefit,omitempty"`
	FullText string `json:"full_text" yaml:"full_text"`
}

// RequirementSet is the normalized output of an ingestion collaborator.
// The generation pipeline treats it as read-only; requirement order is
// insertion order.
type RequirementSet struct {
	RawText            string        `json:"raw_text" yaml:"raw_text"`
	Requirements       []Requirement `json:"requirements" yaml:"requirements"`
	UserStories        []UserStory   `json:"user_stories" yaml:"user_stories"`
	AcceptanceCriteria []string      `json:"acceptance_criteria" yaml:"acceptance_criteria"`
}
