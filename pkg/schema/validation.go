package schema

import "fmt"

// ValidateRequirement validates a single normalized requirement.
func ValidateRequirement(r *Requirement) error {
	if r.ID == "" {
		return fmt.Errorf("requirement id is required")
	}

	if len(r.Text) < RequirementTextMin || len(r.Text) > RequirementTextMax {
		return fmt.Errorf("text must be %d-%d characters", RequirementTextMin, RequirementTextMax)
	}

	switch r.Type {
	case RequirementFunctional, RequirementNonFunctional:
		// Valid
	default:
		return fmt.Errorf("invalid requirement type: %s", r.Type)
	}

	return nil
}

// ValidateRequirementSet validates every requirement and checks id uniqueness.
func ValidateRequirementSet(s *RequirementSet) error {
	seen := make(map[string]bool, len(s.Requirements))
	for i := range s.Requirements {
		req := &s.Requirements[i]
		if err := ValidateRequirement(req); err != nil {
			return fmt.Errorf("requirement %d: %w", i, err)
		}
		if seen[req.ID] {
			return fmt.Errorf("duplicate requirement id: %s", req.ID)
		}
		seen[req.ID] = true
	}
	return nil
}

// ValidateScenario validates an enriched scenario against the output contract.
func ValidateScenario(s *Scenario) error {
	if len(s.Title) > ScenarioTitleMax {
		return fmt.Errorf("title must be at most %d characters", ScenarioTitleMax)
	}

	if s.ID != "" && CanonicalScenarioID(s.ID) != s.ID {
		return fmt.Errorf("id %q is not canonical (missing %s prefix)", s.ID, ScenarioIDPrefix)
	}

	if !s.TestType.Valid() {
		return fmt.Errorf("invalid test type: %s", s.TestType)
	}

	pct := s.Coverage.CoveragePercentage
	if pct < CoverageMin || pct > CoverageMax {
		return fmt.Errorf("coverage percentage %.2f outside [%.0f,%.0f]", pct, CoverageMin, CoverageMax)
	}

	if s.GenerationTimestamp == "" {
		return fmt.Errorf("generation timestamp is required")
	}

	return nil
}
