package schema

// RequirementType distinguishes functional from non-functional requirements.
type RequirementType string

const (
	RequirementFunctional    RequirementType = "functional"
	RequirementNonFunctional RequirementType = "non-functional"
)

// DetailLevel controls how elaborate generated scenarios should be.
type DetailLevel string

const (
	DetailLow    DetailLevel = "low"
	DetailMedium DetailLevel = "medium"
	DetailHigh   DetailLevel = "high"
)

// Valid reports whether d is one of the three recognized levels.
func (d DetailLevel) Valid() bool {
	switch d {
	case DetailLow, DetailMedium, DetailHigh:
		return true
	}
	return false
}

// TestType classifies the intent of a generated scenario.
type TestType string

const (
	TestFunctional  TestType = "functional"
	TestSecurity    TestType = "security"
	TestPerformance TestType = "performance"
	TestUsability   TestType = "usability"
	TestIntegration TestType = "integration"
)

// Valid reports whether t is one of the five recognized test types.
func (t TestType) Valid() bool {
	switch t {
	case TestFunctional, TestSecurity, TestPerformance, TestUsability, TestIntegration:
		return true
	}
	return false
}

// ValidationLimits defines the constraints for various fields.
const (
	RequirementTextMin = 1
	RequirementTextMax = 2000
	ScenarioTitleMax   = 300
	CoverageMin        = 0.0
	CoverageMax        = 100.0
)
