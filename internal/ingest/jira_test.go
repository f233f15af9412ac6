package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenarist/pkg/schema"
)

const sampleExport = `{
  "issues": [
    {
      "key": "PROJ-1",
      "fields": {
        "summary": "Authenticate users with password and OTP",
        "description": "As a customer, I want to log in securely so that my data is protected.\n* Given valid credentials, access is granted",
        "issuetype": {"name": "Story"}
      }
    },
    {
      "key": "PROJ-2",
      "fields": {
        "summary": "Search performance under load",
        "description": "",
        "issuetype": {"name": "Task"}
      }
    }
  ]
}`

func TestJiraExtractor_Extract(t *testing.T) {
	set, err := NewJiraExtractor().Extract([]byte(sampleExport))
	require.NoError(t, err)

	require.Len(t, set.Requirements, 2)
	assert.Equal(t, "PROJ-1", set.Requirements[0].ID)
	assert.Contains(t, set.Requirements[0].Text, "Authenticate users with password and OTP")
	assert.Equal(t, "PROJ-2", set.Requirements[1].ID)
	assert.Equal(t, schema.RequirementNonFunctional, set.Requirements[1].Type, "performance summary is non-functional")

	require.Len(t, set.UserStories, 1)
	assert.Equal(t, "customer", set.UserStories[0].Role)
	assert.Equal(t, "log in securely", set.UserStories[0].Goal)

	require.Len(t, set.AcceptanceCriteria, 1)
	assert.Contains(t, set.AcceptanceCriteria[0], "Given valid credentials")
}

func TestJiraExtractor_InvalidJSON(t *testing.T) {
	_, err := NewJiraExtractor().Extract([]byte("not json"))
	require.Error(t, err)

	var ingErr *Error
	require.True(t, errors.As(err, &ingErr))
	assert.Equal(t, "jira", ingErr.Op)
}

func TestJiraExtractor_EmptyPayload(t *testing.T) {
	_, err := NewJiraExtractor().Extract(nil)
	require.Error(t, err)
}

func TestJiraExtractor_NoUsableIssues(t *testing.T) {
	_, err := NewJiraExtractor().Extract([]byte(`{"issues": [{"key": "X", "fields": {"summary": ""}}]}`))
	require.Error(t, err)

	var ingErr *Error
	require.True(t, errors.As(err, &ingErr))
	assert.Contains(t, ingErr.Message, "no usable issues")
}
