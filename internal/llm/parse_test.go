package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDrafts_BareArray(t *testing.T) {
	content := `[
		{"id": "001-01", "title": "Login", "description": "Verify login", "related_requirements": "1, 2", "priority": "high"},
		{"id": "001-02", "title": "Logout", "description": "Verify logout"}
	]`

	drafts, err := ParseDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "001-01", drafts[0].ID)
	assert.Equal(t, "1, 2", drafts[0].RelatedRequirements)
	assert.Empty(t, drafts[1].Priority)
}

func TestParseDrafts_WrappedObject(t *testing.T) {
	for _, key := range []string{"scenarios", "test_scenarios", "items"} {
		t.Run(key, func(t *testing.T) {
			content := `{"` + key + `": [{"title": "T", "description": "D"}]}`

			drafts, err := ParseDrafts(content)
			require.NoError(t, err)
			require.Len(t, drafts, 1)
			assert.Equal(t, "T", drafts[0].Title)
		})
	}
}

func TestParseDrafts_CodeFenced(t *testing.T) {
	content := "```json\n[{\"title\": \"Fenced\", \"description\": \"D\"}]\n```"

	drafts, err := ParseDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Fenced", drafts[0].Title)
}

func TestParseDrafts_ProseWrapped(t *testing.T) {
	content := `Here are your scenarios:

[{"title": "Embedded", "description": "D"}]

Let me know if you need more.`

	drafts, err := ParseDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Embedded", drafts[0].Title)
}

func TestParseDrafts_SkipsMalformedElements(t *testing.T) {
	content := `[
		{"title": "Good", "description": "D"},
		"just a string",
		42,
		{"unrelated": true},
		{"title": "Also good", "description": "D2"}
	]`

	drafts, err := ParseDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Good", drafts[0].Title)
	assert.Equal(t, "Also good", drafts[1].Title)
}

func TestParseDrafts_NoListIsError(t *testing.T) {
	_, err := ParseDrafts("I could not generate any scenarios, sorry.")
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, ErrorKindParse, genErr.Kind)
}

func TestCleanMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n[]\n```", "[]"},
		{"bare fence", "```\n[]\n```", "[]"},
		{"no fence", "[]", "[]"},
		{"surrounding whitespace", "  []  ", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMarkdownCodeBlocks(tt.input))
		})
	}
}
