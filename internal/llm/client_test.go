package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenarist/pkg/schema"
)

func testRequirementSet() *schema.RequirementSet {
	return &schema.RequirementSet{
		RawText: "The system shall authenticate users.",
		Requirements: []schema.Requirement{
			{ID: "1", Text: "The system shall authenticate users", Type: schema.RequirementFunctional},
			{ID: "2", Text: "Login must complete within 2 seconds", Type: schema.RequirementNonFunctional},
		},
	}
}

// completionServer returns an OpenRouter-shaped server whose single choice
// contains the given completion text, counting the requests it receives.
func completionServer(t *testing.T, completion string, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": completion}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&Config{Model: "test-model"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}

func TestClient_Generate(t *testing.T) {
	completion := "```json\n[{\"id\": \"001-01\", \"title\": \"Login\", \"description\": \"Verify login\", \"related_requirements\": \"1, 2\", \"priority\": \"high\"}]\n```"

	requests := 0
	server := completionServer(t, completion, &requests)
	defer server.Close()

	client, err := NewClient(&Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
	})
	require.NoError(t, err)

	out, err := client.Generate(context.Background(), testRequirementSet(), 5, schema.DetailMedium)
	require.NoError(t, err)

	assert.Equal(t, 1, requests, "exactly one HTTP call per Generate")
	require.Len(t, out.Drafts, 1)
	assert.Equal(t, "001-01", out.Drafts[0].ID)

	// The raw completion survives unmodified, fences and all.
	assert.Equal(t, completion, out.RawResponse)

	assert.Equal(t, "test-model", out.Metadata["model"])
	assert.Equal(t, 2, out.Metadata["requirements_count"])
	assert.Equal(t, 5, out.Metadata["scenarios_requested"])
	assert.Equal(t, 1, out.Metadata["scenarios_parsed"])
}

func TestClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testRequirementSet(), 3, schema.DetailLow)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, ErrorKindAPI, genErr.Kind)
	assert.Equal(t, http.StatusTooManyRequests, genErr.Code)
}

func TestClient_Generate_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testRequirementSet(), 3, schema.DetailMedium)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, ErrorKindNetwork, genErr.Kind)
}

func TestClient_Generate_UnparseableCompletion(t *testing.T) {
	requests := 0
	server := completionServer(t, "no scenarios today", &requests)
	defer server.Close()

	client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testRequirementSet(), 3, schema.DetailMedium)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, ErrorKindParse, genErr.Kind)
	assert.Equal(t, 1, requests, "parse failures are not retried")
}

func TestClient_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), testRequirementSet(), 3, schema.DetailMedium)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, ErrorKindAPI, genErr.Kind)
}

func TestMockGenerator_RecordsCalls(t *testing.T) {
	mock := NewMockGenerator()

	out, err := mock.Generate(context.Background(), testRequirementSet(), 7, schema.DetailHigh)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.Calls)
	assert.Equal(t, 7, mock.LastNumScenarios)
	assert.Equal(t, schema.DetailHigh, mock.LastDetailLevel)
	assert.Len(t, out.Drafts, 2)
}

func TestMockGenerator_Error(t *testing.T) {
	mock := NewMockGenerator()
	mock.Err = NewAPIError(500, "boom")

	_, err := mock.Generate(context.Background(), testRequirementSet(), 1, schema.DetailLow)
	require.Error(t, err)

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))
}
