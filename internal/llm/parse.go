package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"scenarist/pkg/schema"
)

// draftListKeys are the wrapper keys models use instead of a bare array.
var draftListKeys = []string{"scenarios", "test_scenarios", "items"}

// ParseDrafts turns a raw model completion into scenario drafts. It accepts
// a bare JSON array, an object wrapping the array under a known key, and
// code-fenced variants of both. Elements that fail to decode are skipped
// rather than failing the batch; only a completion with no usable list at
// all is an error.
func ParseDrafts(content string) ([]schema.ScenarioDraft, error) {
	cleaned := cleanMarkdownCodeBlocks(content)

	if items, ok := decodeDraftList([]byte(cleaned)); ok {
		return decodeDraftItems(items), nil
	}

	// Object wrapper: {"scenarios": [...]}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil {
		for _, key := range draftListKeys {
			if raw, ok := wrapper[key]; ok {
				if items, ok := decodeDraftList(raw); ok {
					return decodeDraftItems(items), nil
				}
			}
		}
	}

	// Last resort: the first bracketed region of prose-wrapped output.
	if start, end := strings.Index(cleaned, "["), strings.LastIndex(cleaned, "]"); start >= 0 && end > start {
		if items, ok := decodeDraftList([]byte(cleaned[start : end+1])); ok {
			return decodeDraftItems(items), nil
		}
	}

	return nil, NewParseError(content, fmt.Errorf("no scenario list found in completion"))
}

// decodeDraftList decodes data as a JSON array of raw elements.
func decodeDraftList(data []byte) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

// decodeDraftItems decodes each element, dropping the ones that are not
// draft-shaped. Bad model output degrades per-element, not per-batch.
func decodeDraftItems(items []json.RawMessage) []schema.ScenarioDraft {
	drafts := make([]schema.ScenarioDraft, 0, len(items))
	for _, item := range items {
		var draft schema.ScenarioDraft
		if err := json.Unmarshal(item, &draft); err != nil {
			continue
		}
		if draft.Title == "" && draft.Description == "" {
			continue
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

// cleanMarkdownCodeBlocks removes markdown code block wrappers from JSON
// Some models (especially Gemini) wrap JSON in ```json...```.
func cleanMarkdownCodeBlocks(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSpace(content)
	}

	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	return content
}
