package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scenarist/pkg/schema"
)

// DocumentExtractor reads a requirements document from disk and funnels it
// through the text extractor. Only plain-text formats are supported here;
// binary formats (Word, PDF) belong to a separate conversion step.
type DocumentExtractor struct {
	text *TextExtractor
}

// NewDocumentExtractor creates a document extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{text: NewTextExtractor()}
}

var supportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// Extract reads and parses the document at path.
func (x *DocumentExtractor) Extract(path string) (*schema.RequirementSet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, newError("document", path, fmt.Sprintf("unsupported format %q", ext), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("document", path, "read file", err)
	}

	set, err := x.text.Extract(string(data))
	if err != nil {
		return nil, newError("document", path, "parse document text", err)
	}

	return set, nil
}
