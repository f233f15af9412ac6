package schema

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ScenarioIDPrefix is carried by every canonical scenario id.
const ScenarioIDPrefix = "TS-"

// CanonicalScenarioID rewrites a draft id into the TS- form. Already
// canonical ids pass through unchanged (applying this twice never yields
// TS-TS-), and an absent id stays absent.
func CanonicalScenarioID(id string) string {
	if id == "" || strings.HasPrefix(id, ScenarioIDPrefix) {
		return id
	}
	return ScenarioIDPrefix + id
}

// NewAuditRecordID generates an audit record id in format {UTC stamp}-{nanoid(10)}.
func NewAuditRecordID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102T150405Z"), id), nil
}
