// File: internal/services/assistant/directives.go
package assistant

import (
	"encoding/json"
	"regexp"
)

// MarkerToken introduces the trailing directive block inside an otherwise
// human-readable reply. The token plus a fenced json array is the wire format
// between the provider's free text and the structured mutation list; changing
// it breaks compatibility with the persona template.
const MarkerToken = "[PROGRESS_UPDATE]"

// Grammar: marker token, optional whitespace, a ```json fence, the payload,
// a closing fence. The payload must be a JSON array of {id, progress}.
var markerBlock = regexp.MustCompile("(?s)\\[PROGRESS_UPDATE\\]\\s*```json\\s*(.*?)```")

// Directive is one parsed progress instruction. It lives for a single
// response-processing cycle and is never persisted.
type Directive struct {
	ID       string
	Progress float64
}

// ParseDirectives scans reply text for the marker block and decodes it.
//
// A missing marker means zero directives, not an error. A present marker with
// a payload that fails to decode as a JSON array yields a parse error the
// caller must treat as recoverable: the reply text is still the primary
// value. Elements missing a non-empty id or a numeric progress are silently
// skipped, matching the per-element validation of the wire format.
func ParseDirectives(reply string) ([]Directive, error) {
	match := markerBlock.FindStringSubmatch(reply)
	if match == nil {
		return nil, nil
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal([]byte(match[1]), &raw); err != nil {
		return nil, NewParseError("parse_directives", "malformed progress update payload", err)
	}

	directives := make([]Directive, 0, len(raw))
	for _, element := range raw {
		id, ok := element["id"].(string)
		if !ok || id == "" {
			continue
		}
		progress, ok := element["progress"].(float64)
		if !ok {
			continue
		}
		directives = append(directives, Directive{ID: id, Progress: progress})
	}
	return directives, nil
}
