package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEmptyPayload is returned when the payload contains no parsable content.
// Callers treat it as "no level loaded", not a crash.
var ErrEmptyPayload = errors.New("level: empty payload")

// payload mirrors the boundary contract with the generation collaborator:
// a JSON object with a platforms array. The platforms field is kept raw so a
// missing or non-array value degrades to an empty level instead of an error.
type payload struct {
	Platforms json.RawMessage `json:"platforms"`
}

// payloadPlatform is one platform entry as the collaborator emits it.
// Numbers may arrive quoted, so coordinates use a lenient number type.
type payloadPlatform struct {
	X     looseNumber `json:"x"`
	Y     looseNumber `json:"y"`
	Width looseNumber `json:"width"`
	Type  string      `json:"type"`
	Range looseNumber `json:"range"`
}

// looseNumber accepts a JSON number or a numeric string.
type looseNumber struct {
	Value float64
	OK    bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *looseNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Leave the field unset rather than failing the whole entry.
		return nil
	}
	n.Value = v
	n.OK = true
	return nil
}

// Parse converts a text payload into a validated Level.
//
// Generation services rarely return bare JSON: the object is usually wrapped
// in prose or markdown code fences, so Parse first extracts the outermost
// JSON object from the blob. Guarantees on success: no platform has
// non-finite coordinates, a missing or unknown type tag means standard, and
// a missing or non-array platforms field yields an empty (non-playable)
// level. A payload with no JSON object at all is a parse error.
func Parse(text string) (*Level, error) {
	raw := extractJSON(text)
	if raw == "" {
		if strings.TrimSpace(text) == "" {
			return nil, ErrEmptyPayload
		}
		return nil, fmt.Errorf("level: no JSON object in payload")
	}

	var doc payload
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("level: decoding payload: %w", err)
	}

	var entries []payloadPlatform
	if len(doc.Platforms) > 0 {
		// A non-array platforms value is tolerated as "no platforms".
		if err := json.Unmarshal(doc.Platforms, &entries); err != nil {
			entries = nil
		}
	}

	platforms := make([]Platform, 0, len(entries))
	for _, e := range entries {
		p, ok := buildPlatform(e)
		if !ok {
			continue
		}
		platforms = append(platforms, p)
	}

	return &Level{
		Platforms: platforms,
		LastIndex: lastIndex(platforms),
	}, nil
}

// buildPlatform validates one payload entry. Entries with missing or
// non-finite coordinates or a non-positive width are dropped.
func buildPlatform(e payloadPlatform) (Platform, bool) {
	if !e.X.OK || !e.Y.OK || !e.Width.OK {
		return Platform{}, false
	}
	if !isFinite(e.X.Value) || !isFinite(e.Y.Value) || !isFinite(e.Width.Value) {
		return Platform{}, false
	}
	if e.Width.Value <= 0 {
		return Platform{}, false
	}

	r := 0.0
	if e.Range.OK && isFinite(e.Range.Value) && e.Range.Value > 0 {
		r = e.Range.Value
	}

	return Platform{
		X:       e.X.Value,
		Y:       e.Y.Value,
		Width:   e.Width.Value,
		Variant: ParseVariant(e.Type),
		Range:   r,
	}, true
}

// ParseFile loads and parses a level payload from disk, routing YAML files
// to the YAML parser and everything else to the JSON payload parser.
func ParseFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(string(data))
	}
}

// extractJSON pulls the outermost JSON object out of a text blob.
// Code fences are stripped first; otherwise the slice from the first '{' to
// the last '}' is taken.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences if present.
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		// Skip an optional language tag on the fence line.
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
