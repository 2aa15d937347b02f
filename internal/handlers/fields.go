package handlers

import "time"

// Request bodies are decoded into maps so each field's presence and primitive
// type can be checked individually, with a dedicated message per field.

// stringField returns the value when it is a non-empty string. A missing key,
// a wrong-typed value and an empty string are all reported the same way.
func stringField(body map[string]any, key string) (string, bool) {
	value, ok := body[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// optionalStringField distinguishes "absent" from "present but not a string".
func optionalStringField(body map[string]any, key string) (*string, bool) {
	raw, present := body[key]
	if !present || raw == nil {
		return nil, true
	}
	value, ok := raw.(string)
	if !ok {
		return nil, false
	}
	return &value, true
}

// numberField returns the value when it is a non-zero JSON number. Zero is
// indistinguishable from missing; that quirk is part of the API contract.
func numberField(body map[string]any, key string) (float64, bool) {
	value, ok := body[key].(float64)
	if !ok || value == 0 {
		return 0, false
	}
	return value, true
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// coerceDate accepts the date encodings clients have historically sent:
// a handful of string layouts or a millisecond epoch number.
func coerceDate(raw any) (time.Time, bool) {
	switch value := raw.(type) {
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case float64:
		return time.UnixMilli(int64(value)).UTC(), true
	default:
		return time.Time{}, false
	}
}
