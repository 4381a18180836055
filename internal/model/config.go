package model

import "strconv"

// Helpers for reading the handful of config keys the backend interprets.
// Configs round-trip through JSON, so numbers arrive as float64 and arrays
// as []any. IDs are stored as strings because a JSON number cannot carry a
// snowflake exactly.

// ConfigString returns config[key] when it is a string.
func ConfigString(config map[string]any, key string) string {
	s, _ := config[key].(string)
	return s
}

// ConfigBool returns config[key] when it is a bool.
func ConfigBool(config map[string]any, key string) bool {
	b, _ := config[key].(bool)
	return b
}

// ConfigFloat returns config[key] when it is a number.
func ConfigFloat(config map[string]any, key string) float64 {
	switch v := config[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// ConfigID parses config[key] as a string-encoded snowflake ID.
func ConfigID(config map[string]any, key string) (int64, bool) {
	s, ok := config[key].(string)
	if !ok || s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ConfigIDs parses config[key] as an array of string-encoded IDs, skipping
// anything unparseable.
func ConfigIDs(config map[string]any, key string) []int64 {
	var raw []any
	switch v := config[key].(type) {
	case []any:
		raw = v
	case []string:
		raw = make([]any, len(v))
		for i, s := range v {
			raw[i] = s
		}
	default:
		return nil
	}

	ids := make([]int64, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ConfigStrings returns config[key] as a list of strings, skipping anything
// that is not one.
func ConfigStrings(config map[string]any, key string) []string {
	var raw []any
	switch v := config[key].(type) {
	case []any:
		raw = v
	case []string:
		return v
	default:
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// EventRotation returns the ordered experience IDs of an event config.
func EventRotation(config map[string]any) []int64 {
	return ConfigIDs(config, "experience_rotation")
}

// EventPregateEnabled reports whether the event config gates guests before
// the experience step.
func EventPregateEnabled(config map[string]any) bool {
	return ConfigBool(config, "pregate_enabled")
}

// ExperiencePresetID returns the AI preset an experience config references.
func ExperiencePresetID(config map[string]any) (int64, bool) {
	return ConfigID(config, "preset_id")
}
