// Package config holds value conversions shared by the config store adapters.
//
// Stores keep values as decoded from TOML or as set by callers, so the same
// key can hold an int64 after a reload and an int before it.
package config

// String returns v as a string, or "" when v is not a string.
func String(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Int returns v as an int, or 0 when v is not numeric.
// TOML integers decode as int64; whole floats are accepted.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
		return 0
	default:
		return 0
	}
}

// Bool returns v as a bool, or false when v is not a bool.
func Bool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// StringSlice returns v as a string slice, skipping non-string items.
// TOML arrays decode as []any.
func StringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}
