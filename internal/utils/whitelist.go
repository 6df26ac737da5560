package utils

// Filter returns a copy of in containing only the allowed keys. Only
// presence is tested: keys explicitly set to null, false or "" pass through,
// keys absent from in are skipped. Filtering is idempotent.
func Filter(allowed []string, in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(allowed))
	for _, key := range allowed {
		if value, ok := in[key]; ok {
			out[key] = value
		}
	}
	return out
}
