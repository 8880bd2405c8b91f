package observability

import "unicode"

const defaultStringLimit = 256

// SanitizeString drops control characters and caps the length so request
// supplied values cannot forge log lines.
func SanitizeString(value string, limit int) string {
	if limit <= 0 {
		limit = defaultStringLimit
	}
	cleaned := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return string(cleaned)
}

// SanitizeRoute applies the route length budget.
func SanitizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return SanitizeString(route, 180)
}
