package observability

import (
	"net/url"
	"sort"
	"strings"
	"unicode"
)

// loggedQueryKeys are the navigation parameters worth recording. Anything
// else in the query string (tracking tags, form echoes) stays out of the logs.
var loggedQueryKeys = map[string]bool{
	"category": true,
	"record":   true,
	"i":        true,
	"op":       true,
	"to":       true,
	"hl":       true,
	"reason":   true,
}

// clean drops control characters and truncates to limit runes.
func clean(value string, limit int) string {
	var b strings.Builder
	n := 0
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		if n == limit {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// SanitizeRoute makes a path or route pattern safe to log.
func SanitizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return clean(route, 180)
}

// SanitizeQuery renders the navigation parameters of q as a stable,
// log-safe string, e.g. "category=ui&i=2&op=next".
func SanitizeQuery(q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		if loggedQueryKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+clean(q.Get(k), 32))
	}
	return strings.Join(parts, "&")
}
