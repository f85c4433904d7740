// File: cascade/helper.go
package cascade

import (
	"strconv"
	"strings"
)

// normalizePath strips trailing path separators from an attribute value.
// A lone separator (the site root "/") is preserved.
func normalizePath(p string) string {
	if p == "" {
		return p
	}
	trimmed := strings.TrimRight(p, "/\\")
	if trimmed == "" {
		// "/" or "\" collapses to the root, not the empty string
		return p[:1]
	}
	return trimmed
}

// joinURL joins URL segments with single slashes, dropping empty segments
// and collapsing duplicate separators at the joins. A leading slash on the
// first non-empty segment is preserved so root-relative URLs stay rooted.
func joinURL(segments ...string) string {
	parts := make([]string, 0, len(segments))
	rooted := false
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if len(parts) == 0 && strings.HasPrefix(seg, "/") {
			rooted = true
		}
		trimmed := strings.Trim(seg, "/")
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	joined := strings.Join(parts, "/")
	if rooted && !strings.Contains(joined, "://") {
		joined = "/" + joined
	}
	return joined
}

// splitQuery separates a logical asset path from a trailing query string or
// fragment, so "icons/close.png?v=2" resolves on the bare path.
func splitQuery(logical string) (path, suffix string) {
	if i := strings.IndexAny(logical, "?#"); i >= 0 {
		return logical[:i], logical[i:]
	}
	return logical, ""
}

// appendQuery attaches a bare query string to a URL, using "?" or "&"
// depending on whether the URL already carries one.
func appendQuery(url, query string) string {
	if query == "" {
		return url
	}
	query = strings.TrimPrefix(query, "?")
	if strings.Contains(url, "?") {
		return url + "&" + query
	}
	return url + "?" + query
}

// parseValue interprets an environment variable string as a bool, integer,
// or float before falling back to the raw string.
func parseValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
