package models

import "strings"

// ResolveImageURL turns a backend image path into an absolute URL. Paths that
// already carry an http or https scheme are returned unchanged.
func ResolveImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}

	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return path
	}

	path = strings.TrimPrefix(path, "/")
	return strings.TrimSuffix(baseURL, "/") + "/" + path
}
