package entity

import "strings"

// IsExternalURL reports whether a stored image field already holds an absolute URL
// instead of a storage reference.
func IsExternalURL(ref string) bool {
	lower := strings.ToLower(ref)

	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
