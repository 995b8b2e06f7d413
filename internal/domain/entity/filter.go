package entity

const (
	// FilterAll disables filtering on status, role, priority and category.
	FilterAll = "all"
	// FilterNone disables filtering on the product service tag.
	FilterNone = "none"
)

// FilterValue returns the concrete filter value, or "" when v is empty or the
// given no-filter sentinel. An empty result means a full collection scan.
func FilterValue(v, sentinel string) string {
	if v == "" || v == sentinel {
		return ""
	}

	return v
}

// ProductFilter selects products by service tag or category.
// Service takes precedence when both are set.
type ProductFilter struct {
	Category string
	Service  string
}
