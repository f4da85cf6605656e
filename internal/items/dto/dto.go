package dto

// FilterAll is the dropdown value meaning "no filter"; it is never sent
// to the backend.
const FilterAll = "all"

// ListFilters carries the query parameters of GET /items.
type ListFilters struct {
	Search string
	Phase  string
	Vendor string
	Page   int
	Limit  int
}

// HasPhase reports whether the phase filter is active.
func (f *ListFilters) HasPhase() bool {
	return f.Phase != "" && f.Phase != FilterAll
}

// HasVendor reports whether the vendor filter is active.
func (f *ListFilters) HasVendor() bool {
	return f.Vendor != "" && f.Vendor != FilterAll
}
