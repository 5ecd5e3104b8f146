package shared

import "strings"

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid checks if the order is a recognized direction
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// ContainsFold reports whether s contains substr, ignoring case.
// Empty substr matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
