package models

// Page is one page of a backend listing.
//
// Invariants maintained by the backend and relied on here:
//   - len(Items) <= PageSize
//   - TotalPages == ceil(TotalCount / PageSize)
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// TotalPagesFor computes ceil(totalCount / pageSize). It is the single place
// page counts are derived client-side.
func TotalPagesFor(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
