package api

// PagedResponse wraps listing endpoints. Items is never null in the payload.
type PagedResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}
