package models

// Page is the paginated list envelope used by every list endpoint. Endpoints
// that return a bare JSON array are normalized into this shape with Count set
// to the array length and no next/previous links.
type Page[T any] struct {
	Results  []T     `json:"results"`
	Count    int     `json:"count"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
}

// HasNext reports whether the backend advertised a following page.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// HasPrevious reports whether the backend advertised a preceding page.
func (p Page[T]) HasPrevious() bool {
	return p.Previous != nil && *p.Previous != ""
}
