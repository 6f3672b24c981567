package models

// DefaultPageSize is applied when neither the request nor the remote API
// reports a page size
const DefaultPageSize = 20

// Pagination describes one page of a remote listing
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// PaginatedResponse is the data payload of every list endpoint. Items keep the
// order the remote API returned them in.
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Normalize clamps the pagination block into its valid range:
// current_page >= 1, per_page > 0, total >= 0, total_pages >= 0 and
// current_page <= max(total_pages, 1).
func (p Pagination) Normalize() Pagination {
	if p.PerPage <= 0 {
		p.PerPage = DefaultPageSize
	}
	if p.Total < 0 {
		p.Total = 0
	}
	if p.TotalPages < 0 {
		p.TotalPages = 0
	}
	if p.TotalPages == 0 && p.Total > 0 {
		p.TotalPages = (p.Total + p.PerPage - 1) / p.PerPage
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	upper := p.TotalPages
	if upper < 1 {
		upper = 1
	}
	if p.CurrentPage > upper {
		p.CurrentPage = upper
	}
	return p
}

// NewPaginatedResponse builds a normalized page. A nil slice is replaced by an
// empty one so the payload always serializes as a JSON array.
func NewPaginatedResponse[T any](items []T, p Pagination) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Data:       items,
		Pagination: p.Normalize(),
	}
}
