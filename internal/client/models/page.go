package models

// Pagination mirrors the backend's list-envelope pagination block.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// Page is a single page of list results together with its pagination block.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// SortOrder is the backend's sort direction token.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ListQuery carries the shared list parameters: page, page size, sorting,
// and the invoice filter set. Zero values are omitted from the request.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder

	Status      InvoiceStatus
	DateFrom    string
	DateTo      string
	EmitterRUC  string
	SubtotalMin float64
	SubtotalMax float64
	OCRMin      float64
}
