package domain

// Pagination is the metadata attached to every listing response
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// NewPagination computes metadata for one page of a listing.
// TotalPages is ceil(total/perPage); an empty store yields zero pages.
func NewPagination(page, perPage, total int) Pagination {
	return Pagination{
		CurrentPage:  page,
		TotalPages:   (total + perPage - 1) / perPage,
		TotalItems:   total,
		ItemsPerPage: perPage,
	}
}
