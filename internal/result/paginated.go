package result

import (
	"math"
)

// Paginated holds one page of a listing, plus the metadata the client
// needs to render a paginator.
type Paginated[T any] struct {
	resultsPerPage int
	page           int
	hits           T
	totalHits      int
}

func NewPaginated[T any](resultsPerPage, page, totalHits int, hits T) Paginated[T] {
	return Paginated[T]{
		resultsPerPage: resultsPerPage,
		page:           page,
		totalHits:      totalHits,
		hits:           hits,
	}
}

func (p Paginated[T]) Page() int {
	return p.page
}

func (p Paginated[T]) Hits() T {
	return p.hits
}

func (p Paginated[T]) TotalHits() int {
	return p.totalHits
}

func (p Paginated[T]) TotalPages() int {
	if p.resultsPerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.totalHits) / float64(p.resultsPerPage)))
}
