package service

// paginationParams holds normalized pagination values.
type paginationParams struct {
	Limit  int
	Offset int
}

const (
	// DefaultPageLimit is the page size used when a request carries no
	// limit at all. Callers pass it explicitly; normalizePagination only
	// clamps.
	DefaultPageLimit = 20

	maxPageLimit = 100
)

// normalizePagination clamps pagination parameters to safe values: limit is
// kept within 1..100 and offset is never negative. An explicit limit of zero
// or less means the smallest page, not the default.
func normalizePagination(limit, offset int) paginationParams {
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return paginationParams{Limit: limit, Offset: offset}
}
