package scm

// ListOptions specifies optional pagination for listing operations.
// How the values are encoded into query parameters is private to each
// driver: page-numbered providers use Page and Size, cursor-paginated
// providers consume Cursor and ignore the rest. Zero values mean the
// provider's defaults apply.
type ListOptions struct {
	// Page is the 1-based page number to request.
	Page int

	// Size is the number of items to request per page.
	Size int

	// Cursor is an opaque continuation token for providers that
	// paginate by cursor rather than page number.
	Cursor string
}
