package todoist

// PageFunc fetches one page of results starting at the given cursor.
// An empty next cursor means the last page was reached.
type PageFunc[T any] func(cursor string, limit int) (results []T, nextCursor string, err error)

// CursorIterator walks cursor-paginated list endpoints.
type CursorIterator[T any] struct {
	fetch    PageFunc[T]
	pageSize int
}

// NewCursorIterator creates an iterator with the given page fetcher and page size.
func NewCursorIterator[T any](fetch PageFunc[T], pageSize int) *CursorIterator[T] {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &CursorIterator[T]{
		fetch:    fetch,
		pageSize: pageSize,
	}
}

// FetchAll follows cursors until the endpoint is exhausted.
func (it *CursorIterator[T]) FetchAll() ([]T, error) {
	return it.FetchN(0)
}

// FetchN fetches up to max results, or everything when max <= 0.
func (it *CursorIterator[T]) FetchN(max int) ([]T, error) {
	var all []T
	cursor := ""

	for {
		limit := it.pageSize
		if max > 0 {
			remaining := max - len(all)
			if remaining <= 0 {
				break
			}
			if remaining < limit {
				limit = remaining
			}
		}

		results, next, err := it.fetch(cursor, limit)
		if err != nil {
			return nil, err
		}

		all = append(all, results...)

		if next == "" || len(results) == 0 {
			break
		}
		cursor = next
	}

	if max > 0 && len(all) > max {
		all = all[:max]
	}
	return all, nil
}
