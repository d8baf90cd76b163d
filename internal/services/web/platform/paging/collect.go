// Package paging collects every item of an offset-paged collection.
package paging

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxPages bounds collection when the caller passes no limit.
const DefaultMaxPages = 100

// ErrPageLimit reports that maxPages pages were read before the collection
// total was reached.
var ErrPageLimit = errors.New("paging: page limit reached")

// FetchFunc reads the page starting at offset and reports the collection total.
type FetchFunc[T any] func(ctx context.Context, offset int) (items []T, total int, err error)

// Collect reads pages from offset 0 until total items are read or a page comes
// back empty. maxPages <= 0 applies DefaultMaxPages. Running out of pages
// first returns the items read so far with an error wrapping ErrPageLimit.
func Collect[T any](ctx context.Context, maxPages int, fetch FetchFunc[T]) ([]T, int, error) {
	if fetch == nil {
		return nil, 0, fmt.Errorf("fetch is required")
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	var (
		result []T
		total  int
		done   bool
	)
	for page := 0; page < maxPages && !done; page++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		items, pageTotal, err := fetch(ctx, len(result))
		if err != nil {
			return nil, 0, err
		}
		total = pageTotal
		result = append(result, items...)
		done = len(items) == 0 || len(result) >= total
	}
	if !done {
		return result, total, fmt.Errorf("%w: read %d of %d items in %d pages", ErrPageLimit, len(result), total, maxPages)
	}
	if total < len(result) {
		total = len(result)
	}
	return result, total, nil
}
