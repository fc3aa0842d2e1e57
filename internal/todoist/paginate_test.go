package todoist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorIteratorFetchAll(t *testing.T) {
	pages := map[string]struct {
		results []string
		next    string
	}{
		"":   {results: []string{"a", "b"}, next: "c1"},
		"c1": {results: []string{"c", "d"}, next: "c2"},
		"c2": {results: []string{"e"}, next: ""},
	}

	var cursorsSeen []string
	it := NewCursorIterator(func(cursor string, limit int) ([]string, string, error) {
		cursorsSeen = append(cursorsSeen, cursor)
		page := pages[cursor]
		return page.results, page.next, nil
	}, 2)

	all, err := it.FetchAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, all)
	assert.Equal(t, []string{"", "c1", "c2"}, cursorsSeen)
}

func TestCursorIteratorFetchN(t *testing.T) {
	it := NewCursorIterator(func(cursor string, limit int) ([]int, string, error) {
		// Always hand back a full page with a next cursor.
		page := make([]int, limit)
		return page, "more", nil
	}, 10)

	got, err := it.FetchN(25)
	require.NoError(t, err)
	assert.Len(t, got, 25)
}

func TestCursorIteratorStopsOnEmptyPage(t *testing.T) {
	calls := 0
	it := NewCursorIterator(func(cursor string, limit int) ([]int, string, error) {
		calls++
		// A cursor with no results must not loop forever.
		return nil, "stale-cursor", nil
	}, 10)

	got, err := it.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, calls)
}

func TestCursorIteratorPropagatesError(t *testing.T) {
	it := NewCursorIterator(func(cursor string, limit int) ([]int, string, error) {
		if cursor == "" {
			return []int{1}, "c1", nil
		}
		return nil, "", fmt.Errorf("boom")
	}, 10)

	_, err := it.FetchAll()
	assert.EqualError(t, err, "boom")
}

func TestCursorIteratorDefaultPageSize(t *testing.T) {
	var gotLimit int
	it := NewCursorIterator(func(cursor string, limit int) ([]int, string, error) {
		gotLimit = limit
		return nil, "", nil
	}, 0)

	_, err := it.FetchAll()
	require.NoError(t, err)
	assert.Equal(t, 50, gotLimit)
}
