package flow

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/diversion-social/diversion-go/domain"
)

const (
	// SearchDebounce is how long the query must be stable before a
	// search is issued.
	SearchDebounce = 500 * time.Millisecond

	// MinQueryLength is the minimum query length (in characters) that
	// triggers a search at all.
	MinQueryLength = 2
)

// SearchFunc issues one user search against the API.
type SearchFunc func(ctx context.Context, query string) ([]domain.UserSearchResult, error)

// SearchResults delivers the outcome of one search to the UI. Err is set
// when the query failed; search failures are not fatal to the screen.
type SearchResults struct {
	Query string
	Users []domain.UserSearchResult
	Err   error
}

// FriendSearch debounces the friend-search input: a query is issued only
// after the input has been stable for the debounce window, and queries
// shorter than MinQueryLength clear the results instead of hitting the
// API. This is the only timing control in the client.
//
// SetQuery may be called from the UI goroutine at any rate; results are
// delivered on a timer goroutine.
type FriendSearch struct {
	search   SearchFunc
	deliver  func(SearchResults)
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewFriendSearch creates a debounced search delivering results through
// the given callback.
func NewFriendSearch(search SearchFunc, deliver func(SearchResults)) *FriendSearch {
	return &FriendSearch{
		search:   search,
		deliver:  deliver,
		debounce: SearchDebounce,
	}
}

// NewFriendSearchWithDebounce is NewFriendSearch with a custom debounce
// window. Used by tests to avoid real half-second waits.
func NewFriendSearchWithDebounce(search SearchFunc, deliver func(SearchResults), debounce time.Duration) *FriendSearch {
	fs := NewFriendSearch(search, deliver)
	fs.debounce = debounce
	return fs
}

// SetQuery records the latest input. Any pending search is cancelled;
// a query below the minimum length clears the results immediately, and
// anything longer schedules a search once the input stays unchanged for
// the debounce window.
func (f *FriendSearch) SetQuery(ctx context.Context, query string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		f.deliver(SearchResults{Query: trimmed})
		return
	}

	f.timer = time.AfterFunc(f.debounce, func() {
		users, err := f.search(ctx, trimmed)
		f.deliver(SearchResults{Query: trimmed, Users: users, Err: err})
	})
}

// Stop cancels any pending search, for teardown when the screen goes
// away.
func (f *FriendSearch) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
