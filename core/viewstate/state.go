// ABOUTME: View state model read by the presentation layer
// ABOUTME: Snapshots are copies; only the controller mutates the live state

package viewstate

import "newsfeed-api/core/domain"

// Status is the controller's lifecycle state
type Status int

const (
	// Idle is the state before the first fetch is issued
	Idle Status = iota

	// Loading means a fetch for the current intent/page is in flight
	Loading

	// Loaded means the last fetch for the current intent/page succeeded
	Loaded

	// Error means the last fetch for the current intent/page failed
	Error
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of everything the presentation layer renders
type State struct {
	Status   Status
	Intent   domain.SearchIntent
	Page     int
	Articles []domain.Article
	HasMore  bool

	// Provider is empty until the first successful fetch
	Provider domain.ProviderName

	// Err is the user-facing message of the last failure
	Err string
}

// Loading reports whether a fetch is in flight
func (s State) Loading() bool {
	return s.Status == Loading
}

// CanLoadMore reports whether the load-more action is enabled
func (s State) CanLoadMore() bool {
	return s.Status != Loading && s.HasMore
}

// Empty reports whether there is nothing to show and nothing pending
func (s State) Empty() bool {
	return s.Status == Loaded && len(s.Articles) == 0
}

func (s State) clone() State {
	out := s
	if s.Articles != nil {
		out.Articles = make([]domain.Article, len(s.Articles))
		copy(out.Articles, s.Articles)
	}
	return out
}
