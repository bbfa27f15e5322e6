// ABOUTME: View state controller owns intent, pagination and accumulated articles
// ABOUTME: Every fetch carries a request id; only the latest issued id may commit

package viewstate

import (
	"context"
	"strings"
	"sync"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
)

// Fetcher loads one page of articles for an intent
type Fetcher interface {
	Fetch(ctx context.Context, intent domain.SearchIntent, page int) (*domain.FetchResult, error)
}

// Listener is called with a snapshot after every state transition
type Listener func(State)

// Controller drives fetches from intent and page changes.
// Superseded fetches are not aborted; their results are discarded on completion.
type Controller struct {
	fetcher Fetcher
	logger  interfaces.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	latest    uint64
	listeners []Listener

	inflight sync.WaitGroup
}

// NewController creates a controller in the Idle state
func NewController(fetcher Fetcher, logger interfaces.Logger) *Controller {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		fetcher: fetcher,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		state:   State{Status: Idle, Page: 1},
	}
}

// Subscribe registers a listener for state transitions
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start issues the first fetch for the current intent. It is a no-op once
// the controller has left Idle.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.state.Status != Idle {
		c.mu.Unlock()
		return
	}
	c.issueLocked()
}

// Search sets the query text, clearing the category
func (c *Controller) Search(text string) {
	c.setIntent(c.State().Intent.WithQuery(strings.TrimSpace(text)))
}

// SelectCategory sets the category, clearing the query text.
// An empty name selects all news.
func (c *Controller) SelectCategory(name string) {
	c.setIntent(c.State().Intent.WithCategory(strings.TrimSpace(name)))
}

// LoadMore requests the next page, keeping accumulated articles.
// It reports false when the action is disabled.
func (c *Controller) LoadMore() bool {
	c.mu.Lock()
	if !c.state.CanLoadMore() {
		c.mu.Unlock()
		return false
	}
	c.state.Page++
	c.issueLocked()
	return true
}

// Retry re-issues the fetch for the current intent and page
func (c *Controller) Retry() {
	c.mu.Lock()
	if c.state.Status == Loading {
		c.mu.Unlock()
		return
	}
	c.issueLocked()
}

// Wait blocks until every issued fetch has completed
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Close cancels the context handed to in-flight fetches
func (c *Controller) Close() {
	c.cancel()
}

func (c *Controller) setIntent(intent domain.SearchIntent) {
	c.mu.Lock()
	if c.state.Status != Idle && intent == c.state.Intent {
		c.mu.Unlock()
		return
	}
	c.state.Intent = intent
	c.state.Articles = nil
	c.state.Page = 1
	c.issueLocked()
}

// issueLocked enters Loading and starts a fetch. It must be called with mu
// held and releases it before notifying listeners.
func (c *Controller) issueLocked() {
	c.latest++
	id := c.latest
	intent := c.state.Intent
	page := c.state.Page

	c.state.Status = Loading
	c.state.Err = ""
	snapshot, listeners := c.snapshotLocked()
	c.inflight.Add(1)
	c.mu.Unlock()

	notify(listeners, snapshot)

	go c.run(id, intent, page)
}

func (c *Controller) run(id uint64, intent domain.SearchIntent, page int) {
	defer c.inflight.Done()

	result, err := c.fetcher.Fetch(c.ctx, intent, page)

	c.mu.Lock()
	if id != c.latest {
		c.mu.Unlock()
		c.logger.Debug("Discarding superseded fetch", map[string]interface{}{
			"request_id": id,
			"term":       intent.EffectiveTerm(),
			"page":       page,
		})
		return
	}

	if err != nil {
		c.state.Status = Error
		c.state.Err = errors.UserMessage(err)
	} else {
		if page == 1 {
			c.state.Articles = append([]domain.Article{}, result.Articles...)
		} else {
			c.state.Articles = append(c.state.Articles, result.Articles...)
		}
		c.state.HasMore = result.HasMore
		c.state.Provider = result.Provider
		c.state.Status = Loaded
	}
	snapshot, listeners := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Fetch failed", map[string]interface{}{
			"term":  intent.EffectiveTerm(),
			"page":  page,
			"error": snapshot.Err,
		})
	}
	notify(listeners, snapshot)
}

func (c *Controller) snapshotLocked() (State, []Listener) {
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	return c.state.clone(), listeners
}

func notify(listeners []Listener, s State) {
	for _, l := range listeners {
		l(s)
	}
}
