package client

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// DebounceDelay is the quiescence window before a typeahead query fires.
const DebounceDelay = 350 * time.Millisecond

// SearchDishes runs a dish search immediately, optionally filtered to
// one hall slug. The typeahead wraps this with debouncing.
func (c *Client) SearchDishes(ctx context.Context, keyword, hall string) ([]Dish, error) {
	query := url.Values{}
	query.Set("keyword", keyword)
	if hall != "" {
		query.Set("hall", hall)
	}

	var body struct {
		Dishes []Dish `json:"dishes"`
	}
	if err := c.get(ctx, "/search", query, &body); err != nil {
		return nil, err
	}
	return body.Dishes, nil
}

// Typeahead debounces dish search as the user types. Each input change
// cancels the pending timer (trailing debounce); a request fires only
// after DebounceDelay of quiet. Queries of one character or less
// short-circuit to empty results with no network call. Responses carry
// monotonic sequence numbers so a slow early request can never
// overwrite a later one's results.
type Typeahead struct {
	api     *Client
	delay   time.Duration
	deliver func(dishes []Dish, err error)

	mu        sync.Mutex
	timer     *time.Timer
	nextSeq   uint64
	delivered uint64
}

// NewTypeahead wires a debounced searcher. deliver is called with each
// result set (or error) that is still current when it arrives.
func NewTypeahead(api *Client, deliver func(dishes []Dish, err error)) *Typeahead {
	return &Typeahead{api: api, delay: DebounceDelay, deliver: deliver}
}

// Update reacts to a keystroke or hall-filter change. Any pending timer
// is cancelled before the new input is considered.
func (t *Typeahead) Update(ctx context.Context, keyword, hall string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	if len([]rune(keyword)) <= 1 {
		// too short to search; clear results without touching the network
		t.nextSeq++
		t.delivered = t.nextSeq
		go t.deliver([]Dish{}, nil)
		return
	}

	t.timer = time.AfterFunc(t.delay, func() {
		t.fire(ctx, keyword, hall)
	})
}

func (t *Typeahead) fire(ctx context.Context, keyword, hall string) {
	t.mu.Lock()
	t.nextSeq++
	seq := t.nextSeq
	t.mu.Unlock()

	dishes, err := t.api.SearchDishes(ctx, keyword, hall)

	t.mu.Lock()
	stale := seq <= t.delivered
	if !stale {
		t.delivered = seq
	}
	t.mu.Unlock()

	if stale {
		return
	}
	t.deliver(dishes, err)
}

// Stop cancels any pending query.
func (t *Typeahead) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// SetDelay overrides the debounce window. Tests use this to avoid real
// 350ms waits.
func (t *Typeahead) SetDelay(d time.Duration) {
	t.mu.Lock()
	t.delay = d
	t.mu.Unlock()
}
