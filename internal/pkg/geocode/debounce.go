package geocode

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is how long a query must survive without being superseded
// before it is actually issued.
const DefaultDebounce = 400 * time.Millisecond

// Result carries an autocomplete answer together with the sequence number
// of the query that produced it.
type Result struct {
	Seq         uint64
	Suggestions []Suggestion
	Err         error
}

// Debouncer serializes a stream of keystrokes into at most one in-flight
// autocomplete call per quiet period. Every query gets a monotonically
// increasing sequence number; a newer query supersedes any pending timer,
// and late results from superseded queries are dropped rather than
// delivered out of order.
type Debouncer struct {
	client *Client
	delay  time.Duration
	out    chan Result

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// NewDebouncer creates a debouncer emitting results on its channel. A
// non-positive delay falls back to DefaultDebounce.
func NewDebouncer(client *Client, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{
		client: client,
		delay:  delay,
		out:    make(chan Result, 1),
	}
}

// Results is the channel on which surviving queries deliver their answers.
// Only results whose Seq equals the latest issued sequence number are sent.
func (d *Debouncer) Results() <-chan Result {
	return d.out
}

// Query registers a new keystroke's worth of input and returns its sequence
// number. The previous pending timer, if any, is discarded.
func (d *Debouncer) Query(ctx context.Context, input string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		suggestions, err := d.client.Autocomplete(ctx, input)
		d.deliver(Result{Seq: seq, Suggestions: suggestions, Err: err})
	})
	return seq
}

// deliver drops results belonging to superseded queries. The in-flight call
// itself is not cancelled; its answer just never reaches the caller.
func (d *Debouncer) deliver(r Result) {
	d.mu.Lock()
	stale := r.Seq != d.seq
	d.mu.Unlock()
	if stale {
		return
	}

	select {
	case d.out <- r:
	default:
		// A buffered but unread older result is replaced by the newer one.
		select {
		case <-d.out:
		default:
		}
		d.out <- r
	}
}

// Latest reports the most recently issued sequence number. Responses tagged
// with anything older must be ignored by the caller.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

// Stop cancels any pending timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
