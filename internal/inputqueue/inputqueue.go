// Package inputqueue implements the input thread (spec.md §4.2): poll the
// terminal for raw events and expose a FIFO the process loop drains via
// read_event/enqueue_event/push_event. Grounded on internal/diffloader's
// Threadable shape (a notifier-driven goroutine toggling Busy/Waiting
// around each unit of work) generalized from a blocking control-channel
// receive to a cooperative poll loop, since here the thread itself decides
// when to wake rather than waiting on a caller-fed request.
package inputqueue

import (
	"sync"
	"time"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/runtime"
)

// PollInterval is how long one terminal poll blocks while active
// (spec.md §4.2, "≈20 ms").
const PollInterval = 20 * time.Millisecond

// PauseInterval is how long the thread sleeps between checks while
// paused (spec.md §4.2, "≈250 ms").
const PauseInterval = 250 * time.Millisecond

// Queue is the input thread: it owns the terminal's raw-event poll and a
// FIFO of events the process loop reads from. Registered as a single
// named thread ("input") under the runtime.
type Queue struct {
	term backend.Capability

	mu     sync.Mutex
	events []backend.Event
	paused bool
	ended  bool

	notifier *runtime.Notifier
	done     chan struct{}
}

// New builds a Queue polling term for raw events.
func New(term backend.Capability) *Queue {
	return &Queue{term: term, done: make(chan struct{})}
}

// Install registers the queue as the "input" thread and starts its poll
// loop.
func (q *Queue) Install(ins *runtime.Installer) {
	q.notifier = ins.Register("input")
	go q.run()
}

// Pause stops polling; the thread reports Waiting until Resume.
func (q *Queue) Pause() {
	q.mu.Lock()
	q.paused = true
	q.mu.Unlock()
}

// Resume restarts polling.
func (q *Queue) Resume() {
	q.mu.Lock()
	q.paused = false
	q.mu.Unlock()
}

// End stops the poll loop promptly.
func (q *Queue) End() {
	q.mu.Lock()
	if q.ended {
		q.mu.Unlock()
		return
	}
	q.ended = true
	q.mu.Unlock()
	close(q.done)
}

func (q *Queue) run() {
	for {
		select {
		case <-q.done:
			q.notifier.Ended()
			return
		default:
		}

		if q.isPaused() {
			q.notifier.Waiting()
			time.Sleep(PauseInterval)
			continue
		}

		q.notifier.Busy()
		ev := q.term.PollEvent(int(PollInterval / time.Millisecond))
		if ev.Type != backend.EventNone {
			q.EnqueueEvent(ev)
		}
		q.notifier.Waiting()
	}
}

func (q *Queue) isPaused() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.paused
}

// ReadEvent is the process loop's non-blocking pop (spec.md §4.2's
// read_event()): it returns the front event and true, or the zero Event
// and false when the queue is empty.
func (q *Queue) ReadEvent() (backend.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return backend.Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// EnqueueEvent appends e to the back of the queue.
func (q *Queue) EnqueueEvent(e backend.Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// PushEvent prepends e to the front of the queue: used to replay an event
// a module consumed right before changing state, and by the process loop
// to inject the synthetic Resize an EnqueueResize artifact requests
// (spec.md §4.2, §4.4 step 2e).
func (q *Queue) PushEvent(e backend.Event) {
	q.mu.Lock()
	q.events = append([]backend.Event{e}, q.events...)
	q.mu.Unlock()
}
