package clock

import (
	"container/heap"
	"time"
)

// Timer is a cancellable single-shot entry.
type Timer interface {
	// Stop cancels the entry. It returns false if the entry already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler creates single-shot timers.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Queue is an ordered set of (deadline, callback) entries. Callbacks run
// only from RunDue, on the caller's goroutine, so a Queue together with the
// loop that calls RunDue forms one serialized event stream. A Queue is not
// safe for concurrent use.
type Queue struct {
	clock   Clock
	entries entryHeap
	seq     uint64
}

// NewQueue creates an empty queue reading time from c. A nil clock uses Real.
func NewQueue(c Clock) *Queue {
	if c == nil {
		c = Real{}
	}
	return &Queue{clock: c}
}

// Now returns the queue clock's current time.
func (q *Queue) Now() time.Time {
	return q.clock.Now()
}

// AfterFunc schedules fn to run once d has elapsed. Negative durations are
// treated as zero.
func (q *Queue) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	q.seq++
	e := &entry{
		deadline: q.clock.Now().Add(d),
		seq:      q.seq,
		fn:       fn,
		queue:    q,
	}
	heap.Push(&q.entries, e)
	return e
}

// RunDue runs every entry whose deadline is not after the current time, in
// deadline order; ties run in scheduling order. Entries that callbacks
// schedule and that are already due run in the same pass. It returns the
// number of callbacks run.
func (q *Queue) RunDue() int {
	ran := 0
	for q.entries.Len() > 0 {
		e := q.entries[0]
		if e.deadline.After(q.clock.Now()) {
			break
		}
		heap.Pop(&q.entries)
		e.fn()
		ran++
	}
	return ran
}

// Next returns the earliest pending deadline.
func (q *Queue) Next() (time.Time, bool) {
	if q.entries.Len() == 0 {
		return time.Time{}, false
	}
	return q.entries[0].deadline, true
}

// Len returns the number of pending entries.
func (q *Queue) Len() int {
	return q.entries.Len()
}

// Clear cancels every pending entry.
func (q *Queue) Clear() {
	for _, e := range q.entries {
		e.index = -1
	}
	q.entries = nil
}

type entry struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int // Position in the heap, -1 once popped or stopped
	queue    *Queue
}

func (e *entry) Stop() bool {
	if e.index < 0 {
		return false
	}
	heap.Remove(&e.queue.entries, e.index)
	return true
}

// entryHeap implements heap.Interface ordered by (deadline, seq).
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
