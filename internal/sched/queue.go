// Package sched provides the "run once on the next display frame" facility
// the driver re-arms itself with. It is single-threaded: Schedule, Cancel and
// RunFrame must all be called from the host's frame goroutine.
package sched

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler schedules callbacks for the next frame and cancels them.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle) bool
}

type entry struct {
	handle Handle
	fn     func()
}

// Queue is a frame callback queue driven by the host's frame hook.
type Queue struct {
	next    Handle
	pending []entry
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule arranges for fn to run on the next RunFrame.
func (q *Queue) Schedule(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, entry{handle: q.next, fn: fn})
	return q.next
}

// Cancel removes a pending callback. It reports false if h already ran or
// was cancelled.
func (q *Queue) Cancel(h Handle) bool {
	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *Queue) Pending() int { return len(q.pending) }

// RunFrame runs the callbacks that were pending when it was called, in
// scheduling order, and returns how many ran. Callbacks scheduled while the
// frame runs wait for the next frame.
func (q *Queue) RunFrame() int {
	cutoff := q.next
	ran := 0
	for len(q.pending) > 0 && q.pending[0].handle <= cutoff {
		e := q.pending[0]
		q.pending = q.pending[1:]
		e.fn()
		ran++
	}
	return ran
}
