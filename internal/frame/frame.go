// Package frame runs a callback once per display refresh until cancelled.
//
// Hosts provide the "request next frame" primitive through Host. The
// windowed and terminal front ends both use a Queue that they flush once per
// frame from their own loop, so every callback runs on the host's goroutine.
package frame

// Host schedules cb to run on the next display refresh.
type Host interface {
	RequestFrame(cb func())
}

// Start invokes fn once per frame until the returned cancel function is
// called. Cancelling stops further scheduling; a tick already queued on the
// host is still delivered but returns without calling fn.
func Start(host Host, fn func()) (cancel func()) {
	stopped := false

	var tick func()
	tick = func() {
		if stopped {
			return
		}
		fn()
		host.RequestFrame(tick)
	}
	host.RequestFrame(tick)

	return func() {
		stopped = true
	}
}

// Queue is a Host whose callbacks run when the owner calls Flush.
type Queue struct {
	pending []func()
}

func (q *Queue) RequestFrame(cb func()) {
	q.pending = append(q.pending, cb)
}

// Flush runs the callbacks requested before the call and returns how many
// ran. Callbacks requested while flushing wait for the next Flush.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, cb := range batch {
		cb()
	}
	return len(batch)
}

// Len reports the number of callbacks waiting for the next Flush.
func (q *Queue) Len() int {
	return len(q.pending)
}
