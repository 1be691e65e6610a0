// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO of events waiting to be dispatched.
// It is filled by host callbacks and drained once per tick,
// both on the main thread, so it does no locking.
type Queue struct {
	evs []Event
}

// Send adds an event to the end of the queue.
// A nil event is ignored.
func (q *Queue) Send(ev Event) {
	if ev == nil {
		return
	}
	q.evs = append(q.evs, ev)
}

// Drain removes and returns all queued events in arrival order.
// It returns nil if the queue is empty.
func (q *Queue) Drain() []Event {
	if len(q.evs) == 0 {
		return nil
	}
	evs := q.evs
	q.evs = nil
	return evs
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	return len(q.evs)
}
