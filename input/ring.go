// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

// ring is a fixed-capacity double-ended queue. Pushing into a full ring
// is a no-op.
type ring struct {
	buf   []TimedEvent
	head  int
	count int
}

func newRing(capacity int) ring {
	return ring{buf: make([]TimedEvent, capacity)}
}

func (r *ring) len() int { return r.count }
func (r *ring) cap() int { return len(r.buf) }

func (r *ring) pushBack(te TimedEvent) bool {
	if r.count >= len(r.buf) {
		return false
	}
	r.buf[(r.head+r.count)%len(r.buf)] = te
	r.count++
	return true
}

func (r *ring) popFront() (TimedEvent, bool) {
	if r.count == 0 {
		return TimedEvent{}, false
	}
	te := r.buf[r.head]
	r.buf[r.head] = TimedEvent{}
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return te, true
}

func (r *ring) back() (TimedEvent, bool) {
	if r.count == 0 {
		return TimedEvent{}, false
	}
	return r.buf[(r.head+r.count-1)%len(r.buf)], true
}

func (r *ring) popBack() (TimedEvent, bool) {
	te, ok := r.back()
	if !ok {
		return te, false
	}
	r.buf[(r.head+r.count-1)%len(r.buf)] = TimedEvent{}
	r.count--
	return te, true
}
