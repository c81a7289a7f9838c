package queue

import (
	"errors"
	"fmt"
	"slices"

	"solverdesk/internal/core/domain/model/kernel"
)

// ErrAlreadyQueued is returned when an order is pushed a second time.
var ErrAlreadyQueued = errors.New("order is already queued")

// WaitQueue holds paid orders that have no solver yet, oldest first.
//
// Business rules:
//   - Entries leave only from the front (assignment) or by Remove (cancellation)
//   - An order id appears at most once
//   - Relative order of the remaining entries never changes
type WaitQueue struct {
	ids []kernel.UUID
}

// NewWaitQueue creates an empty queue.
func NewWaitQueue() *WaitQueue {
	return &WaitQueue{}
}

// RestoreWaitQueue rebuilds a queue from stored ids, front first.
func RestoreWaitQueue(ids []kernel.UUID) (*WaitQueue, error) {
	q := &WaitQueue{ids: make([]kernel.UUID, 0, len(ids))}
	for _, id := range ids {
		if err := q.PushBack(id); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// PushBack appends id at the tail.
func (q *WaitQueue) PushBack(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if q.Contains(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyQueued, id)
	}

	q.ids = append(q.ids, id)
	return nil
}

// PopFront removes and returns the oldest id.
func (q *WaitQueue) PopFront() (kernel.UUID, bool) {
	if len(q.ids) == 0 {
		return kernel.UUID{}, false
	}

	id := q.ids[0]
	q.ids = slices.Delete(q.ids, 0, 1)
	return id, true
}

// Front returns the oldest id without removing it.
func (q *WaitQueue) Front() (kernel.UUID, bool) {
	if len(q.ids) == 0 {
		return kernel.UUID{}, false
	}
	return q.ids[0], true
}

// Remove deletes id wherever it is. It reports whether id was queued.
func (q *WaitQueue) Remove(id kernel.UUID) bool {
	i := q.Position(id)
	if i < 0 {
		return false
	}

	q.ids = slices.Delete(q.ids, i, i+1)
	return true
}

// Contains reports whether id is queued.
func (q *WaitQueue) Contains(id kernel.UUID) bool {
	return q.Position(id) >= 0
}

// Position returns the zero-based distance of id from the front, or -1.
func (q *WaitQueue) Position(id kernel.UUID) int {
	return slices.IndexFunc(q.ids, func(other kernel.UUID) bool {
		return other.IsEqual(id)
	})
}

func (q *WaitQueue) Len() int {
	return len(q.ids)
}

func (q *WaitQueue) IsEmpty() bool {
	return len(q.ids) == 0
}

// IDs returns a copy of the queued ids, front first.
func (q *WaitQueue) IDs() []kernel.UUID {
	out := make([]kernel.UUID, len(q.ids))
	copy(out, q.ids)
	return out
}
