// Package queuerepo stores the wait queue in memory.
package queuerepo

import (
	"context"
	"slices"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/queue"

	"github.com/google/uuid"
)

// Table holds the queued order ids, front first.
type Table struct {
	ids []uuid.UUID
}

func NewTable() *Table {
	return &Table{}
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return &Table{ids: slices.Clone(t.ids)}
}

func (t *Table) Len() int {
	return len(t.ids)
}

type tableSource interface {
	QueueTable(write bool) (*Table, error)
}

// MemoryQueueRepository implements QueueRepository over a Table.
type MemoryQueueRepository struct {
	source tableSource
}

// NewMemoryQueueRepository creates a repository bound to source.
func NewMemoryQueueRepository(source tableSource) *MemoryQueueRepository {
	return &MemoryQueueRepository{source: source}
}

// Get restores the wait queue.
func (r *MemoryQueueRepository) Get(ctx context.Context) (*queue.WaitQueue, error) {
	t, err := r.table(ctx, false)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(t.ids))
	for _, raw := range t.ids {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return queue.RestoreWaitQueue(ids)
}

// Save replaces the stored queue with q.
func (r *MemoryQueueRepository) Save(ctx context.Context, q *queue.WaitQueue) error {
	t, err := r.table(ctx, true)
	if err != nil {
		return err
	}

	ids := q.IDs()
	t.ids = make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		t.ids = append(t.ids, id.Bytes())
	}
	return nil
}

func (r *MemoryQueueRepository) table(ctx context.Context, write bool) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.source.QueueTable(write)
}
