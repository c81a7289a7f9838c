package ports

import (
	"context"

	"solverdesk/internal/core/domain/model/queue"
)

// QueueRepository stores the single wait queue.
type QueueRepository interface {
	Get(ctx context.Context) (*queue.WaitQueue, error)
	Save(ctx context.Context, q *queue.WaitQueue) error
}
