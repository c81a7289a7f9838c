// Package orderrepo provides the in-memory order table, its row type and the
// mapping between rows and order aggregates.
package orderrepo

import (
	"time"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the stored row of an order aggregate. Rows are plain values so a
// table can be copied for staging.
type OrderDTO struct {
	ID          uuid.UUID
	Number      int64
	StudentName string
	Subject     string
	Description string
	Phone       string
	Deadline    time.Time
	CreatedAt   time.Time
	Status      int
	SolverID    *int
}

// fromDomain converts an order domain aggregate to its stored representation.
func fromDomain(o *order.Order) OrderDTO {
	var solverID *int
	if id := o.Solver(); id != nil {
		raw := id.Int()
		solverID = &raw
	}

	r := o.Requester()
	return OrderDTO{
		ID:          o.ID().Bytes(),
		Number:      o.Number(),
		StudentName: r.StudentName(),
		Subject:     r.Subject(),
		Description: r.Description(),
		Phone:       r.Phone().String(),
		Deadline:    o.Deadline(),
		CreatedAt:   o.CreatedAt(),
		Status:      int(o.Status()),
		SolverID:    solverID,
	}
}

// toDomain rebuilds an order aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var solverID *kernel.SolverID
	if dto.SolverID != nil {
		sID, solverErr := kernel.NewSolverID(*dto.SolverID)
		if solverErr != nil {
			return nil, solverErr
		}
		solverID = &sID
	}

	requester, err := order.NewRequester(dto.StudentName, dto.Subject, dto.Description, dto.Phone)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Number, requester, dto.Deadline, dto.CreatedAt, order.Status(dto.Status), solverID)
}

func (dto OrderDTO) clone() OrderDTO {
	if dto.SolverID != nil {
		id := *dto.SolverID
		dto.SolverID = &id
	}
	return dto
}
