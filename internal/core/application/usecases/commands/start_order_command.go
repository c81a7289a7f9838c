package commands

import (
	"errors"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand marks an assigned order as being worked on.
type StartOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartOrderCommand(orderID kernel.UUID) (StartOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartOrderCommand{}, err
	}

	return StartOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
