package commands

import (
	"errors"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand finishes an order in progress and frees its
// solver slot for the next waiting order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates the command for orderID.
func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
