package commands

import (
	"errors"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws an order that is not yet completed.
// Cancelled orders are removed from the desk.
//
// Example:
//
//	cmd, err := commands.NewCancelOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order is already completed
//	}
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates the command for orderID.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
