package commands

import (
	"errors"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand records the payment of a pending order. The order
// then either takes a free solver slot at once or joins the back of the wait
// queue.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates the command for orderID.
func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
