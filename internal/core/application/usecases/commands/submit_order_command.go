package commands

import (
	"errors"
	"time"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a student's request for homework help.
// The form fields are trimmed and validated up front; every problem is
// reported in one joined error. Whether the deadline is still in the future is
// checked by the handler against its clock.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(kernel.NewUUID(), "Ann", "Algebra", "Ex. 1-5", "555-010-9999", "2026-11-01T18:00")
//	if errors.Is(err, order.ErrMissingField) {
//	    return fmt.Errorf("incomplete form: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requester order.Requester
	deadline  time.Time

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand validates the submission form. Deadlines without a
// zone are read in the server's local time.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	studentName, subject, description, phone, deadline string,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequester(studentName, subject, description, phone),
		cmd.setDeadline(deadline),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SubmitOrderCommand) Requester() order.Requester {
	return c.requester
}

func (c SubmitOrderCommand) Deadline() time.Time {
	return c.deadline
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setRequester(studentName, subject, description, phone string) error {
	requester, err := order.NewRequester(studentName, subject, description, phone)
	if err != nil {
		return err
	}

	c.requester = requester
	return nil
}

func (c *SubmitOrderCommand) setDeadline(raw string) error {
	deadline, err := order.ParseDeadline(raw, time.Local)
	if err != nil {
		return err
	}

	c.deadline = deadline
	return nil
}
