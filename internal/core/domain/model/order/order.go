package order

import (
	"errors"
	"fmt"
	"time"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMissingField marks a required submission field that is empty after trimming.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidPhone marks a phone whose digit count is out of range.
	ErrInvalidPhone = kernel.ErrInvalidPhone
	// ErrInvalidDeadline marks a deadline that cannot be parsed.
	ErrInvalidDeadline = errors.New("invalid deadline")
	// ErrPastDeadline marks a deadline that is not strictly in the future.
	ErrPastDeadline = errors.New("deadline must be in the future")
)

// Order is the aggregate root for a homework order. It owns the lifecycle
// status and the reference to the solver holding it.
//
// Order follows these invariants:
//   - Has a valid UUID and a positive submission number
//   - Requester details are complete
//   - A solver is set exactly when the status is Assigned or InProgress
//   - Status changes only through the transition methods
type Order struct {
	id     kernel.UUID
	number int64

	requester Requester
	deadline  time.Time
	createdAt time.Time

	status   Status
	solverID *kernel.SolverID

	isConstructed bool
}

// NewOrder creates an order in PendingPayment status.
//
// number is the monotonic submission sequence used for listing, deadline
// must be strictly after now. All field errors are joined.
//
// Example:
//
//	requester, _ := order.NewRequester("Ann", "Algebra", "Exercises 1-5", "555-010-9999")
//	o, err := order.NewOrder(kernel.NewUUID(), 1, requester, deadline, time.Now())
func NewOrder(id kernel.UUID, number int64, requester Requester, deadline, now time.Time) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setRequester(requester),
		o.setDeadline(deadline, now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from stored state. Unlike NewOrder it accepts
// any status and does not require the deadline to still be in the future.
func RestoreOrder(
	id kernel.UUID,
	number int64,
	requester Requester,
	deadline time.Time,
	createdAt time.Time,
	status Status,
	solverID *kernel.SolverID,
) (*Order, error) {
	o := &Order{
		deadline:      deadline,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setRequester(requester),
		o.setStatus(status, solverID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the monotonic submission number.
func (o *Order) Number() int64 {
	return o.number
}

// Requester returns the student-supplied details.
func (o *Order) Requester() Requester {
	return o.requester
}

// Deadline returns the requested deadline. It is informational only.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Solver returns the holding solver, nil unless Assigned or InProgress.
func (o *Order) Solver() *kernel.SolverID {
	if o.solverID == nil {
		return nil
	}
	id := *o.solverID
	return &id
}

// IsAwaitingSolver reports whether the order is paid and has no solver yet,
// which is exactly when it belongs in the wait queue.
func (o *Order) IsAwaitingSolver() bool {
	return o.status == Paid && o.solverID == nil
}

// Pay moves PendingPayment -> Paid.
func (o *Order) Pay() error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Assign records solverID as the holder and moves Paid -> Assigned.
// The caller reserves the slot on the solver.
func (o *Order) Assign(solverID kernel.SolverID) error {
	if err := solverID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = next
	o.solverID = &solverID
	return nil
}

// Start moves Assigned -> InProgress.
func (o *Order) Start() error {
	next, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Complete moves InProgress -> Completed and drops the solver reference.
// The caller releases the slot on the solver returned by Solver beforehand.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = next
	o.solverID = nil
	return nil
}

// Cancel moves any non-terminal order to Cancelled and drops the solver
// reference.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = next
	o.solverID = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number is invalid", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

func (o *Order) setRequester(requester Requester) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	o.requester = requester
	return nil
}

func (o *Order) setDeadline(deadline, now time.Time) error {
	if err := validateDeadline(deadline, now); err != nil {
		return err
	}
	o.deadline = deadline
	return nil
}

func (o *Order) setStatus(status Status, solverID *kernel.SolverID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveSolver(solverID != nil); err != nil {
		return err
	}
	if solverID != nil {
		if err := solverID.Validate(); err != nil {
			return err
		}
		id := *solverID
		o.solverID = &id
	}
	o.status = status
	return nil
}
