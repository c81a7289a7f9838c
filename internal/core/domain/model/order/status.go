package order

import (
	"fmt"

	"solverdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PendingPayment ──pay──> Paid ──assign──> Assigned ──start──> InProgress ──complete──> Completed
//	      │                  │                  │                       │
//	      └──────────────────┴──────────────────┴────────cancel─────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Every transition method returns an
// InvalidTransitionError when the event is not allowed from the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingPayment is the initial status of a submitted order.
	PendingPayment

	// Paid orders are waiting for a solver slot.
	Paid

	// Assigned orders hold a slot on a solver but work has not started.
	Assigned

	// InProgress orders are being worked on by their solver.
	InProgress

	// Completed is terminal; the solver slot has been released.
	Completed

	// Cancelled is terminal; any slot or queue entry has been released.
	Cancelled
)

// Event names used in transition errors.
const (
	EventPay      = "pay"
	EventAssign   = "assign"
	EventStart    = "start"
	EventComplete = "complete"
	EventCancel   = "cancel"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		PendingPayment: "PendingPayment",
		Paid:           "Paid",
		Assigned:       "Assigned",
		InProgress:     "InProgress",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{PendingPayment, Paid, Assigned, InProgress, Completed, Cancelled}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < PendingPayment || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// HoldsSolver reports whether an order in this status must occupy a solver slot.
func (s Status) HoldsSolver() bool {
	return s == Assigned || s == InProgress
}

// ValidateCanHaveSolver checks the pairing between status and solver assignment:
// Assigned and InProgress orders must have a solver, all other statuses must not.
func (s Status) ValidateCanHaveSolver(hasSolver bool) error {
	if hasSolver && !s.HoldsSolver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a solver", s.String()),
		)
	}

	if !hasSolver && s.HoldsSolver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no solver", s.String()),
		)
	}

	return nil
}

// Pay transitions PendingPayment -> Paid.
func (s Status) Pay() (Status, error) {
	return s.transition(EventPay, Paid, PendingPayment)
}

// Assign transitions Paid -> Assigned. Reassignment is not allowed.
func (s Status) Assign() (Status, error) {
	return s.transition(EventAssign, Assigned, Paid)
}

// Start transitions Assigned -> InProgress.
func (s Status) Start() (Status, error) {
	return s.transition(EventStart, InProgress, Assigned)
}

// Complete transitions InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	return s.transition(EventComplete, Completed, InProgress)
}

// Cancel transitions any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transition(EventCancel, Cancelled, PendingPayment, Paid, Assigned, InProgress)
}

func (s Status) transition(event string, to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return 0, errs.NewInvalidTransitionError(s.String(), event)
}
