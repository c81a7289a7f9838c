// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: aggregate root holding identity, requester details, deadline, status and solver
//   - Requester: student-supplied details (name, subject, description, phone)
//   - Status: state machine PendingPayment -> Paid -> Assigned -> InProgress -> Completed,
//     with Cancelled reachable from PendingPayment, Paid and Assigned
//
// Validation failures are reported with the errs package types and carry one of the
// kind sentinels ErrMissingField, ErrInvalidPhone, ErrInvalidDeadline or ErrPastDeadline
// as their cause, so callers can classify them with errors.Is.
package order
