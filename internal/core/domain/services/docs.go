// Package services provides domain services that coordinate the order,
// solver and queue aggregates.
//
// The package includes:
//   - Scheduler: matches waiting orders with free solver slots, FIFO, lowest solver id first
//   - VerifyInvariants: cross-aggregate consistency check run on every commit
package services
