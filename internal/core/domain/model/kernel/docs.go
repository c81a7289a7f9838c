// Package kernel provides the shared value objects of the solver desk domain.
//
// The package includes:
//   - UUID: order identifier backed by github.com/google/uuid
//   - SolverID: small positive solver number, ordered by roster declaration
//   - Phone: requester contact number validated by digit count
//
// Values are immutable and their zero values are invalid.
package kernel
