// Package solver provides the Solver aggregate and the Pool that selects
// solvers for new work.
//
// The package includes:
//   - Solver: a worker with a fixed capacity and the ordered list of orders it holds
//   - Pool: the fixed roster, ordered by id, with FirstAvailable/Reserve/Release
//
// Selection is deterministic: FirstAvailable always returns the lowest id
// among solvers with a free slot.
package solver
