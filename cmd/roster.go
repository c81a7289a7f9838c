package cmd

import (
	"fmt"
	"os"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/solver"

	"gopkg.in/yaml.v3"
)

// RosterFile is the YAML layout of SOLVER_ROSTER:
//
//	solvers:
//	  - name: Solver A
//	  - name: Solver B
//	    capacity: 3
//
// Ids default to the 1-based position in the list, capacity to
// Config.SolverCapacity.
type RosterFile struct {
	Solvers []RosterEntry `yaml:"solvers"`
}

type RosterEntry struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

// DefaultRoster is the desk staffed by two solvers.
func DefaultRoster(capacity int) ([]*solver.Solver, error) {
	return RosterFile{Solvers: []RosterEntry{
		{Name: "Solver A"},
		{Name: "Solver B"},
	}}.Build(capacity)
}

// LoadRoster reads the roster from path, or returns DefaultRoster when path
// is empty.
func LoadRoster(path string, defaultCapacity int) ([]*solver.Solver, error) {
	if path == "" {
		return DefaultRoster(defaultCapacity)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file RosterFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	if len(file.Solvers) == 0 {
		return nil, fmt.Errorf("roster %s declares no solvers", path)
	}

	return file.Build(defaultCapacity)
}

// Build creates the solvers. Duplicate ids are rejected later by solver.NewPool.
func (f RosterFile) Build(defaultCapacity int) ([]*solver.Solver, error) {
	solvers := make([]*solver.Solver, 0, len(f.Solvers))
	for i, entry := range f.Solvers {
		id := entry.ID
		if id == 0 {
			id = i + 1
		}
		capacity := entry.Capacity
		if capacity == 0 {
			capacity = defaultCapacity
		}

		s, err := solver.NewSolver(kernel.SolverID(id), entry.Name, capacity)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i+1, err)
		}
		solvers = append(solvers, s)
	}
	return solvers, nil
}
