package orderrepo

import (
	"maps"
	"sync/atomic"

	"github.com/google/uuid"
)

// Table holds order rows keyed by id. The submission sequence is shared by
// every copy of a table, so a number handed out inside a discarded copy is
// still never reused.
type Table struct {
	rows     map[uuid.UUID]OrderDTO
	sequence *atomic.Int64
}

// NewTable creates an empty table whose sequence starts at 1.
func NewTable() *Table {
	return &Table{
		rows:     make(map[uuid.UUID]OrderDTO),
		sequence: new(atomic.Int64),
	}
}

// Clone returns an independent copy of the rows sharing the same sequence.
func (t *Table) Clone() *Table {
	rows := maps.Clone(t.rows)
	for id, row := range rows {
		rows[id] = row.clone()
	}
	if rows == nil {
		rows = make(map[uuid.UUID]OrderDTO)
	}
	return &Table{rows: rows, sequence: t.sequence}
}

func (t *Table) Len() int {
	return len(t.rows)
}
