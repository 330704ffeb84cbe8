package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Stamp identifies one press-drag-release gesture.
type Stamp struct {
	Seq uint64
	ID  string
}

// Sequencer hands out gesture stamps in press order.
type Sequencer struct {
	n atomic.Uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

func (s *Sequencer) Next() Stamp {
	return Stamp{Seq: s.n.Add(1), ID: uuid.NewString()}
}
