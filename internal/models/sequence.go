package models

import "sync/atomic"

// Sequence hands out consecutive article ids. It is safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a sequence whose first id is start.
func NewSequence(start int) *Sequence {
	s := &Sequence{}
	s.next.Store(int64(start))

	return s
}

// Next returns the current id and advances the sequence.
func (s *Sequence) Next() int {
	return int(s.next.Add(1) - 1)
}

// Peek returns the id the next call to Next will hand out.
func (s *Sequence) Peek() int {
	return int(s.next.Load())
}

// defaultSequence numbers every article built with New. It starts at 0 when the
// process starts and is never reset.
var defaultSequence = NewSequence(0)

// DefaultSequence returns the process-wide sequence used by New.
func DefaultSequence() *Sequence {
	return defaultSequence
}
