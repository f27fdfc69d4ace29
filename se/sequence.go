package se

// Transform is the capability a rigid transform must provide to take part
// in a Sequence: inversion and composition with another transform of the
// same concrete type. Both Se2 and Se3 satisfy it.
type Transform[T any] interface {
	Invert() T
	Compose(b T) T
}

type entry[T any] struct {
	invert bool
	tran   T
}

// Sequence is an ordered chain of transform edges, each usable forward or
// inverted, that folds into one net transform. It models a path through
// coordinate frames where some edges are only known in the reverse
// direction: frame B->A is stored, but the chain needs A->B.
//
// The sequence is append-only; Net does not consume or reorder entries, so
// repeated calls with unchanged entries return the same result.
type Sequence[T Transform[T]] struct {
	entries []entry[T]
}

// Add appends a transform edge. When invert is true the edge contributes
// the inverse of t to the fold instead of t itself. Callers porting chains
// from APIs whose per-edge flag means "apply forward" must negate the flag.
func (s *Sequence[T]) Add(invert bool, t T) {
	s.entries = append(s.entries, entry[T]{invert: invert, tran: t})
}

// Len returns the number of edges added so far.
func (s *Sequence[T]) Len() int {
	return len(s.entries)
}

// Net folds the chain into the net transform from the frame at the start
// of the sequence to the frame at its end: entries are resolved in
// insertion order, each contributing its transform or inverse per its
// flag, and the net applies the first entry first. An empty sequence has
// no net transform and returns ErrEmptySequence.
func (s *Sequence[T]) Net() (T, error) {
	if len(s.entries) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	acc := s.resolve(0)
	for i := 1; i < len(s.entries); i++ {
		acc = s.resolve(i).Compose(acc)
	}
	return acc, nil
}

func (s *Sequence[T]) resolve(i int) T {
	e := s.entries[i]
	if e.invert {
		return e.tran.Invert()
	}
	return e.tran
}
