package memstore

import "math/rand/v2"

// DefaultRandomLimit is the exclusive upper bound used by RandomIDs when no
// positive limit is given.
const DefaultRandomLimit = 1000

// IDGenerator hands out ids for records added without one.
type IDGenerator interface {
	NextID() int
}

// idObserver is implemented by generators that want to hear about ids
// supplied by callers, so they can steer clear of them.
type idObserver interface {
	Observe(id int)
}

// Sequence is a monotonic counter starting at 1. It never returns an id at or
// below the largest id it has observed.
type Sequence struct {
	last int
}

// NewSequence returns a Sequence whose first id is 1.
func NewSequence() *Sequence { return &Sequence{} }

func (s *Sequence) NextID() int {
	s.last++
	return s.last
}

func (s *Sequence) Observe(id int) {
	if id > s.last {
		s.last = id
	}
}

type randomIDs struct {
	r     *rand.Rand
	limit int
}

// RandomIDs draws ids uniformly from [0, limit). Nothing prevents a draw from
// landing on an id already in use; the new record then replaces the old one.
func RandomIDs(r *rand.Rand, limit int) IDGenerator {
	if limit <= 0 {
		limit = DefaultRandomLimit
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &randomIDs{r: r, limit: limit}
}

func (g *randomIDs) NextID() int { return g.r.IntN(g.limit) }
