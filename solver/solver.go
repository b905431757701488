// Package solver implements the observe–propagate engine.
package solver

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tilesolve/core"
)

// Solver collapses every slot of a topology to a single tile admissible
// under a ruleset. It owns the slot superpositions, the PRNG, and the
// statistics; the topology and ruleset are borrowed, must outlive the
// solver, and stay immutable during Solve.
type Solver[S core.TileSet[S]] struct {
	topo  core.Topology
	rules core.Ruleset[S]

	slots    []S // current superpositions, one per slot
	baseline []S // post-initialization snapshot restored on restart

	scratch S     // reusable AllowedStates target, one per solver
	argmin  []int // reusable argmin-entropy buffer
	stack   []int // reusable worklist of the iterative walk

	rng   *rand.Rand
	opts  Options
	stats Stats[S]

	// initial pre-restricts slots before the first propagation pass;
	// nil means no initial constraints.
	initial func(slots []S) error
}

// New constructs a solver over topo and rules. Every slot starts as an
// independent clone of proto; call Solve (or Reset) before reading slots.
// Returns ErrNilTopology / ErrNilRuleset / ErrNilPrototype on nil inputs
// and ErrOptionViolation on invalid options.
// Complexity: O(SlotCount) clones.
func New[S core.TileSet[S]](topo core.Topology, rules core.Ruleset[S], proto S, opts ...Option) (*Solver[S], error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	if rules == nil {
		return nil, ErrNilRuleset
	}
	var zero S
	if any(proto) == any(zero) {
		return nil, ErrNilPrototype
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	slots := make([]S, topo.SlotCount())
	for i := range slots {
		slots[i] = proto.Clone()
	}

	return &Solver[S]{
		topo:    topo,
		rules:   rules,
		slots:   slots,
		scratch: proto.EmptyClone(),
		rng:     rand.New(rand.NewSource(o.RandomSeed)),
		opts:    o,
	}, nil
}

// Options returns the active configuration.
func (s *Solver[S]) Options() Options { return s.opts }

// Slots exposes the current superpositions. After a successful Solve every
// entry has cardinality 1; after a failed one they hold the
// post-initialization baseline.
func (s *Solver[S]) Slots() []S { return s.slots }

// TileAt returns the single tile at a collapsed slot, or ok=false while
// the slot still holds zero or several tiles.
func (s *Solver[S]) TileAt(slot int) (tile int, ok bool) {
	if s.slots[slot].TileCount() != 1 {
		return 0, false
	}

	return s.slots[slot].Tiles()[0], true
}

// Stats returns the statistics of the most recent Solve. The neighborhood
// snapshots are shared, not copied.
func (s *Solver[S]) Stats() Stats[S] { return s.stats }

// SetInitialConstraint installs a hook that pre-restricts slots between
// set-to-all and the first propagation pass — for instance to pin border
// slots to a particular tile subset. If the hook returns an error or
// leaves any slot empty, Reset (and therefore Solve) fails without
// attempting propagation. A nil fn removes the hook.
func (s *Solver[S]) SetInitialConstraint(fn func(slots []S) error) {
	s.initial = fn
}

// Solve runs the full lifecycle: optional reset, baseline snapshot, then
// up to MaxAttempts attempts, restoring the baseline after each failure.
// Attempts after the first do not reseed the PRNG — they continue drawing
// from the same stream, which is what differentiates them.
// Returns true once every slot is collapsed, false when the initial
// configuration is unsatisfiable or the attempt budget is exhausted; in
// the false case slots hold the post-initialization baseline.
func (s *Solver[S]) Solve(resetBefore bool) bool {
	if resetBefore && !s.Reset(true) {
		// Initial configuration cannot be solved.
		return false
	}

	s.baseline = make([]S, len(s.slots))
	for i := range s.slots {
		s.baseline[i] = s.slots[i].Clone()
	}

	for i := 0; i < s.opts.MaxAttempts; i++ {
		if s.trySolve() {
			return true
		}
		s.restart()
	}

	return false
}

// Reset returns the solver to its pre-solve state: every slot set to all,
// the PRNG reseeded (when reseed is true), statistics cleared, initial
// constraints applied, and one propagation pass run from every slot.
// Returns false if the initial constraints or the initial propagation
// produce an empty slot.
func (s *Solver[S]) Reset(reseed bool) bool {
	for i := range s.slots {
		s.slots[i].SetToAll()
	}
	if reseed {
		s.rng = rand.New(rand.NewSource(s.opts.RandomSeed))
	}

	s.stats = Stats[S]{}

	if s.initial != nil {
		if err := s.initial(s.slots); err != nil {
			return false
		}
		for i := range s.slots {
			if s.slots[i].IsEmpty() {
				return false
			}
		}
	}

	// Propagate from all slots for init.
	for i := range s.slots {
		if !s.propagate(i) {
			return false
		}
	}

	return true
}

// restart restores the baseline without touching statistics or the PRNG.
func (s *Solver[S]) restart() {
	for i := range s.slots {
		s.slots[i] = s.baseline[i].Clone()
	}
}

// trySolve is one attempt: up to MaxSteps steps until finished or failed.
// Exceeding the step budget counts as failure.
func (s *Solver[S]) trySolve() bool {
	s.stats.AttemptCount++

	for i := 0; i < s.opts.MaxSteps; i++ {
		switch s.Step() {
		case StatusFailed:
			return false
		case StatusFinished:
			return true
		}
	}

	return false
}

// Step performs one observe–propagate iteration and reports whether the
// attempt should continue, is finished, or has failed. Exposed so callers
// can drive a solve incrementally; Solve is the batch driver.
func (s *Solver[S]) Step() Status {
	slot, ok := s.observe()
	if !ok {
		// Nothing left to observe, we are done.
		return StatusFinished
	}
	if !s.propagate(slot) {
		return StatusFailed
	}

	return StatusContinue
}

// observe collapses the least-entropic superposition to a single tile and
// returns its slot, or ok=false when every slot has entropy zero.
//
// Draw order: one argmin pick (only when the argmin set has several
// members), then one tile pick (only when the chosen slot still has
// several tiles). Both draws are uniform.
func (s *Solver[S]) observe() (slot int, ok bool) {
	s.stats.ObserveCount++

	// 1. Find the least entropic superpositions.
	minEntropy := math.MaxFloat64
	s.argmin = s.argmin[:0]
	for i := range s.slots {
		entropy := s.slots[i].Entropy()
		if entropy > 0 && entropy < minEntropy {
			minEntropy = entropy
			s.argmin = append(s.argmin[:0], i)
		} else if entropy == minEntropy {
			s.argmin = append(s.argmin, i)
		}
	}

	if len(s.argmin) == 0 {
		return 0, false
	}

	// 2. Pick one of the possible tiles in one of the candidate slots.
	slot = s.argmin[0]
	if len(s.argmin) > 1 {
		slot = s.argmin[s.rng.Intn(len(s.argmin))]
	}
	if s.slots[slot].TileCount() > 1 {
		s.stats.ChoiceCount++
		s.slots[slot].Observe(s.rng)
	}

	return slot, true
}

// propagate dispatches to the configured walk.
func (s *Solver[S]) propagate(slot int) bool {
	if s.opts.UseRecursive {
		return s.propagateRec(slot)
	}

	return s.propagateIter(slot)
}

// propagateArc masks the neighbor across one arc. It reports the masking
// result and, on an emptied neighbor, logs the impossible neighborhood.
func (s *Solver[S]) propagateArc(slot int, rel core.Relation, n core.Neighbor) (changed, alive bool) {
	s.rules.AllowedStates(s.scratch, s.slots[slot], rel, n.Dual)

	if !s.slots[n.Slot].MaskBy(s.scratch) {
		return false, true
	}
	if s.slots[n.Slot].IsEmpty() {
		// Inconsistency, abort.
		s.logImpossibleNeighborhood(n.Slot)
		return true, false
	}

	return true, true
}

// propagateRec walks the propagation graph depth-first: every neighbor
// whose superposition shrank is recursed into before the next relation is
// tried. This is the canonical walk. Returns false on inconsistency.
func (s *Solver[S]) propagateRec(slot int) bool {
	relCount := s.topo.RelationCount()
	for rel := 0; rel < relCount; rel++ {
		n, ok := s.topo.NeighborOf(slot, core.Relation(rel))
		if !ok {
			continue
		}
		changed, alive := s.propagateArc(slot, core.Relation(rel), n)
		if !alive {
			return false
		}
		if changed && !s.propagateRec(n.Slot) {
			return false
		}
	}

	return true
}

// propagateIter is the worklist form of the walk: a LIFO stack of slots
// seeded with the origin; popping a slot re-masks all its neighbors and
// pushes every neighbor that shrank. The visit order differs from the
// recursive walk, but AllowedStates is monotone for every ruleset here, so
// the fixpoint — and thus the final slot vector — is the same.
// TODO: a per-slot dirty flag would avoid re-pushing slots already queued.
func (s *Solver[S]) propagateIter(slot int) bool {
	relCount := s.topo.RelationCount()

	s.stack = append(s.stack[:0], slot)
	for len(s.stack) > 0 {
		cur := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		for rel := 0; rel < relCount; rel++ {
			n, ok := s.topo.NeighborOf(cur, core.Relation(rel))
			if !ok {
				continue
			}
			changed, alive := s.propagateArc(cur, core.Relation(rel), n)
			if !alive {
				return false
			}
			if changed {
				s.stack = append(s.stack, n.Slot)
			}
		}
	}

	return true
}

// logImpossibleNeighborhood snapshots the slots around the first slot that
// became empty. Its neighbors are non-empty by construction: propagation
// stops at the first failure.
func (s *Solver[S]) logImpossibleNeighborhood(slot int) {
	relCount := s.topo.RelationCount()
	neighborhood := make(Neighborhood[S], relCount)
	for rel := 0; rel < relCount; rel++ {
		n, ok := s.topo.NeighborOf(slot, core.Relation(rel))
		if !ok {
			continue
		}
		neighborhood[rel] = &NeighborCell[S]{
			Super: s.slots[n.Slot].Clone(),
			Rel:   n.Dual,
		}
	}
	s.stats.ImpossibleNeighborhoods = append(s.stats.ImpossibleNeighborhoods, neighborhood)
}
