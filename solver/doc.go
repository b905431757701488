// Package solver runs the observe–propagate loop that collapses every slot
// of a topology to a single tile satisfying a ruleset.
//
// What:
//
//   - Solver owns the per-slot superpositions and the PRNG; the topology
//     and ruleset are borrowed and must outlive it.
//   - Solve resets, snapshots the post-initialization baseline, and runs up
//     to MaxAttempts attempts of at most MaxSteps observe–propagate steps,
//     restoring the baseline between attempts.
//   - Observation picks uniformly among the slots of minimum positive
//     entropy and collapses the chosen one to a uniform tile.
//   - Propagation masks each neighbor by the states the ruleset allows and
//     walks on from every neighbor that shrank, either by depth-first
//     recursion (the canonical walk) or an iterative LIFO worklist.
//   - Stats counts attempts, observations, and choices, and snapshots the
//     neighborhood around any slot that became empty.
//
// Why:
//
//   - Least-entropy observation keeps branching low; propagation to
//     fixpoint keeps every pair of neighboring slots arc-consistent, so a
//     finished solve satisfies the ruleset everywhere by construction.
//
// Determinism:
//
//   - Equal topology, ruleset, prototype, options, and seed give equal
//     results. Per step the PRNG draws the argmin pick first, then the tile
//     pick; attempts after the first keep drawing from the same stream,
//     which is what gives restarts their variety.
//
// Concurrency:
//
//   - A Solver is single-threaded and synchronous; nothing is observable
//     from outside during Solve.
//
// Options (defaults): MaxSteps 100000, MaxAttempts 20, RandomSeed 0,
// iterative propagation.
//
// Errors:
//
//   - ErrNilTopology / ErrNilRuleset / ErrNilPrototype: invalid construction.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Solve itself reports failure as a value — false plus Stats — never as an
// error or panic.
package solver
