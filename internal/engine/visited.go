// Package engine implements the forward and reverse breadth-first solvers
// over the board package's move-generation rules.
package engine

import "github.com/bits-and-blooms/bitset"

// VisitedSet is a membership set of GameState fingerprints: every queued
// state is checked against it and inserted exactly once, so the BFS
// frontier never revisits a position. It stores no score or best move;
// forward and reverse search only need "have we seen this fingerprint
// before", never a cached evaluation.
//
// The backing store is a dense bitset covering the fingerprint's full
// 32-bit range. At roughly 512MiB it dominates the solver's memory
// footprint; a hashed set would trade that for per-probe allocation
// without changing the solver's behavior, since the contract is "each
// fingerprint visited once" either way.
type VisitedSet struct {
	bits *bitset.BitSet
}

// NewVisitedSet allocates an empty visited set sized for the full 32-bit
// fingerprint range.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{bits: bitset.New(1 << 32)}
}

// Test reports whether fingerprint fp has already been marked visited.
func (v *VisitedSet) Test(fp uint32) bool {
	return v.bits.Test(uint(fp))
}

// Mark records fingerprint fp as visited.
func (v *VisitedSet) Mark(fp uint32) {
	v.bits.Set(uint(fp))
}
