package board

import "testing"

// TestPermutationSwapsCoverage applies permutationSwaps(n)'s adjacent
// swaps to the identity and checks each of the n! permutations is visited
// exactly once.
func TestPermutationSwapsCoverage(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		swaps := permutationSwaps(n)

		factorial := 1
		for i := 2; i <= n; i++ {
			factorial *= i
		}
		if len(swaps) != factorial-1 {
			t.Fatalf("permutationSwaps(%d) has %d entries, want %d", n, len(swaps), factorial-1)
		}

		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		seen := map[string]bool{permKey(perm): true}
		for _, pos := range swaps {
			perm[pos], perm[pos+1] = perm[pos+1], perm[pos]
			key := permKey(perm)
			if seen[key] {
				t.Fatalf("n=%d: permutation %v repeated", n, perm)
			}
			seen[key] = true
		}
		if len(seen) != factorial {
			t.Fatalf("n=%d: visited %d distinct permutations, want %d", n, len(seen), factorial)
		}
	}
}

func permKey(p []int) string {
	b := make([]byte, len(p))
	for i, v := range p {
		b[i] = byte('0' + v)
	}
	return string(b)
}

func TestEquivalentStatesAnySize(t *testing.T) {
	state := mustState(t, [RobotCount]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	eqs := EquivalentStatesAny(state)
	if len(eqs) != 24 {
		t.Fatalf("len(EquivalentStatesAny) = %d, want 24", len(eqs))
	}
	assertAllDistinctRobotSets(t, state, eqs)
}

func TestEquivalentStatesParticularSize(t *testing.T) {
	state := mustState(t, [RobotCount]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	for k := 0; k < RobotCount; k++ {
		eqs := EquivalentStatesParticular(state, k)
		if len(eqs) != 6 {
			t.Fatalf("k=%d: len(EquivalentStatesParticular) = %d, want 6", k, len(eqs))
		}
		for _, eq := range eqs {
			if eq.Robots[k] != state.Robots[k] {
				t.Fatalf("k=%d: target robot moved in equivalent state %v", k, eq)
			}
		}
		assertAllDistinctRobotSets(t, state, eqs)
	}
}

// assertAllDistinctRobotSets checks that every equivalent state is a genuine
// permutation of state's robots (same set of occupied cells) and that the
// equivalence class contains no duplicate arrangement.
func assertAllDistinctRobotSets(t *testing.T, state GameState, eqs []GameState) {
	t.Helper()
	wantSet := map[Point]bool{}
	for _, p := range state.Robots {
		wantSet[p] = true
	}
	seen := map[GameState]bool{}
	for _, eq := range eqs {
		if seen[eq] {
			t.Fatalf("duplicate equivalent state %v", eq)
		}
		seen[eq] = true
		gotSet := map[Point]bool{}
		for _, p := range eq.Robots {
			gotSet[p] = true
		}
		if len(gotSet) != len(wantSet) {
			t.Fatalf("equivalent state %v does not occupy the same cell set as %v", eq, state)
		}
		for p := range gotSet {
			if !wantSet[p] {
				t.Fatalf("equivalent state %v occupies cell %v not in original %v", eq, p, state)
			}
		}
	}
}
