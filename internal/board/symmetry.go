package board

// Symmetry reduction: non-target robots are interchangeable, so states that
// differ only by a permutation of those robots are equivalent. The swap
// sequence that enumerates every permutation of n elements from the
// identity, each reachable from the previous by one adjacent transposition,
// comes from the Steinhaus-Johnson-Trotter algorithm.

// permutationSwaps returns n!-1 positions such that, starting from the
// identity permutation of {0,...,n-1}, successively swapping the elements at
// (pos, pos+1) for each returned pos visits every permutation of n elements
// exactly once.
func permutationSwaps(n int) []int {
	perms := permutations(n)
	swaps := make([]int, 0, len(perms)-1)
	for i := 0; i < len(perms)-1; i++ {
		for pos := 0; pos < len(perms[i]); pos++ {
			if perms[i][pos] != perms[i+1][pos] {
				swaps = append(swaps, pos)
				break
			}
		}
	}
	return swaps
}

// permutations returns every permutation of {0,...,n-1}, built by inserting
// n-1 into every position of each permutation of {0,...,n-2}, reversing the
// insertion direction on alternating parent permutations. This ordering is
// what gives permutationSwaps its single-adjacent-swap property.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	sub := permutations(n - 1)
	out := make([][]int, 0, len(sub)*n)
	for i, s := range sub {
		if i%2 == 1 {
			for pos := 0; pos < n; pos++ {
				out = append(out, insertAt(s, pos, n-1))
			}
		} else {
			for pos := n - 1; pos >= 0; pos-- {
				out = append(out, insertAt(s, pos, n-1))
			}
		}
	}
	return out
}

func insertAt(s []int, pos, value int) []int {
	out := make([]int, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, value)
	out = append(out, s[pos:]...)
	return out
}

// swaps3 and swaps4 are the process-wide read-only permutation-swap caches
// for three and four elements: a pure, cheap function of n computed once at
// package init rather than recomputed on every call.
var (
	swaps3 = permutationSwaps(3)
	swaps4 = permutationSwaps(4)
)

// EquivalentStatesAny returns the full equivalence class of state under
// permutation of all four robots (24 states, including state itself),
// applicable when the goal type is Any.
func EquivalentStatesAny(state GameState) []GameState {
	out := make([]GameState, 0, 24)
	cur := state.Robots
	out = append(out, GameState{Robots: cur})
	for _, pos := range swaps4 {
		cur[pos], cur[pos+1] = cur[pos+1], cur[pos]
		out = append(out, GameState{Robots: cur})
	}
	return out
}

// EquivalentStatesParticular returns the full equivalence class of state
// under permutation of the three robots other than k (6 states, including
// state itself), applicable when the goal type is Particular(k). The swap
// positions from swaps3 (computed over indices 0,1,2) are re-indexed to skip
// position k.
func EquivalentStatesParticular(state GameState, k int) []GameState {
	others := make([]int, 0, RobotCount-1)
	for i := 0; i < RobotCount; i++ {
		if i != k {
			others = append(others, i)
		}
	}

	out := make([]GameState, 0, 6)
	cur := state.Robots
	out = append(out, GameState{Robots: cur})
	for _, pos := range swaps3 {
		i, j := others[pos], others[pos+1]
		cur[i], cur[j] = cur[j], cur[i]
		out = append(out, GameState{Robots: cur})
	}
	return out
}
