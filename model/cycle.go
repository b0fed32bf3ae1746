// SPDX-License-Identifier: MIT

package model

import (
	"sort"
	"strings"
)

// Visitation colours for the cycle search.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// DetectCycles reports the directed cycles reachable through back edges of
// a depth-first search over g (vertices in declaration order, edges in path
// order). Each cycle is closed ([A, B, A]) and rotated so that its smallest
// name comes first; duplicates are dropped and the result is sorted.
//
// A self-loop A → A is reported as [A, A]. A nil graph has no cycles.
//
// Complexity:
//   - Time O(V + E + C·L), Space O(V + L_max).
func DetectCycles(g *Graph) [][]string {
	if g == nil {
		return nil
	}
	state := make(map[string]int, len(g.vertices))
	stack := make([]string, 0, len(g.vertices))
	seen := make(map[string]struct{})
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		state[id] = gray
		stack = append(stack, id)
		for _, p := range g.out[id] {
			switch state[p.To] {
			case white:
				visit(p.To)
			case gray:
				at := indexOf(stack, p.To)
				closed := append(append([]string(nil), stack[at:]...), p.To)
				canon := canonicalRotation(closed)
				sig := strings.Join(canon, ",")
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					cycles = append(cycles, canon)
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = black
	}

	for _, v := range g.vertices {
		if state[v] == white {
			visit(v)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})
	return cycles
}

// canonicalRotation rotates a closed cycle [v0 … vk v0] so the smallest
// rotation comes first, keeping direction. Cycles are short, so the
// quadratic scan is fine.
func canonicalRotation(closed []string) []string {
	base := closed[:len(closed)-1]
	n := len(base)
	best := 0
	for s := 1; s < n; s++ {
		for k := 0; k < n; k++ {
			a, b := base[(s+k)%n], base[(best+k)%n]
			if a != b {
				if a < b {
					best = s
				}
				break
			}
		}
	}
	out := make([]string, 0, n+1)
	for k := 0; k < n; k++ {
		out = append(out, base[(best+k)%n])
	}
	return append(out, out[0])
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
