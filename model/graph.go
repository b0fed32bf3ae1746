// SPDX-License-Identifier: MIT

package model

// Graph is a read-only directed view of a model's path list over construct
// names. Vertices keep declaration order; adjacency lists keep path order,
// so every traversal is deterministic.
//
// Parallel paths (the same From → To twice) are kept as separate edges;
// lookups that need a single coefficient use the last declaration.
type Graph struct {
	vertices []string
	index    map[string]int
	out      map[string][]Path // outbound edges per vertex, path order
	in       map[string][]Path // inbound edges per vertex, path order
	paths    []Path
}

// Chain is a two-hop path From → Mediator → To with To != From.
type Chain struct {
	From, Mediator, To string
	First, Second      Path
}

// NewGraph builds the path graph of m.
//
// Errors:
//   - ErrUnknownConstruct (wrapped, naming the construct) when a path
//     endpoint is not declared.
//
// Complexity: O(V + E).
func NewGraph(m *Model) (*Graph, error) {
	if err := m.CheckPaths(); err != nil {
		return nil, err
	}
	g := &Graph{
		vertices: m.ConstructNames(),
		index:    m.Index(),
		out:      make(map[string][]Path, len(m.Constructs)),
		in:       make(map[string][]Path, len(m.Constructs)),
		paths:    append([]Path(nil), m.Paths...),
	}
	for _, p := range m.Paths {
		g.out[p.From] = append(g.out[p.From], p)
		g.in[p.To] = append(g.in[p.To], p)
	}
	return g, nil
}

// Vertices returns construct names in declaration order.
func (g *Graph) Vertices() []string { return append([]string(nil), g.vertices...) }

// Paths returns the edges in input order.
func (g *Graph) Paths() []Path { return append([]Path(nil), g.paths...) }

// Successors returns the outbound paths of name in input order.
func (g *Graph) Successors(name string) []Path { return g.out[name] }

// Predecessors returns the distinct sources of paths into name, in path order.
func (g *Graph) Predecessors(name string) []string {
	seen := make(map[string]struct{}, len(g.in[name]))
	var out []string
	for _, p := range g.in[name] {
		if _, dup := seen[p.From]; dup {
			continue
		}
		seen[p.From] = struct{}{}
		out = append(out, p.From)
	}
	return out
}

// Edge returns the last declared path from → to.
func (g *Graph) Edge(from, to string) (Path, bool) {
	var (
		found Path
		ok    bool
	)
	for _, p := range g.out[from] {
		if p.To == to {
			found, ok = p, true
		}
	}
	return found, ok
}

// AnySignificantEdge reports whether some path from → to is flagged significant.
func (g *Graph) AnySignificantEdge(from, to string) bool {
	for _, p := range g.out[from] {
		if p.To == to && p.Significant {
			return true
		}
	}
	return false
}

// Chains enumerates every two-hop chain A → B → C with C != A. Outer order
// is the input order of the first hop, inner order the input order of B's
// outbound paths.
//
// Complexity: O(E · max outdegree).
func (g *Graph) Chains() []Chain {
	var out []Chain
	for _, first := range g.paths {
		for _, second := range g.out[first.To] {
			if second.To == first.From {
				continue
			}
			out = append(out, Chain{
				From: first.From, Mediator: first.To, To: second.To,
				First: first, Second: second,
			})
		}
	}
	return out
}

// InPaths returns the constructs that appear as an endpoint of some path,
// in declaration order.
func (g *Graph) InPaths() []string {
	var out []string
	for _, v := range g.vertices {
		if len(g.out[v]) > 0 || len(g.in[v]) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// Endogenous returns the constructs with at least one inbound path, in
// declaration order.
func (g *Graph) Endogenous() []string {
	var out []string
	for _, v := range g.vertices {
		if len(g.in[v]) > 0 {
			out = append(out, v)
		}
	}
	return out
}
