package partition

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/cyclequbo/core"
)

// minCycleLen is the shortest cycle a partition may contain.
const minCycleLen = 3

// Cycle is one closed directed walk of a partition.
// Vertices[i] is the source of Edges[i]; the last edge returns to Vertices[0].
type Cycle struct {
	Vertices []int       `json:"vertices"`
	Edges    []core.Edge `json:"edges"`
}

// Len returns the number of vertices (equivalently, edges) on the cycle.
func (c Cycle) Len() int { return len(c.Vertices) }

// Partition is the ordered list of cycles extracted from a candidate.
// Cycles appear in the order of their smallest vertex.
type Partition []Cycle

// Edges returns the edges of all cycles, cycle by cycle.
func (p Partition) Edges() []core.Edge {
	var out []core.Edge
	for _, c := range p {
		out = append(out, c.Edges...)
	}

	return out
}

// IsValid reports whether candidate partitions the vertices of reference
// into disjoint directed cycles of length ≥ 3.
func IsValid(candidate, reference []core.Edge) bool {
	_, ok := Decompose(candidate, reference)

	return ok
}

// Decompose walks candidate cycle by cycle and returns the cycles together
// with the validity verdict. On failure the partition holds the cycles
// closed before the offending walk; the walk in progress is discarded.
//
// An empty candidate against an empty reference is a valid, empty partition.
func Decompose(candidate, reference []core.Edge) (Partition, bool) {
	// 1) Vertex sets must match exactly.
	if !core.SameVertices(candidate, reference) {
		return nil, false
	}

	// 2) Index remaining edges by source and keep the remaining vertices
	//    ordered, so the next start is always the smallest one.
	w := newWalker(candidate)

	var p Partition
	for !w.vertices.Empty() {
		start := w.vertices.Left().Key.(int)
		c, ok := w.trace(start)
		if !ok {
			return p, false
		}
		w.remove(c)
		p = append(p, c)
	}

	// 3) Every edge must belong to some cycle.
	if w.edgesLeft != 0 {
		return p, false
	}

	return p, true
}

// walker holds the mutable bookkeeping of one Decompose call.
type walker struct {
	edges     []core.Edge
	bySource  map[int][]int // source vertex -> indices into edges
	outLeft   map[int]int   // remaining out-degree per vertex
	used      []bool        // edge consumed by a closed cycle
	vertices  *redblacktree.Tree
	edgesLeft int
}

func newWalker(edges []core.Edge) *walker {
	w := &walker{
		edges:     edges,
		bySource:  make(map[int][]int),
		outLeft:   make(map[int]int),
		used:      make([]bool, len(edges)),
		vertices:  redblacktree.NewWith(utils.IntComparator),
		edgesLeft: len(edges),
	}
	for i, e := range edges {
		w.bySource[e.From] = append(w.bySource[e.From], i)
		w.outLeft[e.From]++
		w.vertices.Put(e.From, struct{}{})
		w.vertices.Put(e.To, struct{}{})
	}

	return w
}

// trace follows out-edges from start until the walk returns to start.
// It fails when a vertex on the way does not have exactly one remaining
// out-edge, when the walk revisits a vertex other than start, when it runs
// out of edges before closing, or when the closed cycle is too short.
func (w *walker) trace(start int) (Cycle, bool) {
	var (
		c       Cycle
		visited = make(map[int]struct{})
		from    = start
	)
	for {
		// 1) Exactly one remaining out-edge.
		if w.outLeft[from] != 1 {
			return Cycle{}, false
		}
		e := w.edges[w.nextEdge(from)]

		c.Vertices = append(c.Vertices, from)
		c.Edges = append(c.Edges, e)
		visited[from] = struct{}{}

		// 2) Closed at start: done.
		if e.To == start {
			break
		}

		// 3) Open walk that exhausted the edges or loops back on itself.
		if _, seen := visited[e.To]; seen || len(c.Edges) == w.edgesLeft {
			return Cycle{}, false
		}
		from = e.To
	}

	if c.Len() < minCycleLen {
		return Cycle{}, false
	}

	return c, true
}

// nextEdge returns the index of the single unused out-edge of v.
// Callers ensure outLeft[v] == 1.
func (w *walker) nextEdge(v int) int {
	for _, i := range w.bySource[v] {
		if !w.used[i] {
			return i
		}
	}

	return -1 // unreachable while outLeft is consistent
}

// remove retires the vertices and edges of a closed cycle.
func (w *walker) remove(c Cycle) {
	for _, v := range c.Vertices {
		i := w.nextEdge(v)
		w.used[i] = true
		w.outLeft[v]--
		w.edgesLeft--
		w.vertices.Remove(v)
	}
}
