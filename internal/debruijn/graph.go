// Package debruijn builds de Bruijn graphs from DNA sequences and
// extracts bounded neighborhoods around single k-mers.
package debruijn

import (
	"errors"
	"sort"
)

var (
	// ErrInvalidK is returned when a graph is requested with k < 1.
	ErrInvalidK = errors.New("debruijn: k must be at least 1")

	// ErrInvalidRadius is returned for a negative neighborhood radius.
	ErrInvalidRadius = errors.New("debruijn: radius must be non-negative")

	// ErrNodeNotFound is returned when a neighborhood center is not in the graph.
	ErrNodeNotFound = errors.New("debruijn: node not found")

	// ErrCorruptGraph is returned when a persisted graph violates the
	// structural invariants and cannot be trusted.
	ErrCorruptGraph = errors.New("debruijn: corrupt graph data")
)

// Edge is one directed adjacency between two k-mers overlapping by k-1
// characters. Count is the number of times the adjacency was observed
// across all input sequences.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// Graph is a de Bruijn graph: each node is a distinct k-mer, each directed
// edge connects two k-mers seen adjacently in a sequence. Nodes are
// value-identified by their k-mer string; repeated observations of the same
// adjacency increment a single edge's count rather than adding parallel
// edges. Self-loops are allowed (homopolymer runs).
//
// A Graph is not safe for concurrent mutation. Once built it is treated as
// read-only and any number of goroutines may query it.
type Graph struct {
	k int

	// out[from][to] and in[to][from] both hold the observation count.
	// in mirrors out so the undirected walk in Neighborhood can reach
	// predecessors without a full edge scan.
	out map[string]map[string]int
	in  map[string]map[string]int

	// nodes also holds k-mers that never gained an edge
	nodes map[string]struct{}
}

// New returns an empty graph over k-mers of length k.
func New(k int) (*Graph, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	return &Graph{
		k:     k,
		out:   make(map[string]map[string]int),
		in:    make(map[string]map[string]int),
		nodes: make(map[string]struct{}),
	}, nil
}

// K is the k-mer length shared by every node in the graph.
func (g *Graph) K() int { return g.k }

// HasNode reports whether kmer is a node of the graph.
func (g *Graph) HasNode(kmer string) bool {
	_, ok := g.nodes[kmer]
	return ok
}

// NumNodes is the number of distinct k-mers in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges is the number of distinct directed adjacencies, ignoring counts.
func (g *Graph) NumEdges() int {
	n := 0
	for _, targets := range g.out {
		n += len(targets)
	}
	return n
}

// Weight is the observation count of the from→to edge, 0 if absent.
func (g *Graph) Weight(from, to string) int {
	return g.out[from][to]
}

// Nodes returns every k-mer in the graph, sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for kmer := range g.nodes {
		nodes = append(nodes, kmer)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns every directed edge with its count, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.NumEdges())
	for from, targets := range g.out {
		for to, count := range targets {
			edges = append(edges, Edge{From: from, To: to, Count: count})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// addNode inserts kmer if new. Inserting an existing node is a no-op.
func (g *Graph) addNode(kmer string) {
	g.nodes[kmer] = struct{}{}
}

// addEdge increments the from→to count, creating the edge (and its
// endpoints) on first observation. Callers guarantee the k-1 overlap.
func (g *Graph) addEdge(from, to string) {
	g.setEdge(from, to, g.out[from][to]+1)
}

// setEdge stores an exact count for the from→to edge.
func (g *Graph) setEdge(from, to string, count int) {
	g.addNode(from)
	g.addNode(to)
	if g.out[from] == nil {
		g.out[from] = make(map[string]int)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[string]int)
	}
	g.out[from][to] = count
	g.in[to][from] = count
}

// merge folds other into g, unioning node sets and summing the counts of
// identical edges. Both graphs must share the same k.
func (g *Graph) merge(other *Graph) {
	for kmer := range other.nodes {
		g.addNode(kmer)
	}
	for from, targets := range other.out {
		for to, count := range targets {
			g.setEdge(from, to, g.out[from][to]+count)
		}
	}
}

// overlaps reports whether the k-1 suffix of from equals the k-1 prefix
// of to. With k = 1 both overlaps are empty and any pair qualifies.
func overlaps(from, to string) bool {
	return from[1:] == to[:len(to)-1]
}
