package debruijn

import (
	"fmt"
	"sort"
)

// Subgraph is the bounded neighborhood around a center k-mer: every node
// within radius hops of the center, ignoring edge direction, plus every
// directed edge of the source graph whose endpoints both made it into the
// node set. Counts are carried over unchanged. A Subgraph is a transient
// query result and is never persisted.
type Subgraph struct {
	Center string
	Radius int

	Nodes []string // sorted
	Edges []Edge   // sorted by (From, To)
}

// Label is the descriptive string handed to visualization consumers.
func (s *Subgraph) Label() string {
	return fmt.Sprintf("%s r=%d", s.Center, s.Radius)
}

// Neighborhood extracts the subgraph within radius hops of center. The
// walk is breadth-first over the undirected view of the graph, so a node
// is included when its shortest hop-distance from center is at most
// radius; radius 0 yields the center alone. The source graph is not
// modified.
func (g *Graph) Neighborhood(center string, radius int) (*Subgraph, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}
	if !g.HasNode(center) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, center)
	}

	type item struct {
		kmer  string
		depth int
	}

	visited := map[string]bool{center: true}
	queue := []item{{center, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth == radius {
			continue
		}
		for _, next := range g.neighbors(cur.kmer) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, item{next, cur.depth + 1})
			}
		}
	}

	sub := &Subgraph{
		Center: center,
		Radius: radius,
		Nodes:  make([]string, 0, len(visited)),
	}
	for kmer := range visited {
		sub.Nodes = append(sub.Nodes, kmer)
	}
	sort.Strings(sub.Nodes)

	// induced edges: both endpoints inside the node set
	for _, from := range sub.Nodes {
		for to, count := range g.out[from] {
			if visited[to] {
				sub.Edges = append(sub.Edges, Edge{From: from, To: to, Count: count})
			}
		}
	}
	sort.Slice(sub.Edges, func(i, j int) bool {
		if sub.Edges[i].From != sub.Edges[j].From {
			return sub.Edges[i].From < sub.Edges[j].From
		}
		return sub.Edges[i].To < sub.Edges[j].To
	})

	return sub, nil
}

// neighbors returns the out- and in-neighbors of kmer, deduplicated.
func (g *Graph) neighbors(kmer string) []string {
	next := make([]string, 0, len(g.out[kmer])+len(g.in[kmer]))
	for to := range g.out[kmer] {
		next = append(next, to)
	}
	for from := range g.in[kmer] {
		if _, both := g.out[kmer][from]; !both {
			next = append(next, from)
		}
	}
	return next
}
