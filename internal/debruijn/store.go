package debruijn

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// graphFile is the persisted schema: the k-mer length, the full node list
// and one (from, to, count) triple per directed edge. The container is a
// gob stream; iteration order in the lists is irrelevant to equality.
type graphFile struct {
	K     int
	Nodes []string
	Edges []Edge
}

// Write serializes the complete graph to w.
func (g *Graph) Write(w io.Writer) error {
	file := graphFile{
		K:     g.k,
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	}
	if err := gob.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("failed to encode graph: %v", err)
	}
	return nil
}

// Read deserializes a graph written by Write, validating the structural
// invariants as it goes. Any violation surfaces as ErrCorruptGraph: a
// corrupt file is rejected whole, never repaired into a partial graph.
func Read(r io.Reader) (*Graph, error) {
	var file graphFile
	if err := gob.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptGraph, err)
	}

	if file.K < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrCorruptGraph, file.K)
	}

	g, err := New(file.K)
	if err != nil {
		return nil, err
	}

	for _, kmer := range file.Nodes {
		if len(kmer) != file.K {
			return nil, fmt.Errorf("%w: node %q is not a %d-mer", ErrCorruptGraph, kmer, file.K)
		}
		if g.HasNode(kmer) {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrCorruptGraph, kmer)
		}
		g.addNode(kmer)
	}

	for _, e := range file.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return nil, fmt.Errorf("%w: edge %q->%q references a missing node", ErrCorruptGraph, e.From, e.To)
		}
		if !overlaps(e.From, e.To) {
			return nil, fmt.Errorf("%w: edge %q->%q endpoints do not overlap", ErrCorruptGraph, e.From, e.To)
		}
		if e.Count < 1 {
			return nil, fmt.Errorf("%w: edge %q->%q has count %d", ErrCorruptGraph, e.From, e.To, e.Count)
		}
		if g.Weight(e.From, e.To) != 0 {
			return nil, fmt.Errorf("%w: duplicate edge %q->%q", ErrCorruptGraph, e.From, e.To)
		}
		g.setEdge(e.From, e.To, e.Count)
	}

	return g, nil
}

// Save writes the graph to a file at path.
func (g *Graph) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create graph file: %v", err)
	}
	defer f.Close()

	return g.Write(f)
}

// Load reads a graph saved with Save.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %v", err)
	}
	defer f.Close()

	return Read(f)
}
