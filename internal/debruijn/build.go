package debruijn

import "sync"

// Build constructs a de Bruijn graph over k-mers of length k from every
// sequence in seqs. Sequences shorter than k contribute nothing; a
// sequence with exactly one k-mer contributes a node but no edges.
func Build(seqs []string, k int) (*Graph, error) {
	g, err := New(k)
	if err != nil {
		return nil, err
	}
	for _, seq := range seqs {
		g.AddSequence(seq)
	}
	return g, nil
}

// AddSequence accumulates one sequence into the graph: every k-mer becomes
// a node and every consecutive k-mer pair becomes (or increments) a
// directed edge. The k-1 overlap between consecutive window positions
// holds by construction.
func (g *Graph) AddSequence(seq string) {
	kmers := Kmers(seq, g.k)
	for i, kmer := range kmers {
		g.addNode(kmer)
		if i > 0 {
			g.addEdge(kmers[i-1], kmer)
		}
	}
}

// BuildParallel builds the same graph as Build, partitioning seqs across
// workers. Each worker accumulates a private graph with no shared state;
// the partial graphs are then merged one at a time, summing the counts of
// identical edges, so no partially merged graph is ever visible.
func BuildParallel(seqs []string, k, workers int) (*Graph, error) {
	if workers < 2 || len(seqs) < 2 {
		return Build(seqs, k)
	}

	g, err := New(k)
	if err != nil {
		return nil, err
	}

	chunk := (len(seqs) + workers - 1) / workers
	parts := make(chan *Graph, workers)

	var wg sync.WaitGroup
	for start := 0; start < len(seqs); start += chunk {
		end := start + chunk
		if end > len(seqs) {
			end = len(seqs)
		}

		wg.Add(1)
		go func(batch []string) {
			defer wg.Done()

			part, _ := New(k) // k validated above
			for _, seq := range batch {
				part.AddSequence(seq)
			}
			parts <- part
		}(seqs[start:end])
	}

	go func() {
		wg.Wait()
		close(parts)
	}()

	// single sequential reduction
	for part := range parts {
		g.merge(part)
	}
	return g, nil
}
