package debruijn

// Kmers slides a k-wide window across seq and returns every length-k
// substring in left-to-right order. Consecutive entries overlap by k-1
// characters, which is exactly the adjacency the graph builder records.
//
// A sequence shorter than k produces no k-mers. Characters are taken
// verbatim: case is preserved and ambiguity codes like 'N' are ordinary
// symbols, not errors.
func Kmers(seq string, k int) []string {
	if k < 1 || len(seq) < k {
		return nil
	}

	kmers := make([]string, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		kmers = append(kmers, seq[i:i+k])
	}
	return kmers
}
