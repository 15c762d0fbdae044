package coonet

import (
	"log"

	"github.com/bnievesgdl/Co-Occurence-Networks/internal/debruijn"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/dot"
	"github.com/spf13/cobra"
)

// NeighborhoodCmd loads a saved graph, extracts the radius-bounded
// neighborhood around a center k-mer, and renders it as DOT
func NeighborhoodCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		log.Fatal("failed without an input graph file argument")
	}

	center, err := cmd.Flags().GetString("center")
	if err != nil || center == "" {
		log.Fatal("failed without a center k-mer argument")
	}

	radius, err := cmd.Flags().GetInt("radius")
	if err != nil {
		log.Fatal(err)
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		log.Fatal(err)
	}

	g, err := debruijn.Load(in)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sub, err := g.Neighborhood(center, radius)
	if err != nil {
		log.Fatalf("%v", err)
	}

	w, done, err := output(out)
	if err != nil {
		log.Fatalf("failed to create output file: %v", err)
	}
	defer done()

	if err := dot.WriteSubgraph(w, sub); err != nil {
		log.Fatalf("failed to render subgraph: %v", err)
	}

	stderr.Printf("neighborhood of %s with %d nodes and %d edges extracted.", sub.Label(), len(sub.Nodes), len(sub.Edges))
}
