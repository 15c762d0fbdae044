package coonet

import (
	"fmt"
	"log"

	"github.com/bnievesgdl/Co-Occurence-Networks/config"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/debruijn"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/fasta"
	"github.com/spf13/cobra"
)

// BuildCmd builds a de Bruijn graph from the sequences in a (possibly
// gzipped) FASTA file and saves it to disk
func BuildCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		log.Fatal("failed without an input FASTA file argument")
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		log.Fatal(err)
	}

	conf := config.New()

	g, err := execBuild(in, conf.K, conf.Workers)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := g.Save(out); err != nil {
		log.Fatalf("failed to save graph to %s: %v", out, err)
	}

	stderr.Printf("de Bruijn graph with %d nodes and %d edges created.", g.NumNodes(), g.NumEdges())
	stderr.Printf("saved to %s", out)
}

// execBuild reads the FASTA records at in and accumulates them into a
// k-mer graph, fanning out across workers when more than one is requested
func execBuild(in string, k, workers int) (*debruijn.Graph, error) {
	records, err := fasta.Read(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequences: %v", err)
	}

	return debruijn.BuildParallel(fasta.Seqs(records), k, workers)
}
