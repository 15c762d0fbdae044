package cmd

import (
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/coonet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd is for turning the sequences of a FASTA file into a de Bruijn graph
var buildCmd = &cobra.Command{
	Use:                        "build",
	Short:                      "Build a de Bruijn graph from a FASTA file of sequences",
	Run:                        coonet.BuildCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Build a de Bruijn graph from the sequences in a FASTA file (gzipped or
plain). Every k-mer of every sequence becomes a node and every pair of
consecutive k-mers becomes a directed edge weighted by the number of
times that adjacency was observed. The graph is saved to disk for later
neighborhood queries.`,
}

// set flags
func init() {
	buildCmd.Flags().StringP("in", "i", "", "input FASTA file with sequences, .gz accepted")
	buildCmd.Flags().StringP("out", "o", "de_bruijn_graph.gob", "output file for the serialized graph")
	buildCmd.Flags().IntP("kmer", "k", 21, "k-mer length for the graph's nodes")
	buildCmd.Flags().IntP("workers", "w", 1, "number of goroutines accumulating partial graphs")

	buildCmd.MarkFlagRequired("in")

	// Bind the parameters to viper
	viper.BindPFlag("k", buildCmd.Flags().Lookup("kmer"))
	viper.BindPFlag("workers", buildCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(buildCmd)
}
