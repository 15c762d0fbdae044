package cmd

import (
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/coonet"
	"github.com/spf13/cobra"
)

// neighborhoodCmd is for extracting the local subgraph around one k-mer
var neighborhoodCmd = &cobra.Command{
	Use:                        "neighborhood",
	Short:                      "Extract the neighborhood of a k-mer from a saved graph",
	Run:                        coonet.NeighborhoodCmd,
	Aliases:                    []string{"subgraph"},
	SuggestionsMinimumDistance: 2,
	Long: `
Load a graph saved by 'coonet build' and extract every node within a
hop-radius of a center k-mer, ignoring edge direction. The induced
subgraph is written as Graphviz DOT for rendering with dot/neato.`,
}

// set flags
func init() {
	neighborhoodCmd.Flags().StringP("in", "i", "de_bruijn_graph.gob", "input file with a serialized graph")
	neighborhoodCmd.Flags().StringP("center", "c", "", "k-mer at the center of the neighborhood")
	neighborhoodCmd.Flags().IntP("radius", "r", 2, "maximum hop-distance from the center")
	neighborhoodCmd.Flags().StringP("out", "o", "", "output DOT file (stdout when omitted)")

	neighborhoodCmd.MarkFlagRequired("center")

	rootCmd.AddCommand(neighborhoodCmd)
}
