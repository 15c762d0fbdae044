package cmd

import (
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/coonet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cooccurCmd is for building co-occurrence networks from abundance tables
var cooccurCmd = &cobra.Command{
	Use:                        "cooccur [table.csv] ... [tableN.csv]",
	Short:                      "Build a co-occurrence network from OTU abundance tables",
	Run:                        coonet.CooccurCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Combine one or more OTU abundance tables (CSV, OTUs as rows and samples
as columns), compute pairwise Pearson and/or Spearman correlations
between the OTUs, and keep every pair whose correlation magnitude meets
the threshold as a network edge. Each method writes a timestamped
correlation matrix CSV and a Graphviz DOT network.`,
}

// set flags
func init() {
	cooccurCmd.Flags().StringP("method", "m", "both", "correlation method: pearson, spearman or both")
	cooccurCmd.Flags().Float64P("threshold", "t", 0.5, "minimum |correlation| for a network edge")
	cooccurCmd.Flags().IntP("num-nodes", "n", 100, "cap on rendered network nodes, 0 for no cap")
	cooccurCmd.Flags().StringP("out", "o", "", "output DOT file (stdout when omitted)")

	// Bind the parameters to viper
	viper.BindPFlag("method", cooccurCmd.Flags().Lookup("method"))
	viper.BindPFlag("threshold", cooccurCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("num-nodes", cooccurCmd.Flags().Lookup("num-nodes"))

	rootCmd.AddCommand(cooccurCmd)
}
