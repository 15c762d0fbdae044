package cmd

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnievesgdl/Co-Occurence-Networks/internal/coonet"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/debruijn"
	"github.com/spf13/viper"
)

// end to end: build a graph from the FASTA fixture, save it, then
// extract and render a neighborhood from the saved file
func Test_buildExec(t *testing.T) {
	in, _ := filepath.Abs(path.Join("..", "test", "reads.fasta.gz"))
	out := filepath.Join(t.TempDir(), "graph.gob")

	viper.Set("k", 3)
	viper.Set("workers", 2)
	defer viper.Reset()

	buildCmd.Flags().Set("in", in)
	buildCmd.Flags().Set("out", out)
	coonet.BuildCmd(buildCmd, []string{})

	g, err := debruijn.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if w := g.Weight("ATG", "TGC"); w != 2 {
		t.Errorf("Weight(ATG, TGC) = %d, want 2", w)
	}

	dotOut := filepath.Join(t.TempDir(), "sub.dot")
	neighborhoodCmd.Flags().Set("in", out)
	neighborhoodCmd.Flags().Set("center", "ATG")
	neighborhoodCmd.Flags().Set("radius", "1")
	neighborhoodCmd.Flags().Set("out", dotOut)
	coonet.NeighborhoodCmd(neighborhoodCmd, []string{})

	rendered, err := os.ReadFile(dotOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rendered), `"ATG" -> "TGC" [label="2"];`) {
		t.Errorf("failed to render the neighborhood, got:\n%s", rendered)
	}
}
