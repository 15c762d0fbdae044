package coonet

import (
	"errors"
	"path"
	"testing"

	"github.com/bnievesgdl/Co-Occurence-Networks/internal/cooccur"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/debruijn"
)

// Test building a graph straight from the gzipped FASTA fixture
func Test_execBuild(t *testing.T) {
	in := path.Join("..", "..", "test", "reads.fasta.gz")

	g, err := execBuild(in, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	// read_1 is ATGCATGC: the canonical 4-node cycle
	if w := g.Weight("ATG", "TGC"); w != 2 {
		t.Errorf("Weight(ATG, TGC) = %d, want 2", w)
	}
	// read_2 crosses the lowercase run: GGGTTTnnnTTT
	if !g.HasNode("Tnn") {
		t.Error("failed to keep ambiguity codes as ordinary symbols")
	}
	// read_3 (AT) is shorter than k and contributes nothing
	if g.HasNode("AT") {
		t.Error("failed to skip a sequence shorter than k")
	}
}

func Test_execBuild_badInput(t *testing.T) {
	if _, err := execBuild(path.Join("..", "..", "test", "nope.fasta"), 3, 1); err == nil {
		t.Error("failed to surface a missing input file")
	}

	_, err := execBuild(path.Join("..", "..", "test", "reads.fasta"), 0, 1)
	if !errors.Is(err, debruijn.ErrInvalidK) {
		t.Errorf("execBuild(k=0) err = %v, want ErrInvalidK", err)
	}
}

func Test_methodPath(t *testing.T) {
	type args struct {
		out    string
		method cooccur.Method
		multi  bool
	}

	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"stdout stays stdout",
			args{"", cooccur.Pearson, true},
			"",
		},
		{
			"single method keeps the name",
			args{"network.dot", cooccur.Spearman, false},
			"network.dot",
		},
		{
			"multiple methods get a suffix",
			args{"network.dot", cooccur.Pearson, true},
			"network_pearson.dot",
		},
		{
			"no extension",
			args{"network", cooccur.Spearman, true},
			"network_spearman",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := methodPath(tt.args.out, tt.args.method, tt.args.multi); got != tt.want {
				t.Errorf("methodPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
