package debruijn

import (
	"errors"
	"reflect"
	"testing"
)

func Test_Graph_Neighborhood(t *testing.T) {
	g, err := Build([]string{"ATGCATGC"}, 3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		center    string
		radius    int
		wantNodes []string
		wantEdges []Edge
	}{
		{
			"radius zero is the center alone",
			"ATG", 0,
			[]string{"ATG"},
			nil,
		},
		{
			"radius one",
			"ATG", 1,
			[]string{"ATG", "CAT", "TGC"},
			[]Edge{{"ATG", "TGC", 2}, {"CAT", "ATG", 1}},
		},
		{
			"radius covers the whole cycle",
			"ATG", 2,
			[]string{"ATG", "CAT", "GCA", "TGC"},
			[]Edge{{"ATG", "TGC", 2}, {"CAT", "ATG", 1}, {"GCA", "CAT", 1}, {"TGC", "GCA", 1}},
		},
		{
			"radius beyond the graph",
			"ATG", 10,
			[]string{"ATG", "CAT", "GCA", "TGC"},
			[]Edge{{"ATG", "TGC", 2}, {"CAT", "ATG", 1}, {"GCA", "CAT", 1}, {"TGC", "GCA", 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := g.Neighborhood(tt.center, tt.radius)
			if err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(sub.Nodes, tt.wantNodes) {
				t.Errorf("Nodes = %v, want %v", sub.Nodes, tt.wantNodes)
			}
			if !reflect.DeepEqual(sub.Edges, tt.wantEdges) {
				t.Errorf("Edges = %v, want %v", sub.Edges, tt.wantEdges)
			}
			if sub.Center != tt.center || sub.Radius != tt.radius {
				t.Errorf("failed to carry center/radius: %s r=%d", sub.Center, sub.Radius)
			}
		})
	}
}

func Test_Graph_Neighborhood_errors(t *testing.T) {
	g, _ := Build([]string{"ATGC"}, 3)

	if _, err := g.Neighborhood("GGG", 1); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Neighborhood(GGG) err = %v, want ErrNodeNotFound", err)
	}
	if _, err := g.Neighborhood("ATG", -1); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Neighborhood(r=-1) err = %v, want ErrInvalidRadius", err)
	}
}

// Test that the walk ignores edge direction: a pure predecessor is
// reachable from its successor
func Test_Graph_Neighborhood_undirected(t *testing.T) {
	g, _ := Build([]string{"ATGC"}, 3) // single edge ATG->TGC

	sub, err := g.Neighborhood("TGC", 1)
	if err != nil {
		t.Fatal(err)
	}

	wantNodes := []string{"ATG", "TGC"}
	if !reflect.DeepEqual(sub.Nodes, wantNodes) {
		t.Errorf("Nodes = %v, want %v", sub.Nodes, wantNodes)
	}
	wantEdges := []Edge{{"ATG", "TGC", 1}}
	if !reflect.DeepEqual(sub.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", sub.Edges, wantEdges)
	}
}

// Test that growing the radius only ever grows the node set
func Test_Graph_Neighborhood_monotonic(t *testing.T) {
	g, err := Build([]string{"ATGCATGCATTTGCACCA", "GGATGCC"}, 3)
	if err != nil {
		t.Fatal(err)
	}

	var prev map[string]bool
	for radius := 0; radius < 8; radius++ {
		sub, err := g.Neighborhood("ATG", radius)
		if err != nil {
			t.Fatal(err)
		}

		nodes := map[string]bool{}
		for _, n := range sub.Nodes {
			nodes[n] = true
		}
		for n := range prev {
			if !nodes[n] {
				t.Errorf("radius %d lost node %q present at radius %d", radius, n, radius-1)
			}
		}
		prev = nodes
	}
}

// Test that extraction leaves the source graph untouched
func Test_Graph_Neighborhood_noMutation(t *testing.T) {
	g, _ := Build([]string{"ATGCATGC"}, 3)
	nodesBefore := g.Nodes()
	edgesBefore := g.Edges()

	if _, err := g.Neighborhood("TGC", 1); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(g.Nodes(), nodesBefore) {
		t.Error("failed to preserve the node set across extraction")
	}
	if !reflect.DeepEqual(g.Edges(), edgesBefore) {
		t.Error("failed to preserve the edge set across extraction")
	}
}
