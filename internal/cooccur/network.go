package cooccur

import "math"

// Link is one undirected network edge between two OTUs; Weight is their
// correlation (sign preserved).
type Link struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Weight float64 `json:"weight"`
}

// Network is a co-occurrence network: every OTU is a node, and a link
// joins two OTUs whose correlation magnitude reached the threshold.
type Network struct {
	Nodes []string
	Links []Link
}

// BuildNetwork thresholds a correlation matrix into a network. Every OTU
// becomes a node even when isolated; each unordered pair contributes at
// most one link. NaN correlations (zero-variance rows) never qualify.
func BuildNetwork(m *Matrix, threshold float64) *Network {
	net := &Network{Nodes: append([]string{}, m.OTUs...)}

	for i := range m.OTUs {
		for j := i + 1; j < len(m.OTUs); j++ {
			r := m.At(i, j)
			if math.IsNaN(r) || math.Abs(r) < threshold {
				continue
			}
			net.Links = append(net.Links, Link{A: m.OTUs[i], B: m.OTUs[j], Weight: r})
		}
	}
	return net
}

// Limit caps the network at its first max nodes (by node order) and the
// links induced among them, for visualizations of large networks. A
// non-positive max or one beyond the node count returns the network as is.
func (n *Network) Limit(max int) *Network {
	if max <= 0 || max >= len(n.Nodes) {
		return n
	}

	kept := make(map[string]bool, max)
	for _, node := range n.Nodes[:max] {
		kept[node] = true
	}

	capped := &Network{Nodes: n.Nodes[:max]}
	for _, link := range n.Links {
		if kept[link.A] && kept[link.B] {
			capped.Links = append(capped.Links, link)
		}
	}
	return capped
}
