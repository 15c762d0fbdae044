// Package dot renders graphs as Graphviz DOT text. It is the
// visualization consumer of the core: it receives finished subgraph and
// network values and only formats them, leaving layout to dot/neato.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnievesgdl/Co-Occurence-Networks/internal/cooccur"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/debruijn"
)

// WriteSubgraph renders a de Bruijn neighborhood as a directed DOT graph.
// Edge labels carry the observation counts and the graph label names the
// center and radius. Nodes and edges are emitted in their (sorted) slice
// order, so output is deterministic.
func WriteSubgraph(w io.Writer, sub *debruijn.Subgraph) error {
	var b strings.Builder

	b.WriteString("digraph debruijn {\n")
	fmt.Fprintf(&b, "\tlabel=%q;\n", sub.Label())
	b.WriteString("\tnode [shape=box fontname=\"monospace\"];\n")
	for _, kmer := range sub.Nodes {
		fmt.Fprintf(&b, "\t%q;\n", kmer)
	}
	for _, e := range sub.Edges {
		fmt.Fprintf(&b, "\t%q -> %q [label=\"%d\"];\n", e.From, e.To, e.Count)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteNetwork renders a co-occurrence network as an undirected DOT
// graph, edge labels carrying the correlations to two decimals.
func WriteNetwork(w io.Writer, net *cooccur.Network, title string) error {
	var b strings.Builder

	b.WriteString("graph cooccurrence {\n")
	fmt.Fprintf(&b, "\tlabel=%q;\n", title)
	b.WriteString("\tnode [shape=circle];\n")
	for _, otu := range net.Nodes {
		fmt.Fprintf(&b, "\t%q;\n", otu)
	}
	for _, link := range net.Links {
		fmt.Fprintf(&b, "\t%q -- %q [label=\"%.2f\"];\n", link.A, link.B, link.Weight)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
