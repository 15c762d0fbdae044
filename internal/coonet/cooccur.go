package coonet

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnievesgdl/Co-Occurence-Networks/config"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/cooccur"
	"github.com/bnievesgdl/Co-Occurence-Networks/internal/dot"
	"github.com/spf13/cobra"
)

// CooccurCmd builds co-occurrence networks from one or more abundance
// tables: one correlation matrix CSV and one DOT network per method
func CooccurCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		log.Fatal("failed without abundance table arguments")
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		log.Fatal(err)
	}

	conf := config.New()

	methods, err := cooccur.ParseMethods(conf.Method)
	if err != nil {
		log.Fatalf("%v", err)
	}

	table, err := cooccur.LoadTables(args)
	if err != nil {
		log.Fatalf("%v", err)
	}
	stderr.Printf("loaded data with %d OTUs and %d samples.", table.NumOTUs(), table.NumSamples())

	for _, method := range methods {
		if err := execCooccur(table, method, conf.Threshold, conf.NumNodes, methodPath(out, method, len(methods) > 1)); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// execCooccur correlates the table under one method, writes the
// timestamped matrix CSV, and renders the thresholded network as DOT
func execCooccur(table *cooccur.Table, method cooccur.Method, threshold float64, numNodes int, out string) error {
	matrix, err := table.Correlate(method)
	if err != nil {
		return err
	}

	matrixPath := matrix.Filename(time.Now())
	mf, err := os.Create(matrixPath)
	if err != nil {
		return fmt.Errorf("failed to create matrix file: %v", err)
	}
	if err := matrix.WriteCSV(mf); err != nil {
		mf.Close()
		return err
	}
	mf.Close()
	stderr.Printf("wrote %s correlation matrix to %s", method, matrixPath)

	net := cooccur.BuildNetwork(matrix, threshold)
	if numNodes > 0 {
		net = net.Limit(numNodes)
	}

	w, done, err := output(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer done()

	title := fmt.Sprintf("Co-occurrence Network (%s Correlation)", method.Title())
	if err := dot.WriteNetwork(w, net, title); err != nil {
		return fmt.Errorf("failed to render network: %v", err)
	}

	stderr.Printf("co-occurrence network using %s correlation with %d nodes and %d edges created.", method, len(net.Nodes), len(net.Links))
	return nil
}

// methodPath derives a per-method output name when several methods write
// files, ex: network.dot -> network_pearson.dot
func methodPath(out string, method cooccur.Method, multi bool) string {
	if out == "" || !multi {
		return out
	}

	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(out, ext), method, ext)
}
