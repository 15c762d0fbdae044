// Package cooccur builds co-occurrence networks from OTU abundance tables:
// pairwise Pearson or Spearman correlation between OTU rows, then an
// undirected network keeping the pairs whose correlation magnitude clears
// a threshold.
package cooccur

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Table is a dense OTU x sample abundance matrix assembled from one or
// more CSV files. Samples missing for an OTU (because it only appeared in
// some of the files) count as zero abundance.
type Table struct {
	otus    []string // first-seen order
	samples []string // first-seen order

	abund map[string]map[string]float64 // otu -> sample -> abundance
}

// OTUs returns the row identifiers in first-seen order.
func (t *Table) OTUs() []string { return t.otus }

// NumOTUs is the number of distinct OTU rows.
func (t *Table) NumOTUs() int { return len(t.otus) }

// NumSamples is the number of distinct sample columns.
func (t *Table) NumSamples() int { return len(t.samples) }

// row materializes one OTU's abundances aligned to the combined sample
// columns, zero-filling samples the OTU was never observed in.
func (t *Table) row(otu string) []float64 {
	xs := make([]float64, len(t.samples))
	for i, sample := range t.samples {
		xs[i] = t.abund[otu][sample]
	}
	return xs
}

// LoadTables reads and combines abundance tables from one or more CSV
// files. Each file holds a header row of sample names (first cell ignored)
// and one row per OTU, first cell the OTU identifier. Sample columns from
// every file are united; an OTU appearing in several files keeps all of
// its observations.
func LoadTables(paths []string) (*Table, error) {
	t := &Table{abund: make(map[string]map[string]float64)}
	for _, path := range paths {
		if err := t.loadCSV(path); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open abundance table: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %v", path, err)
	}
	if len(rows) < 1 || len(rows[0]) < 2 {
		return fmt.Errorf("%s has no sample columns", path)
	}

	samples := rows[0][1:]
	for _, sample := range samples {
		if t.hasSample(sample) {
			return fmt.Errorf("duplicate sample %q in %s", sample, path)
		}
		t.samples = append(t.samples, sample)
	}

	seen := map[string]bool{}
	for i, row := range rows[1:] {
		if len(row) != len(samples)+1 {
			return fmt.Errorf("%s row %d has %d cells, want %d", path, i+2, len(row), len(samples)+1)
		}

		otu := row[0]
		if seen[otu] {
			return fmt.Errorf("duplicate OTU %q in %s", otu, path)
		}
		seen[otu] = true

		if t.abund[otu] == nil {
			t.otus = append(t.otus, otu)
			t.abund[otu] = make(map[string]float64, len(samples))
		}
		for j, cell := range row[1:] {
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("%s row %d: bad abundance %q: %v", path, i+2, cell, err)
			}
			t.abund[otu][samples[j]] = value
		}
	}
	return nil
}

func (t *Table) hasSample(sample string) bool {
	for _, s := range t.samples {
		if s == sample {
			return true
		}
	}
	return false
}
