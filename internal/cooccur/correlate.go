package cooccur

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Method selects the correlation statistic.
type Method string

const (
	// Pearson is the linear product-moment correlation.
	Pearson Method = "pearson"

	// Spearman is Pearson applied to average ranks, so it captures any
	// monotone association, not only linear ones.
	Spearman Method = "spearman"
)

// Title renders the method name for plot/graph titles.
func (m Method) Title() string {
	switch m {
	case Pearson:
		return "Pearson"
	case Spearman:
		return "Spearman"
	}
	return string(m)
}

// ParseMethods expands a CLI method argument into concrete methods.
// "both" selects Pearson then Spearman.
func ParseMethods(arg string) ([]Method, error) {
	switch Method(arg) {
	case Pearson:
		return []Method{Pearson}, nil
	case Spearman:
		return []Method{Spearman}, nil
	case "both":
		return []Method{Pearson, Spearman}, nil
	}
	return nil, fmt.Errorf("unknown correlation method %q (want pearson, spearman or both)", arg)
}

// Matrix is a symmetric OTU x OTU correlation matrix.
type Matrix struct {
	Method Method
	OTUs   []string

	vals [][]float64
}

// At is the correlation between the i-th and j-th OTU rows. Zero-variance
// rows correlate as NaN.
func (m *Matrix) At(i, j int) float64 { return m.vals[i][j] }

// Correlate computes pairwise correlations between every OTU row of the
// table under the given method.
func (t *Table) Correlate(method Method) (*Matrix, error) {
	if method != Pearson && method != Spearman {
		return nil, fmt.Errorf("unknown correlation method %q", method)
	}

	rows := make([][]float64, t.NumOTUs())
	for i, otu := range t.otus {
		rows[i] = t.row(otu)
		if method == Spearman {
			rows[i] = ranks(rows[i])
		}
	}

	n := t.NumOTUs()
	m := &Matrix{
		Method: method,
		OTUs:   append([]string{}, t.otus...),
		vals:   make([][]float64, n),
	}
	for i := range m.vals {
		m.vals[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := stat.Correlation(rows[i], rows[j], nil)
			m.vals[i][j] = r
			m.vals[j][i] = r
		}
	}
	return m, nil
}

// ranks converts xs to 1-based average ranks, sharing the mean rank
// across ties, which is what Spearman's rho expects.
func ranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	rs := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			rs[idx[k]] = avg
		}
		i = j + 1
	}
	return rs
}

// WriteCSV writes the matrix in the same shape it was read: a header row
// of OTU names and one labeled row per OTU.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{""}, m.OTUs...)); err != nil {
		return fmt.Errorf("failed to write correlation matrix: %v", err)
	}
	for i, otu := range m.OTUs {
		row := make([]string, 0, len(m.OTUs)+1)
		row = append(row, otu)
		for j := range m.OTUs {
			row = append(row, strconv.FormatFloat(m.vals[i][j], 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write correlation matrix: %v", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename is the timestamped default output name for the matrix CSV,
// ex: correlation_matrix_pearson_20260102_150405.csv
func (m *Matrix) Filename(now time.Time) string {
	return fmt.Sprintf("correlation_matrix_%s_%s.csv", m.Method, now.Format("20060102_150405"))
}
