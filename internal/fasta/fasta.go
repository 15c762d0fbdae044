// Package fasta reads FASTA files, gzipped or plain, into ordered records.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA entry: the header line (without the leading '>')
// and the concatenated sequence lines beneath it.
type Record struct {
	ID  string
	Seq string
}

// Read parses the FASTA file at path into ordered records, decompressing
// gzip transparently. Sequence characters are kept verbatim: no case
// folding and no scrubbing of ambiguity codes, since the graph is purely
// string-driven.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file: %v", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads FASTA records from r. A gzip stream is recognized by its
// magic bytes and unwrapped first.
func Parse(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip stream: %v", err)
		}
		defer gz.Close()

		return parse(gz)
	}

	return parse(br)
}

// parse accumulates sequence lines under each '>' header
func parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024) // single-line genomes

	var (
		records []Record
		current Record
		seq     strings.Builder
		open    bool
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			if open {
				current.Seq = seq.String()
				records = append(records, current)
				seq.Reset()
			}
			current = Record{ID: strings.TrimSpace(line[1:])}
			open = true
			continue
		}

		if !open {
			return nil, fmt.Errorf("sequence data before the first FASTA header: %q", line)
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read FASTA records: %v", err)
	}

	if open {
		current.Seq = seq.String()
		records = append(records, current)
	}
	return records, nil
}

// Seqs strips the records down to their raw sequences, in file order.
func Seqs(records []Record) []string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}
	return seqs
}
