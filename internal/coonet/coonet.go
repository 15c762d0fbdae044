// Package coonet glues the cobra commands to the graph, FASTA, and
// co-occurrence packages: flag parsing, file handling, and progress
// output live here so the core packages stay free of CLI concerns.
package coonet

import (
	"log"
	"os"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// output opens the file at path for writing, or hands back stdout when
// path is empty. The caller must call the returned closer.
func output(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
