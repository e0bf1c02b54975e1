// Package contig loads contig nucleotide sequences keyed by identifier.
package contig

import (
	"fmt"
	"io"
	"sort"

	"github.com/inodb/orfmap/internal/fasta"
)

// Table maps contig identifiers to nucleotide sequences.
// It is not modified after loading.
type Table struct {
	sequences map[string]string // contig_id -> full sequence
}

// NewTable creates a table from an existing map. The map must not be
// modified afterwards.
func NewTable(sequences map[string]string) *Table {
	if sequences == nil {
		sequences = make(map[string]string)
	}
	return &Table{sequences: sequences}
}

// Load parses a contig FASTA file (plain or gzipped, "-" for stdin).
func Load(path string) (*Table, error) {
	r, err := fasta.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return load(r)
}

// LoadReader parses contig FASTA content from r.
func LoadReader(r io.Reader) (*Table, error) {
	fr, err := fasta.NewReaderFromReader(r)
	if err != nil {
		return nil, err
	}
	return load(fr)
}

func load(r *fasta.Reader) (*Table, error) {
	sequences := make(map[string]string)
	for {
		rec, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("read contig: %w", err)
		}
		if rec == nil {
			break
		}
		// A repeated identifier starts over
		sequences[rec.ID] = rec.Seq
	}
	return &Table{sequences: sequences}, nil
}

// Get returns the sequence for a contig, or "" if it is unknown.
func (t *Table) Get(id string) string {
	return t.sequences[id]
}

// Has reports whether the contig was loaded.
func (t *Table) Has(id string) bool {
	_, ok := t.sequences[id]
	return ok
}

// Len returns the number of loaded contigs.
func (t *Table) Len() int {
	return len(t.sequences)
}

// IDs returns the sorted contig identifiers.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.sequences))
	for id := range t.sequences {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
