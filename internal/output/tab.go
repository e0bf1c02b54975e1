// Package output provides mapped peptide output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/orfmap/internal/mapper"
)

// Columns are the tab-delimited output columns.
var Columns = []string{
	"Frame",
	"Peptide",
	"Start-End",
	"Sequence",
	"Contig",
}

// TabWriter writes mapped peptides in tab-delimited format.
type TabWriter struct {
	w *bufio.Writer
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(Columns, "\t") + "\n")
	return err
}

// Write writes a single mapped peptide.
func (tw *TabWriter) Write(mp mapper.MappedPeptide) error {
	values := []string{
		mp.Frame,
		mp.Peptide,
		FormatRange(mp.NTStart, mp.NTEnd),
		mp.Sequence,
		mp.ContigID,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// WriteFrame writes the mapped peptides of one frame in segment order.
func (tw *TabWriter) WriteFrame(f mapper.Frame) error {
	for _, mp := range f.Peptides {
		if err := tw.Write(mp); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult writes every mapped peptide of a run in frame order.
func (tw *TabWriter) WriteResult(res *mapper.Result) error {
	for _, f := range res.Frames {
		if err := tw.WriteFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// FormatRange formats a 1-based inclusive range as "start-end".
func FormatRange(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}
