// Package fasta provides a FASTA-style record reader shared by the contig
// and translation loaders.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel marks a header line.
const Sentinel = ">"

// Record is a single FASTA entry.
type Record struct {
	Header string // trimmed header line, sentinel retained
	ID     string // header with sentinel stripped and trimmed
	Seq    string // concatenated sequence lines
}

// Reader reads FASTA records from a file or stream.
type Reader struct {
	scanner    *bufio.Scanner
	file       *os.File
	gzipReader *gzip.Reader

	pending    string // header read ahead of the next record
	hasPending bool
	done       bool
	lineNumber int
}

// NewReader opens a FASTA file. Gzipped input is detected by its magic
// bytes. A path of "-" reads from stdin.
func NewReader(path string) (*Reader, error) {
	if path == "-" {
		return NewReaderFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta file: %w", err)
	}

	r, err := newReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file
	return r, nil
}

// NewReaderFromReader creates a reader from an io.Reader (e.g., stdin).
func NewReaderFromReader(in io.Reader) (*Reader, error) {
	return newReader(in)
}

func newReader(in io.Reader) (*Reader, error) {
	br := bufio.NewReader(in)
	r := &Reader{}

	// Check for gzip magic number (0x1f, 0x8b)
	var src io.Reader = br
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r.gzipReader = gz
		src = gz
	}

	r.scanner = bufio.NewScanner(src)
	// Contigs are often written on a single line
	buf := make([]byte, 0, 64*1024)
	r.scanner.Buffer(buf, 10*1024*1024) // 10MB max line

	return r, nil
}

// Next returns the next record, or nil at end of input.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, nil
	}

	header, ok := r.pending, r.hasPending
	r.hasPending = false

	// Find the first header; sequence lines without one are dropped.
	for !ok {
		line, more, err := r.nextLine()
		if err != nil {
			return nil, err
		}
		if !more {
			r.done = true
			return nil, nil
		}
		if strings.HasPrefix(line, Sentinel) {
			header, ok = line, true
		}
	}

	var seq strings.Builder
	for {
		line, more, err := r.nextLine()
		if err != nil {
			return nil, err
		}
		if !more {
			r.done = true
			break
		}
		if strings.HasPrefix(line, Sentinel) {
			r.pending, r.hasPending = line, true
			break
		}
		seq.WriteString(line)
	}

	return &Record{
		Header: header,
		ID:     strings.TrimSpace(strings.TrimPrefix(header, Sentinel)),
		Seq:    seq.String(),
	}, nil
}

// nextLine returns the next non-blank trimmed line.
func (r *Reader) nextLine() (string, bool, error) {
	for r.scanner.Scan() {
		r.lineNumber++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		return line, true, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", false, fmt.Errorf("scan fasta line %d: %w", r.lineNumber+1, err)
	}
	return "", false, nil
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}

// LineNumber returns the number of lines consumed so far.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Close closes the underlying file and gzip reader, if any.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
