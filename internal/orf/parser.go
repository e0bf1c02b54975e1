package orf

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/inodb/orfmap/internal/fasta"
)

// Parser groups the peptides of a translation file by frame header.
type Parser struct {
	mode    Mode
	workers int
	logger  *zap.Logger
}

// NewParser creates a translation parser for the given mode.
func NewParser(mode Mode) *Parser {
	return &Parser{
		mode:   mode,
		logger: zap.NewNop(),
	}
}

// SetWorkers sets the number of segmentation workers (0 = NumCPU).
func (p *Parser) SetWorkers(n int) {
	p.workers = n
}

// SetLogger sets the logger for progress messages.
func (p *Parser) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Mode returns the parsing mode.
func (p *Parser) Mode() Mode {
	return p.mode
}

// ParseFile parses a translation FASTA file (plain or gzipped, "-" for stdin).
func (p *Parser) ParseFile(path string) (*FrameSet, error) {
	r, err := fasta.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return p.parse(r)
}

// Parse parses translation FASTA content from r.
func (p *Parser) Parse(r io.Reader) (*FrameSet, error) {
	fr, err := fasta.NewReaderFromReader(r)
	if err != nil {
		return nil, err
	}
	return p.parse(fr)
}

func (p *Parser) parse(r *fasta.Reader) (*FrameSet, error) {
	if _, err := ParseMode(string(p.mode)); err != nil {
		return nil, err
	}

	items := make(chan WorkItem, 64)
	var readErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			rec, err := r.Next()
			if err != nil {
				readErr = fmt.Errorf("read translation: %w", err)
				return
			}
			if rec == nil {
				return
			}
			items <- WorkItem{Seq: seq, Header: rec.Header, AA: rec.Seq}
			seq++
		}
	}()

	frames := NewFrameSet()
	results := ParallelSegment(items, p.mode, p.workers)
	if err := OrderedCollect(results, func(res WorkResult) error {
		frames.Put(res.Header, res.Spans)
		return nil
	}); err != nil {
		return nil, err
	}

	if readErr != nil {
		return nil, readErr
	}

	p.logger.Debug("parsed translations",
		zap.String("mode", p.mode.String()),
		zap.Int("frames", frames.Len()),
		zap.Int("peptides", frames.SpanCount()))

	return frames, nil
}
