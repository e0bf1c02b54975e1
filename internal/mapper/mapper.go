// Package mapper projects peptide spans back onto contig nucleotide coordinates.
package mapper

import (
	"go.uber.org/zap"

	"github.com/inodb/orfmap/internal/orf"
)

// DefaultMinLength is the default minimum nucleotide length of a mapped
// sequence.
const DefaultMinLength = 25

// ContigLookup returns the nucleotide sequence of a contig, or "" if unknown.
type ContigLookup interface {
	Get(id string) string
}

// MappedPeptide is a peptide located on its source contig.
// NTStart and NTEnd are 1-based inclusive nucleotide positions.
type MappedPeptide struct {
	Frame    string
	Peptide  string
	NTStart  int
	NTEnd    int
	Sequence string
	ContigID string
}

// Frame holds the mapped peptides of one translated frame.
type Frame struct {
	Header   string
	Peptides []MappedPeptide
}

// Stats counts what happened during a mapping run.
type Stats struct {
	Frames        int
	Spans         int
	Mapped        int
	MissingContig int
	Short         int // mapped sequences still below the minimum after padding
}

// Result is the ordered output of a mapping run.
type Result struct {
	Frames []Frame
	Stats  Stats
}

// Peptides returns all mapped peptides in frame order.
func (r *Result) Peptides() []MappedPeptide {
	var out []MappedPeptide
	for _, f := range r.Frames {
		out = append(out, f.Peptides...)
	}
	return out
}

// Mapper maps peptide spans to contig coordinates.
type Mapper struct {
	contigs   ContigLookup
	minLength int
	logger    *zap.Logger
}

// New creates a mapper over the given contigs.
func New(contigs ContigLookup) *Mapper {
	return &Mapper{
		contigs:   contigs,
		minLength: DefaultMinLength,
		logger:    zap.NewNop(),
	}
}

// SetMinLength sets the minimum nucleotide length used for padding.
func (m *Mapper) SetMinLength(n int) {
	m.minLength = n
}

// SetLogger sets the logger for skipped spans and run totals.
func (m *Mapper) SetLogger(l *zap.Logger) {
	m.logger = l
}

// Map maps every span of every frame. Frames and spans keep their input
// order; spans whose contig is unknown are skipped.
func (m *Mapper) Map(frames *orf.FrameSet) *Result {
	res := &Result{Frames: make([]Frame, 0, frames.Len())}

	for _, f := range frames.Frames() {
		out := Frame{Header: f.Header}
		res.Stats.Frames++

		for _, span := range f.Spans {
			res.Stats.Spans++

			contigSeq := m.contigs.Get(span.ContigID)
			if contigSeq == "" {
				res.Stats.MissingContig++
				m.logger.Debug("contig not found",
					zap.String("contig", span.ContigID),
					zap.String("frame", f.Header))
				continue
			}

			mp := MapSpan(span, contigSeq, m.minLength)
			mp.Frame = f.Header
			if len(mp.Sequence) < m.minLength {
				res.Stats.Short++
			}
			out.Peptides = append(out.Peptides, mp)
			res.Stats.Mapped++
		}

		res.Frames = append(res.Frames, out)
	}

	if res.Stats.MissingContig > 0 {
		m.logger.Info("skipped peptides without a contig sequence",
			zap.Int("skipped", res.Stats.MissingContig),
			zap.Int("mapped", res.Stats.Mapped))
	}

	return res
}

// NucleotideRange converts 1-based amino acid positions to 1-based
// nucleotide positions. The translation is assumed to already account
// for the reading frame offset.
func NucleotideRange(aaStart, aaEnd int) (start, end int) {
	start = aaStart * 3
	if aaStart == 1 {
		start = 1
	}
	return start, aaEnd * 3
}

// MapSpan maps one span onto contigSeq. If the extracted region is shorter
// than minLength it is extended downstream with contig bases, as far as the
// contig allows. The Frame field of the result is left empty.
func MapSpan(span orf.Span, contigSeq string, minLength int) MappedPeptide {
	ntStart, ntEnd := NucleotideRange(span.Start, span.End)

	seq := substr(contigSeq, ntStart-1, ntEnd)
	if remaining := minLength - len(seq); remaining > 0 {
		seq += substr(contigSeq, ntEnd, ntEnd+remaining)
	}

	return MappedPeptide{
		Peptide:  span.Peptide,
		NTStart:  ntStart,
		NTEnd:    ntEnd,
		Sequence: seq,
		ContigID: span.ContigID,
	}
}

// substr returns s[from:to] with both bounds clamped to [0, len(s)].
func substr(s string, from, to int) string {
	from = max(0, min(from, len(s)))
	to = max(from, min(to, len(s)))
	return s[from:to]
}
