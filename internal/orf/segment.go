// Package orf extracts candidate ORF peptides from translated reading frames.
package orf

import "strings"

// Translation markers.
const (
	StopMarker  = '*'
	StartMarker = 'M'
)

// Span is a peptide located in a translated frame.
// Start and End are 1-based inclusive amino acid positions.
type Span struct {
	Peptide  string
	Start    int
	End      int
	ContigID string
}

// Len returns the peptide length.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

type scanState int

const (
	stateBeforeFirstStop scanState = iota
	stateScanningForStart
	stateInsidePeptide
)

// Segment splits an amino acid sequence into peptide spans.
//
// The peptide before the first stop is always reported when non-empty.
// In ModeAll, every peptide that begins at an M after the first stop and
// runs to the next stop (or the end of the sequence) is reported too.
// The walk is a single forward pass: an M inside an open peptide does not
// start another one. The returned spans have no ContigID.
func Segment(seq string, mode Mode) []Span {
	var spans []Span

	state := stateBeforeFirstStop
	start := 0 // 0-based start of the open peptide

	emit := func(end int) {
		if end > start {
			spans = append(spans, Span{
				Peptide: seq[start:end],
				Start:   start + 1,
				End:     end,
			})
		}
	}

	for i := 0; i < len(seq); i++ {
		c := seq[i]
		switch state {
		case stateBeforeFirstStop:
			if c != StopMarker {
				continue
			}
			emit(i)
			if mode == ModeBeforeStop {
				return spans
			}
			state = stateScanningForStart
		case stateScanningForStart:
			if c == StartMarker {
				start = i
				state = stateInsidePeptide
			}
		case stateInsidePeptide:
			if c == StopMarker {
				emit(i)
				state = stateScanningForStart
			}
		}
	}

	// End of sequence closes whatever is open.
	if state != stateScanningForStart {
		emit(len(seq))
	}

	return spans
}

// NormalizeContigID recovers the base contig identifier from a translated
// frame header. It strips a leading '>', then everything from the first
// "_frame", then everything from the first "_pep".
//
//	>AAAA_posSeq_frame1_pep -> AAAA_posSeq
//	>AAAA_negSeq_frame2     -> AAAA_negSeq
//	>AAAA_posSeq_pep        -> AAAA_posSeq
func NormalizeContigID(header string) string {
	id := strings.TrimPrefix(header, ">")
	if i := strings.Index(id, "_frame"); i >= 0 {
		id = id[:i]
	}
	if i := strings.Index(id, "_pep"); i >= 0 {
		id = id[:i]
	}
	return id
}
