package orf

// Frame holds the peptide spans extracted from one translated frame.
type Frame struct {
	Header string
	Spans  []Span
}

// FrameSet is an ordered collection of frames keyed by header.
// Frames keep the order in which their header was first seen.
type FrameSet struct {
	frames []Frame
	index  map[string]int // header -> position in frames
}

// NewFrameSet creates an empty frame set.
func NewFrameSet() *FrameSet {
	return &FrameSet{index: make(map[string]int)}
}

// Put stores the spans for a header. A header seen before has its spans
// replaced but keeps its position.
func (fs *FrameSet) Put(header string, spans []Span) {
	if i, ok := fs.index[header]; ok {
		fs.frames[i].Spans = spans
		return
	}
	fs.index[header] = len(fs.frames)
	fs.frames = append(fs.frames, Frame{Header: header, Spans: spans})
}

// Get returns the spans for a header.
func (fs *FrameSet) Get(header string) ([]Span, bool) {
	i, ok := fs.index[header]
	if !ok {
		return nil, false
	}
	return fs.frames[i].Spans, true
}

// Frames returns the frames in order. The slice must not be modified.
func (fs *FrameSet) Frames() []Frame {
	return fs.frames
}

// Len returns the number of frames.
func (fs *FrameSet) Len() int {
	return len(fs.frames)
}

// SpanCount returns the total number of spans across all frames.
func (fs *FrameSet) SpanCount() int {
	n := 0
	for _, f := range fs.frames {
		n += len(f.Spans)
	}
	return n
}
