package orf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		mode Mode
		want []Span
	}{
		{
			name: "all mode two peptides",
			seq:  "MKV*MAD*",
			mode: ModeAll,
			want: []Span{{Peptide: "MKV", Start: 1, End: 3}, {Peptide: "MAD", Start: 5, End: 7}},
		},
		{
			name: "before_stop keeps first peptide",
			seq:  "MKV*MAD*",
			mode: ModeBeforeStop,
			want: []Span{{Peptide: "MKV", Start: 1, End: 3}},
		},
		{
			name: "no stop before_stop",
			seq:  "ACDEFG",
			mode: ModeBeforeStop,
			want: []Span{{Peptide: "ACDEFG", Start: 1, End: 6}},
		},
		{
			name: "no stop all",
			seq:  "ACDMFG",
			mode: ModeAll,
			want: []Span{{Peptide: "ACDMFG", Start: 1, End: 6}},
		},
		{
			name: "leading stop before_stop",
			seq:  "*MKV",
			mode: ModeBeforeStop,
			want: nil,
		},
		{
			name: "leading stop all",
			seq:  "*MKV",
			mode: ModeAll,
			want: []Span{{Peptide: "MKV", Start: 2, End: 4}},
		},
		{
			name: "post-stop peptide runs to end",
			seq:  "AB*CDMEF",
			mode: ModeAll,
			want: []Span{{Peptide: "AB", Start: 1, End: 2}, {Peptide: "MEF", Start: 6, End: 8}},
		},
		{
			name: "residues before M after stop are skipped",
			seq:  "K*AAMQ*RR*",
			mode: ModeAll,
			want: []Span{{Peptide: "K", Start: 1, End: 1}, {Peptide: "MQ", Start: 5, End: 6}},
		},
		{
			name: "M inside open peptide is not a new start",
			seq:  "*MAMBM*",
			mode: ModeAll,
			want: []Span{{Peptide: "MAMBM", Start: 2, End: 6}},
		},
		{
			name: "consecutive stops emit nothing",
			seq:  "MK***M**",
			mode: ModeAll,
			want: []Span{{Peptide: "MK", Start: 1, End: 2}, {Peptide: "M", Start: 6, End: 6}},
		},
		{
			name: "only stops",
			seq:  "****",
			mode: ModeAll,
			want: nil,
		},
		{
			name: "empty sequence",
			seq:  "",
			mode: ModeAll,
			want: nil,
		},
		{
			name: "lowercase m is not a start",
			seq:  "*mk*MK",
			mode: ModeAll,
			want: []Span{{Peptide: "MK", Start: 5, End: 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.seq, tt.mode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegment_Invariants(t *testing.T) {
	seqs := []string{
		"MKV*MAD*",
		"*M*M*M",
		"MMMM",
		"**MA*",
		"QWERTY*ASDMFGH*ZXCM",
		strings.Repeat("AM*", 20),
		"M",
		"*",
	}

	for _, seq := range seqs {
		for _, mode := range []Mode{ModeAll, ModeBeforeStop} {
			for _, s := range Segment(seq, mode) {
				assert.NotEmpty(t, s.Peptide, "seq %q", seq)
				assert.LessOrEqual(t, s.Start, s.End, "seq %q", seq)
				assert.Equal(t, len(s.Peptide), s.Len(), "seq %q span %+v", seq, s)
				// The span locates the peptide in the sequence
				assert.Equal(t, s.Peptide, seq[s.Start-1:s.End], "seq %q", seq)
				assert.NotContains(t, s.Peptide, "*")
			}
		}
	}
}

func TestSegment_BeforeStopIsPrefixOfAll(t *testing.T) {
	seqs := []string{"MKV*MAD*", "ABC", "*MA", "A*B*MC"}
	for _, seq := range seqs {
		before := Segment(seq, ModeBeforeStop)
		all := Segment(seq, ModeAll)
		if len(before) == 0 {
			continue
		}
		assert.Len(t, before, 1)
		assert.Equal(t, before[0], all[0], "seq %q", seq)
	}
}

func TestNormalizeContigID(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{">AAAA_posSeq_frame1_pep", "AAAA_posSeq"},
		{">AAAA_negSeq_frame2", "AAAA_negSeq"},
		{">AAAA_posSeq_pep", "AAAA_posSeq"},
		{"AAAA_posSeq_frame3", "AAAA_posSeq"},
		{">contig42", "contig42"},
		// _pep is only looked for in what remains after _frame
		{">c_frame1_pepX", "c"},
		{">c_pep_frame1", "c"},
		{">", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeContigID(tt.header))
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("all")
	assert.NoError(t, err)
	assert.Equal(t, ModeAll, m)

	m, err = ParseMode("before_stop")
	assert.NoError(t, err)
	assert.Equal(t, ModeBeforeStop, m)

	for _, bad := range []string{"", "ALL", "before-stop", "first"} {
		_, err := ParseMode(bad)
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %q", bad)
	}
}
