package fasta

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, content string) []*Record {
	t.Helper()
	r, err := NewReaderFromReader(strings.NewReader(content))
	require.NoError(t, err)
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestReader_MultiLineRecords(t *testing.T) {
	records := readAll(t, `>contig1
ACGTACGT
TTGGCCAA
>contig2
GGGG
`)

	require.Len(t, records, 2)
	assert.Equal(t, ">contig1", records[0].Header)
	assert.Equal(t, "contig1", records[0].ID)
	assert.Equal(t, "ACGTACGTTTGGCCAA", records[0].Seq)
	assert.Equal(t, "contig2", records[1].ID)
	assert.Equal(t, "GGGG", records[1].Seq)
}

func TestReader_TrimsAndSkipsBlankLines(t *testing.T) {
	records := readAll(t, "\n  > spaced id  \n\n  ACG  \n\t\nTTT\r\n")

	require.Len(t, records, 1)
	assert.Equal(t, "> spaced id", records[0].Header)
	assert.Equal(t, "spaced id", records[0].ID)
	assert.Equal(t, "ACGTTT", records[0].Seq)
}

func TestReader_EmptyBody(t *testing.T) {
	records := readAll(t, ">empty\n>full\nMKV\n>trailing\n")

	require.Len(t, records, 3)
	assert.Equal(t, "", records[0].Seq)
	assert.Equal(t, "MKV", records[1].Seq)
	assert.Equal(t, "trailing", records[2].ID)
	assert.Equal(t, "", records[2].Seq)
}

func TestReader_OrphanSequenceIgnored(t *testing.T) {
	records := readAll(t, "ACGT\nACGT\n>c1\nTTTT\n")

	require.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].ID)
	assert.Equal(t, "TTTT", records[0].Seq)
}

func TestReader_EmptyInput(t *testing.T) {
	r, err := NewReaderFromReader(strings.NewReader(""))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Nil(t, rec)

	// Stays exhausted
	rec, err = r.Next()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestReader_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(">c1\nACGT\n>c2\nGG\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "contigs.fa.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ACGT", records[0].Seq)
	assert.Equal(t, "GG", records[1].Seq)
}

func TestReader_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contigs.fa")
	require.NoError(t, os.WriteFile(path, []byte(">c1\nAC\nGT\n"), 0644))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "ACGT", rec.Seq)
	assert.Equal(t, 3, r.LineNumber())
}

func TestNewReader_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
