package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/orfmap/internal/mapper"
)

// PeptideRow is a mapped peptide as stored in DuckDB.
type PeptideRow struct {
	Mode    string
	Peptide mapper.MappedPeptide
}

// WritePeptides batch-inserts mapped peptides using the Appender API.
// Rows are numbered after the existing ones so reads keep insertion order.
func (s *Store) WritePeptides(mode string, peptides []mapper.MappedPeptide) error {
	if len(peptides) == 0 {
		return nil
	}

	next, err := s.PeptideCount()
	if err != nil {
		return err
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "mapped_peptides")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for i, mp := range peptides {
		if err := appender.AppendRow(
			int64(next)+int64(i), mode, mp.Frame, mp.Peptide,
			int64(mp.NTStart), int64(mp.NTEnd), mp.Sequence, mp.ContigID,
		); err != nil {
			return fmt.Errorf("append mapped peptide: %w", err)
		}
	}

	return appender.Flush()
}

// PeptideCount returns the number of stored peptides.
func (s *Store) PeptideCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM mapped_peptides").Scan(&n); err != nil {
		return 0, fmt.Errorf("count peptides: %w", err)
	}
	return n, nil
}

// ClearPeptides removes all stored peptides.
func (s *Store) ClearPeptides() error {
	_, err := s.db.Exec("DELETE FROM mapped_peptides")
	return err
}

// PeptidesByContig returns the stored peptides of a contig in insertion order.
func (s *Store) PeptidesByContig(contigID string) ([]PeptideRow, error) {
	rows, err := s.db.Query(`SELECT
		mode, frame, peptide, nt_start, nt_end, sequence, contig
		FROM mapped_peptides
		WHERE contig=?
		ORDER BY row_num`, contigID)
	if err != nil {
		return nil, fmt.Errorf("query by contig: %w", err)
	}
	defer rows.Close()

	return scanPeptideRows(rows)
}

// PeptidesByFrame returns the stored peptides of a frame in insertion order.
func (s *Store) PeptidesByFrame(frame string) ([]PeptideRow, error) {
	rows, err := s.db.Query(`SELECT
		mode, frame, peptide, nt_start, nt_end, sequence, contig
		FROM mapped_peptides
		WHERE frame=?
		ORDER BY row_num`, frame)
	if err != nil {
		return nil, fmt.Errorf("query by frame: %w", err)
	}
	defer rows.Close()

	return scanPeptideRows(rows)
}

// scanPeptideRows scans rows into PeptideRow slices.
func scanPeptideRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]PeptideRow, error) {
	var results []PeptideRow
	for rows.Next() {
		var r PeptideRow
		var start, end int64
		mp := &r.Peptide

		if err := rows.Scan(
			&r.Mode, &mp.Frame, &mp.Peptide, &start, &end, &mp.Sequence, &mp.ContigID,
		); err != nil {
			return nil, fmt.Errorf("scan mapped peptide: %w", err)
		}
		mp.NTStart = int(start)
		mp.NTEnd = int(end)

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mapped peptides: %w", err)
	}
	return results, nil
}
