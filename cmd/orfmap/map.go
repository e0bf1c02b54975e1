package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inodb/orfmap/internal/contig"
	"github.com/inodb/orfmap/internal/duckdb"
	"github.com/inodb/orfmap/internal/mapper"
	"github.com/inodb/orfmap/internal/orf"
	"github.com/inodb/orfmap/internal/output"
)

type mapOptions struct {
	outputFile string
	dbPath     string
	summary    bool
}

func newMapCmd(root *rootOptions) *cobra.Command {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   "map <translation-file> <contig-file>",
		Short: "Extract ORF peptides and map them to contig coordinates",
		Long: `Extract candidate ORF peptides from a six-frame translation FASTA and map
each one to its nucleotide range in the contig FASTA.

Modes:
  before_stop  only the peptide before the first stop codon
  all          the peptide before the first stop plus every peptide starting
               at an M after it

Inputs may be gzipped. Use '-' to read one of them from stdin.`,
		Example: `  orfmap map translated.fa contigs.fa -o orfs.tsv
  orfmap map --mode before_stop translated.fa.gz contigs.fa.gz
  orfmap map --db orfs.duckdb --summary translated.fa contigs.fa`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, root.logger, opts, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringP("mode", "m", string(orf.ModeAll), "Parsing mode: before_stop or all")
	f.Int("min-length", mapper.DefaultMinLength, "Minimum nucleotide length of mapped sequences")
	f.IntP("workers", "w", 0, "Segmentation workers (0 = number of CPUs)")
	f.StringVarP(&opts.outputFile, "output", "o", "", "Output file (default: stdout)")
	f.StringVar(&opts.dbPath, "db", "", "Also store mapped peptides in a DuckDB file")
	f.BoolVar(&opts.summary, "summary", false, "Print a summary table to stderr")

	_ = viper.BindPFlag(keyMode, f.Lookup("mode"))
	_ = viper.BindPFlag(keyMinLength, f.Lookup("min-length"))
	_ = viper.BindPFlag(keyWorkers, f.Lookup("workers"))

	return cmd
}

func runMap(cmd *cobra.Command, logger *zap.Logger, opts *mapOptions, translationPath, contigPath string) error {
	// Configuration errors are reported before any input is read.
	mode, err := orf.ParseMode(viper.GetString(keyMode))
	if err != nil {
		return err
	}
	minLength := viper.GetInt(keyMinLength)
	if minLength < 0 {
		return fmt.Errorf("min-length must be >= 0, got %d", minLength)
	}
	if translationPath == "-" && contigPath == "-" {
		return fmt.Errorf("only one input can be read from stdin")
	}

	// Open the store up front so a bad --db path fails before any output.
	var store *duckdb.Store
	if opts.dbPath != "" {
		store, err = duckdb.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	parser := orf.NewParser(mode)
	parser.SetWorkers(viper.GetInt(keyWorkers))
	parser.SetLogger(logger)

	var (
		contigs *contig.Table
		frames  *orf.FrameSet
		g       errgroup.Group
	)
	g.Go(func() error {
		var err error
		contigs, err = contig.Load(contigPath)
		if err != nil {
			return fmt.Errorf("load contigs: %w", err)
		}
		logger.Info("loaded contigs", zap.String("path", contigPath), zap.Int("contigs", contigs.Len()))
		return nil
	})
	g.Go(func() error {
		var err error
		frames, err = parser.ParseFile(translationPath)
		if err != nil {
			return fmt.Errorf("parse translations: %w", err)
		}
		logger.Info("parsed translations",
			zap.String("path", translationPath),
			zap.Int("frames", frames.Len()),
			zap.Int("peptides", frames.SpanCount()))
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	m := mapper.New(contigs)
	m.SetMinLength(minLength)
	m.SetLogger(logger)
	res := m.Map(frames)

	if store != nil {
		if err := store.WritePeptides(parser.Mode().String(), res.Peptides()); err != nil {
			return fmt.Errorf("store mapped peptides: %w", err)
		}
		logger.Info("stored mapped peptides", zap.String("db", opts.dbPath), zap.Int("peptides", res.Stats.Mapped))
	}

	if err := writeTable(cmd.OutOrStdout(), opts.outputFile, res); err != nil {
		return err
	}

	if opts.summary {
		output.WriteSummary(cmd.ErrOrStderr(), parser.Mode().String(), minLength, res.Stats)
	}

	return nil
}

// writeTable writes the result table to path, or to stdout if path is empty.
func writeTable(stdout io.Writer, path string, res *mapper.Result) error {
	out := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := output.NewTabWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteResult(res); err != nil {
		return fmt.Errorf("write mapped peptide: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
