// Package main provides the orfmap command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/orfmap/internal/orf"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configFile string
	verbose    bool
	logFile    string

	logger *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, orf.ErrInvalidMode) {
			fmt.Fprintf(os.Stderr, "Hint: use --mode %s or --mode %s\n", orf.ModeBeforeStop, orf.ModeAll)
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "orfmap",
		Short: "Map ORF peptides from translated frames back to contig coordinates",
		Long: `orfmap extracts candidate ORF peptides from six-frame translations and
maps each peptide to its nucleotide coordinates and flanking sequence in
the source contig.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(opts.configFile); err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.logFile)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Config file (default: ~/.orfmap.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&opts.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")

	cmd.AddCommand(newMapCmd(opts))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orfmap version %s (%s) built %s\n", version, commit, date)
		},
	}
}
