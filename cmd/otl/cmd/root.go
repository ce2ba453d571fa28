package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

var (
	// Global flags
	verbose int

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "otl",
	Short: "OpenTraceLogic - Boolean expression and truth table tools",
	Long: `OpenTraceLogic (otl) works with two-level digital logic:
  - Parsing, reformatting and transforming Boolean expressions
  - Creating, printing and randomizing truth tables
  - Quine-McCluskey minimization with all minimal solutions
  - Equivalence checking and a small function library

Examples:
  otl parse "!(A B) + C"               # Parse and reformat an expression
  otl make-table -f compact "A + B"    # Truth table in compact form
  otl synthesize table.txt             # Minimize a truth table
  otl equal "!(A B)" "!A + !B"         # Compare two expressions`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch verbose {
		case 0:
			logger.SetLevel(logrus.WarnLevel)
		case 1:
			logger.SetLevel(logrus.InfoLevel)
		default:
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v",
		"increase verbosity, can be given multiple times")
}

// openInput opens the named file, or stdin when the name is empty or "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// readTable parses a tab-separated truth table from the named file or
// stdin, applying the given undefined-value policy.
func readTable(path, policy string) (*truthtable.Table, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := truthtable.Parse(f, policy, logger)
	if err != nil {
		if path == "" || path == "-" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
