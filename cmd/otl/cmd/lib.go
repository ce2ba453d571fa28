package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/internal/store"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

var (
	libDBPath      string
	libTablePolicy string
	libShowFormat  string
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Manage a library of named expressions and tables",
	Long: `Store Boolean expressions and truth tables under a name in a SQLite
database and retrieve them later. The database path is taken from
--db, the OTL_DB environment variable or ~/.otl.db, in that order.

Examples:
  otl lib save-expr parity "A @ B @ C"
  otl make-table -f compact "A + B" | otl lib save-table or2
  otl lib show parity
  otl lib list
  otl lib rm or2`,
}

var libSaveExprCmd = &cobra.Command{
	Use:   "save-expr <name> <expression>",
	Short: "Store an expression under a name",
	Args:  cobra.ExactArgs(2),
	RunE:  runLibSaveExpr,
}

var libSaveTableCmd = &cobra.Command{
	Use:   "save-table <name> [file]",
	Short: "Store a truth table under a name",
	Long: `Read a tab-separated truth table from the given file (stdin when
omitted) and store it under the name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLibSaveTable,
}

var libShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored expression or table",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibShow,
}

var libListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored names",
	Args:  cobra.NoArgs,
	RunE:  runLibList,
}

var libRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a stored expression or table",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibRm,
}

func init() {
	rootCmd.AddCommand(libCmd)
	libCmd.AddCommand(libSaveExprCmd)
	libCmd.AddCommand(libSaveTableCmd)
	libCmd.AddCommand(libShowCmd)
	libCmd.AddCommand(libListCmd)
	libCmd.AddCommand(libRmCmd)

	libCmd.PersistentFlags().StringVar(&libDBPath, "db", "",
		"database path (default $OTL_DB or ~/.otl.db)")
	libSaveTableCmd.Flags().StringVarP(&libTablePolicy, "unused-value-is", "u", "forbidden",
		"treat missing rows as the given value (forbidden, 0, 1, *)")
	libShowCmd.Flags().StringVarP(&libShowFormat, "tbl-format", "f", "text",
		"output format for tables (text, pretty, tex, compact, logisim)")
}

// libraryPath resolves the database location from the --db flag, the
// OTL_DB environment variable or the home directory.
func libraryPath() (string, error) {
	if libDBPath != "" {
		return libDBPath, nil
	}
	if env := os.Getenv("OTL_DB"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".otl.db"), nil
}

func openLibrary() (*store.Store, error) {
	path, err := libraryPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func runLibSaveExpr(cmd *cobra.Command, args []string) error {
	expr, err := boolexpr.Parse(args[1])
	if err != nil {
		return err
	}

	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.PutExpression(args[0], expr)
}

func runLibSaveTable(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 2 {
		path = args[1]
	}
	table, err := readTable(path, libTablePolicy)
	if err != nil {
		return err
	}

	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.PutTable(args[0], table)
}

func runLibShow(cmd *cobra.Command, args []string) error {
	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	expr, err := s.GetExpression(args[0])
	if err == nil {
		fmt.Println(boolexpr.Text(expr))
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	table, err := s.GetTable(args[0])
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("nothing named %q in the library", args[0])
	}
	if err != nil {
		return err
	}
	return table.Print(os.Stdout, libShowFormat)
}

func runLibList(cmd *cobra.Command, args []string) error {
	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	expressions, err := s.ListExpressions()
	if err != nil {
		return err
	}
	tables, err := s.ListTables()
	if err != nil {
		return err
	}

	fmt.Printf("Expressions (%d):\n", len(expressions))
	for _, name := range expressions {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("Tables (%d):\n", len(tables))
	for _, name := range tables {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func runLibRm(cmd *cobra.Command, args []string) error {
	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	err = s.DeleteExpression(args[0])
	if errors.Is(err, store.ErrNotFound) {
		err = s.DeleteTable(args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("nothing named %q in the library", args[0])
		}
	}
	return err
}
