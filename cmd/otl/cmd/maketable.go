package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

var (
	makeTableOutputName string
	makeTableFormat     string
)

var makeTableCmd = &cobra.Command{
	Use:     "make-table <expression> [dc-expression]",
	Aliases: []string{"mkt"},
	Short:   "Create a truth table for a Boolean expression",
	Long: `Evaluate a Boolean expression over all variable combinations and print
the resulting truth table. An optional second expression marks the rows
where it evaluates to 1 as don't-care.

Examples:
  otl make-table "!(A B) + C"
  otl mkt -f compact "A + B" "A B"
  otl make-table -o Q -f tex "A @ B"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMakeTable,
}

func init() {
	rootCmd.AddCommand(makeTableCmd)

	makeTableCmd.Flags().StringVarP(&makeTableOutputName, "output-variable-name", "o", "Y",
		"name of the output variable")
	makeTableCmd.Flags().StringVarP(&makeTableFormat, "tbl-format", "f", "text",
		"output format (text, pretty, tex, compact, logisim)")
}

func runMakeTable(cmd *cobra.Command, args []string) error {
	expr, err := boolexpr.Parse(args[0])
	if err != nil {
		return err
	}
	var dcExpr boolexpr.Expression
	if len(args) == 2 {
		if dcExpr, err = boolexpr.Parse(args[1]); err != nil {
			return err
		}
	}

	table, err := truthtable.FromExpression(makeTableOutputName, expr, dcExpr)
	if err != nil {
		return err
	}
	return table.Print(os.Stdout, makeTableFormat)
}
