package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

var (
	satisfiedFormat     string
	satisfiedOutputName string
	satisfiedPolicy     string
)

var satisfiedCmd = &cobra.Command{
	Use:   "satisfied <file|-> <expression>",
	Short: "Verify if a given Boolean expression satisfies the truth table",
	Long: `Evaluate an expression against every row of a truth table. The printed
table gains an Eval column with the evaluation result and a Sat column
telling whether the row is satisfied; don't-care rows are always
satisfied. The exit status is 1 when any row disagrees.

Examples:
  otl satisfied table.txt "A + B C"
  otl make-table "A + B" | otl satisfied - "!(!A !B)"`,
	Args: cobra.ExactArgs(2),
	RunE: runSatisfied,
}

func init() {
	rootCmd.AddCommand(satisfiedCmd)

	satisfiedCmd.Flags().StringVarP(&satisfiedFormat, "tbl-format", "f", "text",
		"output format (text, pretty, tex, compact, logisim)")
	satisfiedCmd.Flags().StringVarP(&satisfiedOutputName, "output-variable-name", "o", "Y",
		"name of the output variable to check")
	satisfiedCmd.Flags().StringVarP(&satisfiedPolicy, "unused-value-is", "u", "forbidden",
		"treat missing rows as the given value (forbidden, 0, 1, *)")
}

func runSatisfied(cmd *cobra.Command, args []string) error {
	table, err := readTable(args[0], satisfiedPolicy)
	if err != nil {
		return err
	}
	expr, err := boolexpr.Parse(args[1])
	if err != nil {
		return err
	}

	result, err := table.CheckSatisfies(expr, satisfiedOutputName)
	if err != nil {
		return err
	}
	if err := table.AddOutput("Eval", result.Eval); err != nil {
		return err
	}
	if err := table.AddOutput("Sat", result.Sat); err != nil {
		return err
	}
	if err := table.Print(os.Stdout, satisfiedFormat); err != nil {
		return err
	}

	if !result.Satisfied {
		fmt.Println("Warning: the given expression does NOT satisfy the truth table")
		os.Exit(1)
	}
	fmt.Println("The given expression satisfies the truth table.")
	return nil
}
