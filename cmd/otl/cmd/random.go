package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/qmc"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

var (
	randomExprAllowNandNorXor bool
	randomExprAllowTrivial    bool
	randomExprSeed            int64
)

var randomExprCmd = &cobra.Command{
	Use:   "random-expr <var-count> <complexity>",
	Short: "Generate a randomized expression",
	Long: `Generate a random Boolean expression over the given number of variables
by applying the given number of complexity iteration steps. The
expression is printed together with its minimized form.

Expressions whose minimized form is trivially short are rejected and
regenerated unless --allow-trivial is given; after 100 attempts the
last candidate is printed regardless.

Examples:
  otl random-expr 4 10
  otl random-expr -n -s 1234 3 8`,
	Args: cobra.ExactArgs(2),
	RunE: runRandomExpr,
}

var (
	randomTableFormat      string
	randomTableOutputNames []string
	randomTableZeroPct     float64
	randomTableOnePct      float64
	randomTableSeed        int64
)

var randomTableCmd = &cobra.Command{
	Use:   "random-table <var-count>",
	Short: "Generate a randomized table",
	Long: `Generate a truth table with randomly distributed output values. The
zero and one percentages control the share of 0 and 1 entries per
output column; the remaining rows become don't-care.

Examples:
  otl random-table 3
  otl random-table -f compact -0 25 -1 25 4
  otl random-table -o X -o Y -s 99 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRandomTable,
}

func init() {
	rootCmd.AddCommand(randomExprCmd)
	rootCmd.AddCommand(randomTableCmd)

	randomExprCmd.Flags().BoolVarP(&randomExprAllowNandNorXor, "allow-nand-nor-xor", "n", false,
		"allow NAND, NOR and XOR operators in the expression")
	randomExprCmd.Flags().BoolVarP(&randomExprAllowTrivial, "allow-trivial", "a", false,
		"keep expressions that minimize to something trivial")
	randomExprCmd.Flags().Int64VarP(&randomExprSeed, "random-seed", "s", 0,
		"seed for reproducible output (default random)")

	randomTableCmd.Flags().StringVarP(&randomTableFormat, "tbl-format", "f", "text",
		"output format (text, pretty, tex, compact, logisim)")
	randomTableCmd.Flags().StringArrayVarP(&randomTableOutputNames, "output-variable-name", "o", nil,
		"output variable name, can be given multiple times (default Y)")
	randomTableCmd.Flags().Float64VarP(&randomTableZeroPct, "zero-percentage", "0", 40,
		"percentage of rows with value 0")
	randomTableCmd.Flags().Float64VarP(&randomTableOnePct, "one-percentage", "1", 40,
		"percentage of rows with value 1")
	randomTableCmd.Flags().Int64VarP(&randomTableSeed, "random-seed", "s", 0,
		"seed for reproducible output (default random)")
}

func runRandomExpr(cmd *cobra.Command, args []string) error {
	varCount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid variable count %q", args[0])
	}
	complexity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid complexity %q", args[1])
	}

	weights := boolexpr.RestrictedWeights()
	if randomExprAllowNandNorXor {
		weights = boolexpr.DefaultWeights()
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if cmd.Flags().Changed("random-seed") {
		rng = rand.New(rand.NewSource(randomExprSeed))
	}
	generator, err := boolexpr.NewGenerator(varCount, weights, rng)
	if err != nil {
		return err
	}

	for tryNo := 1; ; tryNo++ {
		expr := generator.Generate(complexity)
		table, err := truthtable.FromExpression("Y", expr, nil)
		if err != nil {
			return err
		}
		solution, err := qmc.New(table, "Y", logger).Minimize(qmc.DNF)
		if err != nil {
			return err
		}
		simplified := boolexpr.Text(solution.Any())
		if !randomExprAllowTrivial && len(simplified) < 20 && tryNo < 100 {
			continue
		}

		fmt.Printf("Expression: %s\n", boolexpr.Text(expr))
		fmt.Printf("Simplified: %s\n", simplified)
		return nil
	}
}

func runRandomTable(cmd *cobra.Command, args []string) error {
	varCount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid variable count %q", args[0])
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if cmd.Flags().Changed("random-seed") {
		rng = rand.New(rand.NewSource(randomTableSeed))
	}

	table, err := truthtable.Random(varCount, randomTableOutputNames,
		randomTableZeroPct, randomTableOnePct, rng)
	if err != nil {
		return err
	}
	return table.Print(os.Stdout, randomTableFormat)
}
