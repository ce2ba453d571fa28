package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/qmc"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

var (
	synthOutputName    string
	synthNoImplicitAnd bool
	synthExprFormat    string
	synthPolicy        string
	synthCompute       string
	synthShowAll       bool
)

var synthesizeCmd = &cobra.Command{
	Use:     "synthesize [file]",
	Aliases: []string{"qmc"},
	Short:   "Synthesize a Boolean expression from a given truth table",
	Long: `Read a truth table and synthesize minimal expressions for one of its
output columns using the Quine-McCluskey algorithm. For each requested
normal form the canonical expression is printed first, followed by the
minimized one. When several solutions share the minimal cost,
--show-all-solutions prints every one of them.

Examples:
  otl synthesize table.txt
  otl make-table "A B + C D" | otl qmc -c dnf
  otl synthesize --show-all-solutions -u '*' partial.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSynthesize,
}

func init() {
	rootCmd.AddCommand(synthesizeCmd)

	synthesizeCmd.Flags().StringVarP(&synthOutputName, "output-variable-name", "o", "Y",
		"name of the output variable to synthesize")
	synthesizeCmd.Flags().BoolVarP(&synthNoImplicitAnd, "no-implicit-and", "N", false,
		"emit an explicit AND operator instead of a space")
	synthesizeCmd.Flags().StringVarP(&synthExprFormat, "expr-format", "f", "text",
		"output format (text, pretty-text, tex-tech, tex-math, dot, internal)")
	synthesizeCmd.Flags().StringVarP(&synthPolicy, "unused-value-is", "u", "forbidden",
		"treat missing rows as the given value (forbidden, 0, 1, *)")
	synthesizeCmd.Flags().StringVarP(&synthCompute, "compute", "c", "both",
		"compute dnf, cnf or both")
	synthesizeCmd.Flags().BoolVar(&synthShowAll, "show-all-solutions", false,
		"print all minimal solutions instead of the first")
}

func runSynthesize(cmd *cobra.Command, args []string) error {
	switch synthCompute {
	case "dnf", "cnf", "both":
	default:
		return fmt.Errorf("invalid compute mode %q, must be dnf, cnf or both", synthCompute)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	table, err := readTable(path, synthPolicy)
	if err != nil {
		return err
	}

	minimizer := qmc.New(table, synthOutputName, logger)

	if synthCompute == "dnf" || synthCompute == "both" {
		cdnf, err := table.SumOfMinterms(synthOutputName)
		if err != nil {
			return err
		}
		if err := printCanonical("CDNF", cdnf); err != nil {
			return err
		}
		solution, err := minimizer.Minimize(qmc.DNF)
		if err != nil {
			return err
		}
		if err := printSolutions("DNF", solution); err != nil {
			return err
		}
	}

	if synthCompute == "cnf" || synthCompute == "both" {
		if synthCompute == "both" {
			fmt.Println()
		}
		ccnf, err := table.ProductOfMaxterms(synthOutputName)
		if err != nil {
			return err
		}
		if err := printCanonical("CCNF", ccnf); err != nil {
			return err
		}
		solution, err := minimizer.Minimize(qmc.CNF)
		if err != nil {
			return err
		}
		if err := printSolutions("CNF", solution); err != nil {
			return err
		}
	}
	return nil
}

func printCanonical(label string, e boolexpr.Expression) error {
	out, err := boolexpr.Format(e, synthExprFormat, !synthNoImplicitAnd)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", label, out)
	return nil
}

func printSolutions(label string, solution *qmc.Solution) error {
	count := solution.Count()
	for i := 0; i < count; i++ {
		out, err := boolexpr.Format(solution.Expression(i), synthExprFormat, !synthNoImplicitAnd)
		if err != nil {
			return err
		}
		if !synthShowAll {
			fmt.Printf("%s : %s\n", label, out)
			return nil
		}
		fmt.Printf("%s %d/%d: %s\n", label, i+1, count, out)
	}
	return nil
}
