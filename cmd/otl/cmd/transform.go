package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

var (
	transformNames         []string
	transformNoImplicitAnd bool
	transformExprFormat    string
)

var transformCmd = &cobra.Command{
	Use:   "transform -t <name> <expression>",
	Short: "Transform a Boolean expression",
	Long: `Apply structural transformations to an expression. The --transform flag
may be given multiple times; transformations are applied in order and
the intermediate result is printed after each step. Every step is
checked to preserve the function.

Available transformations:
  simplify  fold constants and double negations
  nand      rewrite using only NAND operators
  nor       rewrite using only NOR operators

Examples:
  otl transform -t nand "A + B"
  otl transform -t nor -t simplify "A @ B"`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringArrayVarP(&transformNames, "transform", "t", nil,
		"transformation to apply (simplify, nand, nor), can be given multiple times")
	transformCmd.Flags().BoolVarP(&transformNoImplicitAnd, "no-implicit-and", "n", false,
		"emit an explicit AND operator instead of a space")
	transformCmd.Flags().StringVarP(&transformExprFormat, "expr-format", "f", "text",
		"output format (text, pretty-text, tex-tech, tex-math, dot, internal)")
	transformCmd.MarkFlagRequired("transform")
}

func runTransform(cmd *cobra.Command, args []string) error {
	expr, err := boolexpr.Parse(args[0])
	if err != nil {
		return err
	}

	current := expr
	for _, name := range transformNames {
		next, err := boolexpr.Transform(current, name)
		if err != nil {
			return err
		}
		out, err := boolexpr.Format(next, transformExprFormat, !transformNoImplicitAnd)
		if err != nil {
			return err
		}
		fmt.Println(out)

		eq, err := boolexpr.Equal(current, next)
		if err != nil {
			return err
		}
		if !eq {
			return fmt.Errorf("transformation %q changed the function", name)
		}
		current = next
	}
	return nil
}
