package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

var (
	parseReadAsFile    bool
	parseNoImplicitAnd bool
	parseExprFormat    string
	parseValidate      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse and reformat Boolean expressions",
	Long: `Parse a Boolean expression and print it back in the requested format.

With --read-as-filename the argument names a file holding one expression
per line; empty lines and lines starting with "#" are skipped. Together
with --validate-equivalence every expression is checked to be equivalent
to the one on the line before it, which is useful for verifying manual
rewriting steps.

Examples:
  otl parse "!(A B) + C"
  otl parse -f tex-math "A % B"
  otl parse -F -e derivation.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseReadAsFile, "read-as-filename", "F", false,
		"treat the argument as a file containing one expression per line")
	parseCmd.Flags().BoolVarP(&parseNoImplicitAnd, "no-implicit-and", "n", false,
		"emit an explicit AND operator instead of a space")
	parseCmd.Flags().StringVarP(&parseExprFormat, "expr-format", "f", "text",
		"output format (text, pretty-text, tex-tech, tex-math, dot, internal)")
	parseCmd.Flags().BoolVarP(&parseValidate, "validate-equivalence", "e", false,
		"in file mode, check every expression against the previous line")
}

func runParse(cmd *cobra.Command, args []string) error {
	if !parseReadAsFile {
		expr, err := boolexpr.Parse(args[0])
		if err != nil {
			return err
		}
		out, err := boolexpr.Format(expr, parseExprFormat, !parseNoImplicitAnd)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	valid := true
	var prevExpr boolexpr.Expression
	prevLine := 0

	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		expr, err := boolexpr.Parse(line)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", args[0], lineno, err)
		}
		out, err := boolexpr.Format(expr, parseExprFormat, !parseNoImplicitAnd)
		if err != nil {
			return err
		}
		fmt.Println(out)

		if parseValidate && prevExpr != nil {
			eq, err := boolexpr.Equal(prevExpr, expr)
			if err != nil {
				return fmt.Errorf("%s line %d: %w", args[0], lineno, err)
			}
			if !eq {
				fmt.Fprintf(os.Stderr, "Warning: expression %q on line %d is not equivalent to expression %q on line %d.\n",
					boolexpr.Text(prevExpr), prevLine, boolexpr.Text(expr), lineno)
				valid = false
			}
		}
		prevExpr, prevLine = expr, lineno
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if !valid {
		fmt.Fprintln(os.Stderr, "There were validation errors, some of the equations are not equivalent to each other.")
		os.Exit(1)
	}
	return nil
}
